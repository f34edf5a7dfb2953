package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brainly-app/brainly/internal/auth"
	"github.com/brainly-app/brainly/internal/metrics"
	"github.com/brainly-app/brainly/internal/store"
)

// contentAPIHandler provides REST handlers for the authenticated content
// collection. Every operation is scoped to the caller's identity.
type contentAPIHandler struct {
	content *store.ContentStore
}

// registerContentRoutes registers content routes on r. The router applies
// bearer authentication before any of these handlers run.
func registerContentRoutes(r chi.Router, content *store.ContentStore) {
	h := &contentAPIHandler{content: content}
	r.Get("/content", h.List)
	r.Post("/content", h.Create)
	r.Delete("/content/{id}", h.Delete)
}

// Create saves a new content item owned by the caller.
// POST /api/v1/content
//
// @Summary      Save a content item
// @Description  Saves a link with a title and type. The caller becomes the owner.
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        body  body      CreateContentRequest  true  "Item to save"
// @Success      200   {object}  ContentResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /content [post]
func (h *contentAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if fields := store.ValidateContent(req.Title, req.Link, req.Type); len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	item, err := h.content.Create(r.Context(), req.Title, req.Link, req.Type, user.ID, req.Tags)
	if err != nil {
		log.Printf("api: create content for %s: %v", user.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp, err := h.toContentResponse(r.Context(), item)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.ContentCreatedTotal.Inc()
	writeJSON(w, http.StatusOK, resp)
}

// List returns the caller's saved items, newest first.
// GET /api/v1/content
//
// @Summary      List content
// @Description  Returns every item owned by the caller.
// @Tags         Content
// @Produce      json
// @Success      200  {object}  ContentListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /content [get]
func (h *contentAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	items, err := h.content.ListByOwner(r.Context(), user.ID)
	if err != nil {
		log.Printf("api: list content for %s: %v", user.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &ContentListResponse{Content: make([]*ContentResponse, 0, len(items))}
	for _, item := range items {
		cr, err := h.toContentResponse(r.Context(), item)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
			return
		}
		resp.Content = append(resp.Content, cr)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Delete removes one item owned by the caller.
// DELETE /api/v1/content/{id}
//
// Deleting another user's item (or a nonexistent id) reports not-found, so
// probing ids confirms nothing about their existence.
//
// @Summary      Delete a content item
// @Description  Deletes one item by id. Only the owner may delete.
// @Tags         Content
// @Produce      json
// @Param        id   path      string  true  "Content item ID"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /content/{id} [delete]
func (h *contentAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	contentID := chi.URLParam(r, "id")
	if err := h.content.DeleteOwned(r.Context(), contentID, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
			return
		}
		log.Printf("api: delete content %s for %s: %v", contentID, user.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "deleted"})
}

// toContentResponse converts a store.ContentItem to its API representation,
// including tags.
func (h *contentAPIHandler) toContentResponse(ctx context.Context, item *store.ContentItem) (*ContentResponse, error) {
	tags, err := h.content.ListTags(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	tagNames := make([]string, 0, len(tags))
	for _, t := range tags {
		tagNames = append(tagNames, t.Name)
	}

	return &ContentResponse{
		ID:        item.ID,
		Title:     item.Title,
		Link:      item.Link,
		Type:      item.Type,
		Tags:      tagNames,
		CreatedAt: item.CreatedAt,
	}, nil
}
