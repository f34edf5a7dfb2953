package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brainly-app/brainly/internal/auth"
	"github.com/brainly-app/brainly/internal/metrics"
	"github.com/brainly-app/brainly/internal/store"
)

// brainAPIHandler provides the sharing toggle and the anonymous shared read.
type brainAPIHandler struct {
	shares  *store.ShareStore
	content *store.ContentStore
	users   *store.UserStore
}

// registerShareToggleRoute registers the authenticated sharing toggle on r.
func registerShareToggleRoute(r chi.Router, shares *store.ShareStore, content *store.ContentStore, users *store.UserStore) {
	h := &brainAPIHandler{shares: shares, content: content, users: users}
	r.Post("/brain/share", h.Toggle)
}

// registerSharedReadRoute registers the public read on r. It bypasses the
// bearer middleware entirely; identity is resolved through the hash.
func registerSharedReadRoute(r chi.Router, shares *store.ShareStore, content *store.ContentStore, users *store.UserStore) {
	h := &brainAPIHandler{shares: shares, content: content, users: users}
	r.Get("/brain/{shareLink}", h.ReadShared)
}

// Toggle enables or disables public sharing of the caller's collection.
// POST /api/v1/brain/share
//
// Enabling is idempotent: a second {share:true} returns the existing hash
// unchanged. Disabling when already unshared is a no-op.
//
// @Summary      Toggle sharing
// @Description  Enables sharing (returns the public hash) or disables it.
// @Tags         Brain
// @Accept       json
// @Produce      json
// @Param        body  body      ShareRequest  true  "Desired sharing state"
// @Success      200   {object}  ShareResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Security     BearerToken
// @Router       /brain/share [post]
func (h *brainAPIHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if !req.Share {
		if err := h.shares.DeleteByOwner(r.Context(), user.ID); err != nil {
			log.Printf("api: disable sharing for %s: %v", user.ID, err)
			writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "sharing disabled"})
		return
	}

	link, err := h.shares.GetOrCreate(r.Context(), user.ID)
	if err != nil {
		log.Printf("api: enable sharing for %s: %v", user.ID, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, ShareResponse{Hash: link.Hash})
}

// ReadShared serves an anonymous read of a shared collection.
// GET /api/v1/brain/{shareLink}
//
// The hash is the sole access control: whoever presents it receives the
// owner's username and full content list.
//
// @Summary      Read a shared brain
// @Description  Returns the owner's username and content for a valid share hash.
// @Tags         Brain
// @Produce      json
// @Param        shareLink  path      string  true  "Share hash"
// @Success      200        {object}  SharedBrainResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /brain/{shareLink} [get]
func (h *brainAPIHandler) ReadShared(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "shareLink")

	link, err := h.shares.GetByHash(r.Context(), hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.ShareReadsTotal.WithLabelValues("not_found").Inc()
			writeError(w, http.StatusNotFound, "share link not found", "NOT_FOUND")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	owner, err := h.users.GetByID(r.Context(), link.OwnerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	items, err := h.content.ListByOwner(r.Context(), link.OwnerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	ch := &contentAPIHandler{content: h.content}
	resp := &SharedBrainResponse{
		Username: owner.Username,
		Content:  make([]*ContentResponse, 0, len(items)),
	}
	for _, item := range items {
		cr, err := ch.toContentResponse(r.Context(), item)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
			return
		}
		resp.Content = append(resp.Content, cr)
	}

	metrics.ShareReadsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}
