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

// usersAPIHandler provides the signup and signin handlers.
type usersAPIHandler struct {
	users  *store.UserStore
	tokens *auth.Tokens
}

// registerUserRoutes registers the unauthenticated account routes on r.
func registerUserRoutes(r chi.Router, users *store.UserStore, tokens *auth.Tokens) {
	h := &usersAPIHandler{users: users, tokens: tokens}
	r.Post("/signup", h.Signup)
	r.Post("/signin", h.Signin)
}

// Signup registers a new account.
// POST /api/v1/signup
//
// @Summary      Sign up
// @Description  Creates a new account from a username and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignupRequest  true  "Credentials"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /signup [post]
func (h *usersAPIHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if fields := store.ValidateCredentials(req.Username, req.Password); len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if _, err := h.users.Create(r.Context(), req.Username, hash); err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "username is already taken", "DUPLICATE_USERNAME")
			return
		}
		log.Printf("api: signup %q: %v", req.Username, err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.SignupsTotal.Inc()
	writeJSON(w, http.StatusOK, MessageResponse{Message: "signed up"})
}

// Signin verifies credentials and issues a bearer token.
// POST /api/v1/signin
//
// An unknown username and a wrong password produce the identical response,
// so the endpoint cannot be used to enumerate accounts.
//
// @Summary      Sign in
// @Description  Verifies credentials and returns a signed bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      SigninRequest  true  "Credentials"
// @Success      200   {object}  SigninResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /signin [post]
func (h *usersAPIHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			metrics.SigninsTotal.WithLabelValues("rejected").Inc()
			writeError(w, http.StatusForbidden, "invalid credentials", "INVALID_CREDENTIALS")
			return
		}
		log.Printf("api: signin lookup: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		metrics.SigninsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusForbidden, "invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.SigninsTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, SigninResponse{Token: token})
}
