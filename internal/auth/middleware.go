package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/brainly-app/brainly/internal/store"
)

type contextKey string

const UserContextKey contextKey = "user"

// BearerTokenMiddleware authenticates API requests via a signed bearer token
// in the Authorization header.
type BearerTokenMiddleware struct {
	tokens *Tokens
	users  *store.UserStore
}

// NewBearerTokenMiddleware creates a new BearerTokenMiddleware.
func NewBearerTokenMiddleware(tokens *Tokens, users *store.UserStore) *BearerTokenMiddleware {
	return &BearerTokenMiddleware{tokens: tokens, users: users}
}

// Authenticate extracts and verifies the bearer token.
// WHEN valid: injects the resolved *store.User into the request context.
// WHEN missing/malformed/expired: returns 401 with {"error": "unauthorized"}
// and never invokes the downstream handler. The middleware is a pure gate.
func (m *BearerTokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Some clients send the raw token; a "Bearer " prefix is accepted
		// for conventional callers.
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			writeUnauthorized(w)
			return
		}

		userID, err := m.tokens.Verify(raw)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		// A valid token for a user that no longer resolves is still rejected.
		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}

// writeUnauthorized writes a 401 JSON response with {"error": "unauthorized"}.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
