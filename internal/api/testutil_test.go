package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brainly-app/brainly/internal/api"
	"github.com/brainly-app/brainly/internal/auth"
	"github.com/brainly-app/brainly/internal/store"
	"github.com/brainly-app/brainly/internal/testutil"
)

// testEnv holds all stores and helpers needed for API integration tests.
type testEnv struct {
	Router       http.Handler
	Tokens       *auth.Tokens
	UserStore    *store.UserStore
	ContentStore *store.ContentStore
	ShareStore   *store.ShareStore
}

// newTestEnv creates an in-memory SQLite test database, runs migrations,
// and wires up the full API router with real stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	users := store.NewUserStore(db)
	tags := store.NewTagStore(db)
	content := store.NewContentStore(db, tags)
	shares := store.NewShareStore(db)

	tokens := auth.NewTokens("test-secret", time.Hour)
	bearer := auth.NewBearerTokenMiddleware(tokens, users)

	router := api.NewAPIRouter(api.Deps{
		BearerAuth:   bearer,
		Tokens:       tokens,
		UserStore:    users,
		ContentStore: content,
		ShareStore:   shares,
	})

	return &testEnv{
		Router:       router,
		Tokens:       tokens,
		UserStore:    users,
		ContentStore: content,
		ShareStore:   shares,
	}
}

// seedUser creates a user with a real bcrypt hash and returns the record.
func seedUser(t *testing.T, env *testEnv, username, password string) *store.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := env.UserStore.Create(context.Background(), username, hash)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

// seedToken issues a bearer token for the user.
func seedToken(t *testing.T, env *testEnv, userID string) string {
	t.Helper()
	raw, err := env.Tokens.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, env *testEnv, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v; body: %s", err, rec.Body.String())
	}
}
