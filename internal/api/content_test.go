package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/brainly-app/brainly/internal/api"
	"github.com/brainly-app/brainly/internal/store"
)

func TestContentCreate_OK(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice", "Passw0rd")
	token := seedToken(t, env, user.ID)

	body := `{"title":"Talk","link":"https://youtube.com/watch?v=x","type":"youtube","tags":["go"]}`
	rec := doJSON(t, env, "POST", "/content", token, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp api.ContentResponse
	decode(t, rec, &resp)
	if resp.Title != "Talk" || resp.Type != "youtube" {
		t.Errorf("item = %+v, want Talk/youtube", resp)
	}
	if len(resp.Tags) != 1 || resp.Tags[0] != "go" {
		t.Errorf("tags = %v, want [go]", resp.Tags)
	}

	// Owner is the authenticated caller, never the request body.
	item, err := env.ContentStore.GetByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.OwnerID != user.ID {
		t.Errorf("owner = %q, want %q", item.OwnerID, user.ID)
	}
}

func TestContentCreate_Validation(t *testing.T) {
	env := newTestEnv(t)
	user := seedUser(t, env, "alice", "Passw0rd")
	token := seedToken(t, env, user.ID)

	rec := doJSON(t, env, "POST", "/content", token, `{"title":"","link":"nope","type":"tiktok"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}

	var resp api.ErrorResponse
	decode(t, rec, &resp)
	if len(resp.Fields) != 3 {
		t.Errorf("len(fields) = %d, want 3 (%v)", len(resp.Fields), resp.Fields)
	}
}

func TestContent_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, path string }{
		{"GET", "/content"},
		{"POST", "/content"},
		{"DELETE", "/content/some-id"},
		{"POST", "/brain/share"},
	} {
		rec := doJSON(t, env, tc.method, tc.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}

func TestContentList_ScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env, "alice", "Passw0rd")
	bob := seedUser(t, env, "bob", "Passw0rd")
	aliceToken := seedToken(t, env, alice.ID)
	bobToken := seedToken(t, env, bob.ID)

	rec := doJSON(t, env, "POST", "/content", aliceToken,
		`{"title":"t","link":"https://youtube.com/watch?v=x","type":"youtube"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create status = %d; body: %s", rec.Code, rec.Body.String())
	}

	var aliceList api.ContentListResponse
	decode(t, doJSON(t, env, "GET", "/content", aliceToken, ""), &aliceList)
	if len(aliceList.Content) != 1 {
		t.Errorf("alice sees %d items, want 1", len(aliceList.Content))
	}

	var bobList api.ContentListResponse
	decode(t, doJSON(t, env, "GET", "/content", bobToken, ""), &bobList)
	if len(bobList.Content) != 0 {
		t.Errorf("bob sees %d of alice's items, want 0", len(bobList.Content))
	}
}

func TestContentDelete_OwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	alice := seedUser(t, env, "alice", "Passw0rd")
	bob := seedUser(t, env, "bob", "Passw0rd")
	aliceToken := seedToken(t, env, alice.ID)
	bobToken := seedToken(t, env, bob.ID)

	item, err := env.ContentStore.Create(context.Background(),
		"t", "https://youtube.com/watch?v=x", "youtube", alice.ID, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Bob deleting Alice's item by guessed id gets not-found, not forbidden.
	rec := doJSON(t, env, "DELETE", "/content/"+item.ID, bobToken, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-user delete status = %d, want 404; body: %s", rec.Code, rec.Body.String())
	}

	// The item survived.
	if _, err := env.ContentStore.GetByID(context.Background(), item.ID); err != nil {
		t.Fatalf("item should be intact: %v", err)
	}

	rec = doJSON(t, env, "DELETE", "/content/"+item.ID, aliceToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	if _, err := env.ContentStore.GetByID(context.Background(), item.ID); err != store.ErrNotFound {
		t.Errorf("after delete err = %v, want ErrNotFound", err)
	}
}
