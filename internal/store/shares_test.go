package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brainly-app/brainly/internal/store"
	"github.com/brainly-app/brainly/internal/testutil"
)

func newShareStore(t *testing.T) *store.ShareStore {
	t.Helper()
	return store.NewShareStore(testutil.NewTestDB(t))
}

func TestShareGetOrCreate_Idempotent(t *testing.T) {
	ss := newShareStore(t)
	ctx := context.Background()

	first, err := ss.GetOrCreate(ctx, "owner-a")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if first.Hash == "" {
		t.Fatal("expected a non-empty hash")
	}

	second, err := ss.GetOrCreate(ctx, "owner-a")
	if err != nil {
		t.Fatalf("get or create again: %v", err)
	}
	if second.Hash != first.Hash {
		t.Errorf("repeated enable rotated the hash: %q vs %q", second.Hash, first.Hash)
	}
}

func TestShareDisable_Then_Enable_MintsNewHash(t *testing.T) {
	ss := newShareStore(t)
	ctx := context.Background()

	first, err := ss.GetOrCreate(ctx, "owner-a")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	if err := ss.DeleteByOwner(ctx, "owner-a"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// The old hash no longer resolves.
	if _, err := ss.GetByHash(ctx, first.Hash); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("old hash err = %v, want ErrNotFound", err)
	}

	second, err := ss.GetOrCreate(ctx, "owner-a")
	if err != nil {
		t.Fatalf("re-enable: %v", err)
	}
	if second.Hash == first.Hash {
		t.Error("re-enable returned the revoked hash")
	}
}

func TestShareDelete_WhenAbsent_IsNoOp(t *testing.T) {
	ss := newShareStore(t)
	if err := ss.DeleteByOwner(context.Background(), "never-shared"); err != nil {
		t.Errorf("delete of absent share link: %v", err)
	}
}

func TestShareGetByHash(t *testing.T) {
	ss := newShareStore(t)
	ctx := context.Background()

	link, err := ss.GetOrCreate(ctx, "owner-a")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	resolved, err := ss.GetByHash(ctx, link.Hash)
	if err != nil {
		t.Fatalf("get by hash: %v", err)
	}
	if resolved.OwnerID != "owner-a" {
		t.Errorf("owner = %q, want %q", resolved.OwnerID, "owner-a")
	}

	if _, err := ss.GetByHash(ctx, "never-issued"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown hash err = %v, want ErrNotFound", err)
	}
}

func TestNewShareHash_Distinct(t *testing.T) {
	a, err := store.NewShareHash()
	if err != nil {
		t.Fatalf("new hash: %v", err)
	}
	b, err := store.NewShareHash()
	if err != nil {
		t.Fatalf("new hash: %v", err)
	}
	if a == b {
		t.Error("two generated hashes collided")
	}
	if len(a) < 40 {
		t.Errorf("hash suspiciously short: %d chars", len(a))
	}
}
