package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/jmoiron/sqlx"
)

type ShareLink struct {
	OwnerID   string    `db:"owner_id"`
	Hash      string    `db:"hash"`
	CreatedAt time.Time `db:"created_at"`
}

type ShareStore struct {
	db *sqlx.DB
}

func NewShareStore(db *sqlx.DB) *ShareStore {
	return &ShareStore{db: db}
}

func (s *ShareStore) q(query string) string { return s.db.Rebind(query) }

// GetOrCreate returns the owner's share link, minting one if none exists.
// The insert is a no-op when a row is already present, so concurrent enables
// from the same user converge on a single row and repeated calls return the
// same hash.
//
// TODO: ON CONFLICT ... DO NOTHING works in SQLite and PostgreSQL but NOT
// MySQL, which needs INSERT IGNORE. Split the query per driver if MySQL
// support matters.
func (s *ShareStore) GetOrCreate(ctx context.Context, ownerID string) (*ShareLink, error) {
	hash, err := NewShareHash()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO share_links (owner_id, hash, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (owner_id) DO NOTHING
	`), ownerID, hash, now)
	if err != nil {
		return nil, err
	}

	var link ShareLink
	err = s.db.GetContext(ctx, &link, s.q(`SELECT * FROM share_links WHERE owner_id = ?`), ownerID)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetByHash resolves a public share hash to its owner, or ErrNotFound.
func (s *ShareStore) GetByHash(ctx context.Context, hash string) (*ShareLink, error) {
	var link ShareLink
	err := s.db.GetContext(ctx, &link, s.q(`SELECT * FROM share_links WHERE hash = ?`), hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteByOwner removes the owner's share link. Deleting when no link
// exists is not an error; disabling sharing is idempotent.
func (s *ShareStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM share_links WHERE owner_id = ?`), ownerID)
	return err
}

// NewShareHash returns a base62 encoding of 32 cryptographically random
// bytes. The hash is the sole access control on the shared view, so it must
// be unguessable.
func NewShareHash() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	encoded := make([]byte, 0, 44)
	n := new(big.Int).SetBytes(b)
	base := big.NewInt(62)
	mod := new(big.Int)
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		encoded = append(encoded, alphabet[mod.Int64()])
	}
	// Reverse to get most-significant digit first.
	for i, j := 0, len(encoded)-1; i < j; i, j = i+1, j-1 {
		encoded[i], encoded[j] = encoded[j], encoded[i]
	}

	return string(encoded), nil
}
