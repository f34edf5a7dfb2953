package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Tag struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

func (s *TagStore) q(query string) string { return s.db.Rebind(query) }

// Upsert returns the tag with the given name, creating it if absent.
// Names are normalized to lowercase with surrounding whitespace trimmed.
func (s *TagStore) Upsert(ctx context.Context, name string) (*Tag, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	var tag Tag
	err := s.db.GetContext(ctx, &tag, s.q(`SELECT * FROM tags WHERE name = ?`), name)
	if err == nil {
		return &tag, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx, s.q(`INSERT INTO tags (id, name) VALUES (?, ?)`), id, name)
	if err != nil {
		return nil, err
	}
	return &Tag{ID: id, Name: name}, nil
}

// ListAll returns every tag ordered by name.
func (s *TagStore) ListAll(ctx context.Context) ([]*Tag, error) {
	var tags []*Tag
	err := s.db.SelectContext(ctx, &tags, `SELECT * FROM tags ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return tags, nil
}
