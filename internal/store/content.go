package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ContentItem struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Link      string    `db:"link"`
	Type      string    `db:"type"`
	OwnerID   string    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type ContentStore struct {
	db   *sqlx.DB
	tags *TagStore
}

func NewContentStore(db *sqlx.DB, tags *TagStore) *ContentStore {
	return &ContentStore{db: db, tags: tags}
}

func (s *ContentStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a content item owned by ownerID. The owner always comes from
// the authenticated identity, never from the request body.
func (s *ContentStore) Create(ctx context.Context, title, link, contentType, ownerID string, tagNames []string) (*ContentItem, error) {
	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO content (id, title, link, type, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), id, title, link, contentType, ownerID, now, now)
	if err != nil {
		return nil, err
	}

	if len(tagNames) > 0 {
		if err := s.SetTags(ctx, id, tagNames); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, id)
}

func (s *ContentStore) GetByID(ctx context.Context, id string) (*ContentItem, error) {
	var item ContentItem
	err := s.db.GetContext(ctx, &item, s.q(`SELECT * FROM content WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByOwner returns all items owned by ownerID, newest first.
func (s *ContentStore) ListByOwner(ctx context.Context, ownerID string) ([]*ContentItem, error) {
	var items []*ContentItem
	err := s.db.SelectContext(ctx, &items, s.q(`
		SELECT * FROM content WHERE owner_id = ? ORDER BY created_at DESC
	`), ownerID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteOwned deletes the item only when it is owned by ownerID. A missing
// row and a row owned by someone else both return ErrNotFound, so a caller
// probing foreign ids learns nothing about their existence.
func (s *ContentStore) DeleteOwned(ctx context.Context, id, ownerID string) error {
	res, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM content WHERE id = ? AND owner_id = ?
	`), id, ownerID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	_, err = s.db.ExecContext(ctx, s.q(`DELETE FROM content_tags WHERE content_id = ?`), id)
	return err
}

// SetTags replaces the item's tag set with tagNames, upserting tags by name.
func (s *ContentStore) SetTags(ctx context.Context, contentID string, tagNames []string) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM content_tags WHERE content_id = ?`), contentID)
	if err != nil {
		return err
	}

	for _, name := range tagNames {
		tag, err := s.tags.Upsert(ctx, name)
		if err != nil {
			return err
		}
		_, err = s.db.ExecContext(ctx, s.q(`
			INSERT INTO content_tags (content_id, tag_id) VALUES (?, ?)
		`), contentID, tag.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListTags returns the item's tags ordered by name.
func (s *ContentStore) ListTags(ctx context.Context, contentID string) ([]*Tag, error) {
	var tags []*Tag
	err := s.db.SelectContext(ctx, &tags, s.q(`
		SELECT t.* FROM tags t
		JOIN content_tags ct ON ct.tag_id = t.id
		WHERE ct.content_id = ?
		ORDER BY t.name ASC
	`), contentID)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// CountAll returns the total number of content items across all owners.
func (s *ContentStore) CountAll(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM content`)
	if err != nil {
		return 0, err
	}
	return n, nil
}
