package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when signing up with a username that is taken.
	ErrDuplicateUsername = errors.New("username is already taken")
)

// ContentStoreIface exposes all content data operations.
// Handlers never query the DB directly; all access goes through this interface.
type ContentStoreIface interface {
	Create(ctx context.Context, title, link, contentType, ownerID string, tagNames []string) (*ContentItem, error)
	GetByID(ctx context.Context, id string) (*ContentItem, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*ContentItem, error)
	DeleteOwned(ctx context.Context, id, ownerID string) error
	SetTags(ctx context.Context, contentID string, tagNames []string) error
	ListTags(ctx context.Context, contentID string) ([]*Tag, error)
}

// ShareStoreIface exposes share-link operations.
type ShareStoreIface interface {
	GetOrCreate(ctx context.Context, ownerID string) (*ShareLink, error)
	GetByHash(ctx context.Context, hash string) (*ShareLink, error)
	DeleteByOwner(ctx context.Context, ownerID string) error
}
