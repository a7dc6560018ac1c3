// Package store holds the persistence collaborators for posts.
package store

import (
	"context"
	"errors"

	"github.com/vaughan-dsouza/posts-api/internal/models"
)

// ErrNotFound is returned when no post exists for the requested id.
var ErrNotFound = errors.New("post not found")

// PostStore provides CRUD and count over Post entities.
type PostStore interface {
	// ListAll returns every post in insertion order.
	ListAll(ctx context.Context) ([]models.Post, error)

	// FindByID returns ErrNotFound when the id is unknown.
	FindByID(ctx context.Context, id int64) (models.Post, error)

	Create(ctx context.Context, title, content string) (models.Post, error)

	// Modify overwrites title and content of the stored post and updates
	// the passed value to match.
	Modify(ctx context.Context, post *models.Post, title, content string) error

	Delete(ctx context.Context, post models.Post) error

	Count(ctx context.Context) (int64, error)
}

// Transactor runs fn inside one unit of work. The PostStore passed to fn is
// bound to that unit; fn returning an error discards every write made
// through it.
type Transactor interface {
	InTx(ctx context.Context, fn func(PostStore) error) error
}

// Store is what the HTTP layer depends on.
type Store interface {
	PostStore
	Transactor
	Ping(ctx context.Context) error
}
