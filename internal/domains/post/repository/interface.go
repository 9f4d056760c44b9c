package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
)

// Repository is the data access contract for posts
type Repository interface {
	// Create inserts a new post
	Create(ctx context.Context, post *model.Post) error

	// FindByID loads a post joined with its author's current name/picture.
	// Returns model.ErrPostNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*model.WithAuthor, error)

	// List returns all posts, newest-created first
	List(ctx context.Context) ([]model.WithAuthor, error)

	// ListByAuthor returns one author's posts, newest-created first
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.WithAuthor, error)

	// Update persists title/content/excerpt/category and updated_at
	Update(ctx context.Context, post *model.Post) error

	// Delete removes the post and its comments in one transaction.
	// Returns model.ErrPostNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists reports whether the post id is present
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
