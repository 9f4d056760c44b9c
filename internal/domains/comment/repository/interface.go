package repository

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
)

// Repository is the data access contract for comments
type Repository interface {
	// Create inserts a new comment
	Create(ctx context.Context, comment *model.Comment) error

	// FindByID loads a comment joined with its author's current
	// name/picture. Returns model.ErrCommentNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*model.WithAuthor, error)

	// ListByPost returns a post's comments, newest-created first
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.WithAuthor, error)

	// Update persists content and updated_at
	Update(ctx context.Context, comment *model.Comment) error

	// Delete removes the comment.
	// Returns model.ErrCommentNotFound when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
