package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/user"
)

// Service is the business logic contract for posts.
// Mutating operations take the acting user and enforce ownership before
// touching anything; precondition order is existence, then ownership.
type Service interface {
	Create(ctx context.Context, author *user.User, req model.CreatePostRequest) (*model.PostDTO, error)
	List(ctx context.Context) ([]model.PostDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PostDTO, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.PostDTO, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req model.UpdatePostRequest) (*model.PostDTO, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
