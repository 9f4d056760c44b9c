package service

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/user"
)

// Service is the business logic contract for comments. Creation and
// listing verify the parent post exists first; mutation checks existence,
// then ownership.
type Service interface {
	Create(ctx context.Context, author *user.User, postID uuid.UUID, req model.CreateCommentRequest) (*model.CommentDTO, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentDTO, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req model.UpdateCommentRequest) (*model.CommentDTO, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
