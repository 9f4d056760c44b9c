package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/repository"
	postmodel "blog-backend/internal/domains/post/model"
	postrepo "blog-backend/internal/domains/post/repository"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/ownership"
)

type commentService struct {
	repo  repository.Repository
	posts postrepo.Repository
}

// NewCommentService wires the comment repository plus the post repository
// used to verify the parent post exists.
func NewCommentService(repo repository.Repository, posts postrepo.Repository) Service {
	return &commentService{
		repo:  repo,
		posts: posts,
	}
}

func (s *commentService) Create(ctx context.Context, author *user.User, postID uuid.UUID, req model.CreateCommentRequest) (*model.CommentDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &model.Comment{
		ID:        uuid.New(),
		Content:   req.Content,
		PostID:    postID,
		AuthorID:  author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	joined := model.WithAuthor{
		Comment:              *c,
		AuthorName:           author.Name,
		AuthorProfilePicture: author.ProfilePicture,
	}
	dto := joined.ToDTO()
	return &dto, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.CommentDTO, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, comments[i].ToDTO())
	}
	return dtos, nil
}

func (s *commentService) Update(ctx context.Context, actorID, id uuid.UUID, req model.UpdateCommentRequest) (*model.CommentDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ownership.Assert(existing.AuthorID, actorID); err != nil {
		return nil, err
	}

	c := existing.Comment
	c.Content = req.Content
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, &c); err != nil {
		return nil, err
	}

	joined := model.WithAuthor{
		Comment:              c,
		AuthorName:           existing.AuthorName,
		AuthorProfilePicture: existing.AuthorProfilePicture,
	}
	dto := joined.ToDTO()
	return &dto, nil
}

func (s *commentService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := ownership.Assert(existing.AuthorID, actorID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func (s *commentService) requirePost(ctx context.Context, postID uuid.UUID) error {
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return postmodel.ErrPostNotFound
	}
	return nil
}
