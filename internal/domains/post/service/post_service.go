package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/repository"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/ownership"
)

type postService struct {
	repo repository.Repository
}

func NewPostService(repo repository.Repository) Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, author *user.User, req model.CreatePostRequest) (*model.PostDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &model.Post{
		ID:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Category:  req.Category,
		AuthorID:  author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	// Author fields come from the authenticated user; no extra read needed
	joined := model.WithAuthor{
		Post:                 *p,
		AuthorName:           author.Name,
		AuthorProfilePicture: author.ProfilePicture,
	}
	dto := joined.ToDTO()
	return &dto, nil
}

func (s *postService) List(ctx context.Context) ([]model.PostDTO, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(posts), nil
}

func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*model.PostDTO, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := p.ToDTO()
	return &dto, nil
}

func (s *postService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.PostDTO, error) {
	posts, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return toDTOs(posts), nil
}

func (s *postService) Update(ctx context.Context, actorID, id uuid.UUID, req model.UpdatePostRequest) (*model.PostDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Existence before ownership before mutation
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ownership.Assert(existing.AuthorID, actorID); err != nil {
		return nil, err
	}

	p := existing.Post
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Excerpt != nil {
		p.Excerpt = req.Excerpt
	}
	if req.Category != nil {
		p.Category = req.Category
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, &p); err != nil {
		return nil, err
	}

	joined := model.WithAuthor{
		Post:                 p,
		AuthorName:           existing.AuthorName,
		AuthorProfilePicture: existing.AuthorProfilePicture,
	}
	dto := joined.ToDTO()
	return &dto, nil
}

func (s *postService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := ownership.Assert(existing.AuthorID, actorID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}

func toDTOs(posts []model.WithAuthor) []model.PostDTO {
	dtos := make([]model.PostDTO, 0, len(posts))
	for i := range posts {
		dtos = append(dtos, posts[i].ToDTO())
	}
	return dtos
}
