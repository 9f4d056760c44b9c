package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Content string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 0),
		),
	)
}

// UpdateCommentRequest replaces the content; it is the only mutable field
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 0),
		),
	)
}

// CommentDTO is the denormalized response view
type CommentDTO struct {
	ID                   uuid.UUID `json:"id"`
	Content              string    `json:"content"`
	PostID               uuid.UUID `json:"post_id"`
	AuthorID             uuid.UUID `json:"author_id"`
	AuthorName           string    `json:"author_name"`
	AuthorProfilePicture *string   `json:"author_profile_picture"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func (c *WithAuthor) ToDTO() CommentDTO {
	return CommentDTO{
		ID:                   c.ID,
		Content:              c.Content,
		PostID:               c.PostID,
		AuthorID:             c.AuthorID,
		AuthorName:           c.AuthorName,
		AuthorProfilePicture: c.AuthorProfilePicture,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}
