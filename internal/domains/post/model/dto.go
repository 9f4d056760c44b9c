package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreatePostRequest - title and content required, the rest optional
type CreatePostRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 0),
		),
	)
}

// UpdatePostRequest - any subset of fields; absent fields are untouched
type UpdatePostRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil, validation.Length(1, 255).Error("title must not be empty")),
		),
		validation.Field(&r.Content,
			validation.When(r.Content != nil, validation.Length(1, 0).Error("content must not be empty")),
		),
	)
}

// PostDTO is the denormalized response view
type PostDTO struct {
	ID                   uuid.UUID `json:"id"`
	Title                string    `json:"title"`
	Content              string    `json:"content"`
	Excerpt              *string   `json:"excerpt"`
	Category             *string   `json:"category"`
	AuthorID             uuid.UUID `json:"author_id"`
	AuthorName           string    `json:"author_name"`
	AuthorProfilePicture *string   `json:"author_profile_picture"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ToDTO converts a joined row to the response view
func (p *WithAuthor) ToDTO() PostDTO {
	return PostDTO{
		ID:                   p.ID,
		Title:                p.Title,
		Content:              p.Content,
		Excerpt:              p.Excerpt,
		Category:             p.Category,
		AuthorID:             p.AuthorID,
		AuthorName:           p.AuthorName,
		AuthorProfilePicture: p.AuthorProfilePicture,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
