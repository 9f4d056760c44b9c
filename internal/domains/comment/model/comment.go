package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment represents a comment on a post.
// PostID and AuthorID are immutable after creation.
type Comment struct {
	ID       uuid.UUID `json:"id"`
	Content  string    `json:"content"`
	PostID   uuid.UUID `json:"post_id"`
	AuthorID uuid.UUID `json:"author_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WithAuthor carries a comment joined with its author's current display
// fields, resolved at read time.
type WithAuthor struct {
	Comment
	AuthorName           string  `json:"author_name"`
	AuthorProfilePicture *string `json:"author_profile_picture"`
}
