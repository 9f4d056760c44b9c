package model

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a blog post entity
type Post struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Excerpt  *string   `json:"excerpt"`
	Category *string   `json:"category"`

	// AuthorID is immutable after creation
	AuthorID uuid.UUID `json:"author_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WithAuthor carries a post joined with its author's current display
// fields. Author name and picture are resolved at read time, never stored
// on the post row.
type WithAuthor struct {
	Post
	AuthorName           string  `json:"author_name"`
	AuthorProfilePicture *string `json:"author_profile_picture"`
}
