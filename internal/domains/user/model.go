package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity, mapped 1:1 to the users table
type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Email string    `db:"email" json:"email"`

	// Never expose in JSON
	PasswordHash string `db:"password_hash" json:"-"`

	Name           string  `db:"name" json:"name"`
	ProfilePicture *string `db:"profile_picture" json:"profile_picture"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
