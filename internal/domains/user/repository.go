package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for users
type Repository interface {
	// Create inserts a new user.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user *User) error

	// FindByID loads a user by id.
	// Returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail loads a user by email (login path).
	// Returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update persists profile changes (name, profile picture).
	Update(ctx context.Context, user *User) error

	// Delete removes the user and everything they own: their comments,
	// comments on their posts, their posts, then the user row, all in one
	// transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
