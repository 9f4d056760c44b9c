package user

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for authentication and profiles
type Service interface {
	// Authentication
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// Profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserDTO, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
