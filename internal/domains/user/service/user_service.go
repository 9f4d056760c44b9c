package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"blog-backend/internal/domains/user"
	"blog-backend/pkg/jwt"
)

// bcrypt cost 12: balance between login latency and hash strength
const bcryptCost = 12

type userService struct {
	repo   user.Repository
	tokens *jwt.Manager
}

// NewUserService wires the repository and token manager into the
// authentication/profile business logic.
func NewUserService(repo user.Repository, tokens *jwt.Manager) user.Service {
	return &userService{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
	}

	// Uniqueness is enforced by the database; a lost race between two
	// concurrent registrations still surfaces as ErrEmailAlreadyExists.
	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	return s.tokenResponse(newUser)
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a wrong password; no email probing
			return nil, user.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	// Constant-time comparison
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.tokenResponse(u)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req user.UpdateProfileRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.ProfilePicture != nil {
		u.ProfilePicture = req.ProfilePicture
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.repo.Delete(ctx, userID)
}

func (s *userService) tokenResponse(u *user.User) (*user.TokenResponse, error) {
	accessToken, err := s.tokens.Generate(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        u.ToDTO(),
	}, nil
}
