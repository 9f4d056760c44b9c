package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	postservice "blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// UserHandler serves the auth and profile endpoints
type UserHandler struct {
	service user.Service
	posts   postservice.Service
}

func NewUserHandler(service user.Service, posts postservice.Service) *UserHandler {
	return &UserHandler{
		service: service,
		posts:   posts,
	}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, res)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, res)
}

// Logout handles POST /auth/logout. Tokens are self-contained and not
// tracked server-side, so this is just an acknowledgment; the token stays
// valid until its natural expiry.
func (h *UserHandler) Logout(c *gin.Context) {
	response.Message(c, "Successfully logged out")
}

// ========================================
// PROFILE ENDPOINTS (protected)
// ========================================

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	dto := u.ToDTO()
	response.OK(c, dto)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	dto, err := h.service.UpdateProfile(c.Request.Context(), u.ID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, dto)
}

// ListMyPosts handles GET /users/me/posts
func (h *UserHandler) ListMyPosts(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	posts, err := h.posts.ListByAuthor(c.Request.Context(), u.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, posts)
}

// DeleteAccount handles DELETE /users/me. Everything the user owns goes
// with them: their comments, comments on their posts, and their posts.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), u.ID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, "Account successfully deleted")
}

// handleError maps domain errors to HTTP responses
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		response.ValidationFailed(c, fieldErrs)
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.BadRequest(c, "Email already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found")
	default:
		logger.Error("user handler", err)
		response.InternalServerError(c)
	}
}
