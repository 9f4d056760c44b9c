package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/ownership"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// Forbidden details mirror the operation being refused
const (
	forbiddenEdit   = "Unauthorized access - only the author can edit this post"
	forbiddenDelete = "Unauthorized access - only the author can delete this post"
)

// PostHandler serves the post CRUD endpoints
type PostHandler struct {
	service service.Service
}

func NewPostHandler(service service.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	dto, err := h.service.Create(c.Request.Context(), u, req)
	if err != nil {
		h.handleError(c, err, forbiddenEdit)
		return
	}

	response.Created(c, dto)
}

// List handles GET /posts (public)
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, forbiddenEdit)
		return
	}

	response.OK(c, posts)
}

// GetByID handles GET /posts/:id (public)
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := h.postID(c)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err, forbiddenEdit)
		return
	}

	response.OK(c, dto)
}

// Update handles PUT /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := h.postID(c)
	if !ok {
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	dto, err := h.service.Update(c.Request.Context(), u.ID, id, req)
	if err != nil {
		h.handleError(c, err, forbiddenEdit)
		return
	}

	response.OK(c, dto)
}

// Delete handles DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := h.postID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), u.ID, id); err != nil {
		h.handleError(c, err, forbiddenDelete)
		return
	}

	response.Message(c, "Post successfully deleted")
}

// postID parses the :id path parameter. An unparseable id can't reference
// any post, so it reads as not found rather than bad request.
func (h *PostHandler) postID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Post not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *PostHandler) handleError(c *gin.Context, err error, forbiddenDetail string) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		response.ValidationFailed(c, fieldErrs)
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, ownership.ErrNotOwner):
		response.Forbidden(c, forbiddenDetail)
	default:
		logger.Error("post handler", err)
		response.InternalServerError(c)
	}
}
