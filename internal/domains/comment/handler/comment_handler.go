package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/comment/model"
	"blog-backend/internal/domains/comment/service"
	postmodel "blog-backend/internal/domains/post/model"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/ownership"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"
)

// Forbidden details mirror the operation being refused
const (
	forbiddenEdit   = "Unauthorized access - only the author can edit this comment"
	forbiddenDelete = "Unauthorized access - only the author can delete this comment"
)

// CommentHandler serves the comment endpoints
type CommentHandler struct {
	service service.Service
}

func NewCommentHandler(service service.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /posts/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Post not found")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	dto, err := h.service.Create(c.Request.Context(), u, postID, req)
	if err != nil {
		h.handleError(c, err, forbiddenEdit)
		return
	}

	response.Created(c, dto)
}

// ListByPost handles GET /posts/:id/comments (public)
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Post not found")
		return
	}

	comments, err := h.service.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.handleError(c, err, forbiddenEdit)
		return
	}

	response.OK(c, comments)
}

// Update handles PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := h.commentID(c)
	if !ok {
		return
	}

	var req model.UpdateCommentRequest
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

// Delete handles DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, ok := h.commentID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), u.ID, id); err != nil {
		h.handleError(c, err, forbiddenDelete)
		return
	}

	response.Message(c, "Comment successfully deleted")
}

func (h *CommentHandler) commentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Comment not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *CommentHandler) handleError(c *gin.Context, err error, forbiddenDetail string) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		response.ValidationFailed(c, fieldErrs)
	case errors.Is(err, postmodel.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, model.ErrCommentNotFound):
		response.NotFound(c, "Comment not found")
	case errors.Is(err, ownership.ErrNotOwner):
		response.Forbidden(c, forbiddenDetail)
	default:
		logger.Error("comment handler", err)
		response.InternalServerError(c)
	}
}
