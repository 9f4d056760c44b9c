package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorBody is the uniform failure payload. Detail is a string for most
// errors and a field->message map for validation failures.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

// MessageBody is the payload for acknowledgment-only endpoints
type MessageBody struct {
	Message string `json:"message"`
}

// JSON writes a success payload as-is
func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}

func Message(c *gin.Context, message string) {
	JSON(c, http.StatusOK, MessageBody{Message: message})
}

// Error responses

func Error(c *gin.Context, statusCode int, detail interface{}) {
	c.JSON(statusCode, ErrorBody{Detail: detail})
}

func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

func Unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	Error(c, http.StatusUnauthorized, detail)
}

func Forbidden(c *gin.Context, detail string) {
	Error(c, http.StatusForbidden, detail)
}

func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

func InternalServerError(c *gin.Context) {
	// Never leak internals to the client
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// ValidationFailed maps ozzo validation errors to a 422 with per-field
// detail; anything else degrades to the error message.
func ValidationFailed(c *gin.Context, err error) {
	if fieldErrs, ok := err.(validation.Errors); ok {
		details := make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			details[field] = fieldErr.Error()
		}
		Error(c, http.StatusUnprocessableEntity, details)
		return
	}
	Error(c, http.StatusUnprocessableEntity, err.Error())
}
