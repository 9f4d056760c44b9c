package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"
)

const currentUserKey = "currentUser"

// Auth resolves the bearer token to an authenticated user and stores it in
// the request context. Protected handlers read it back via CurrentUser.
// A valid token whose subject no longer exists (user deleted after issuance)
// is rejected the same way as a bad token.
func Auth(tokens *jwt.Manager, users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		subject, err := tokens.Verify(parts[1])
		if err != nil {
			response.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(subject)
		if err != nil {
			response.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		u, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				response.Unauthorized(c, "Could not validate credentials")
			} else {
				logger.Error("auth middleware: load user", err)
				response.InternalServerError(c)
			}
			c.Abort()
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the user placed in the context by Auth.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	u, ok := value.(*user.User)
	return u, ok
}
