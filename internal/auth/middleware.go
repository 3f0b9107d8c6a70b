package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/response"
)

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abort(c, http.StatusUnauthorized, "invalid Authorization header format")
			return
		}

		claims, err := jwtManager.ParseAndValidate(strings.TrimSpace(parts[1]))
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(usernameKey, claims.Username)

		c.Next()
	}
}

// AdminChecker reports whether a user holds system admin rights.
type AdminChecker interface {
	IsSystemAdmin(ctx context.Context, userID string) (bool, error)
}

// RequireSystemAdmin ensures the authenticated user is a system admin.
// It MUST be used after AuthRequired.
func RequireSystemAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			abort(c, http.StatusUnauthorized, "unauthorized")
			return
		}

		ok, err := checker.IsSystemAdmin(c.Request.Context(), userID)
		if err != nil {
			abort(c, http.StatusUnauthorized, "user not found")
			return
		}
		if !ok {
			abort(c, http.StatusForbidden, "forbidden: system admin access required")
			return
		}

		c.Next()
	}
}

func abort(c *gin.Context, status int, msg string) {
	response.Error(c, apperror.New(status, msg))
	c.Abort()
}
