package auth

import "github.com/gin-gonic/gin"

const (
	userIDKey   = "userID"
	usernameKey = "username"
)

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// GetUsername returns the authenticated user's username or empty string.
func GetUsername(c *gin.Context) string {
	return c.GetString(usernameKey)
}
