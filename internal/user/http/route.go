package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all user-related routes (including login).
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	// Public Routes
	g.POST("/users", h.Register)
	g.POST("/login", h.Login)

	// Authenticated Routes
	authed := g.Group("")
	authed.Use(authMiddleware)
	{
		authed.GET("/profile", h.Profile)
		authed.PATCH("/profile", h.UpdateProfile)
		authed.GET("/users-by-department", h.ByDepartment)
		authed.GET("/users/:id", h.Get)
		authed.PATCH("/users/:id", h.Update)
	}

	// Admin Routes
	admin := g.Group("/users")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.List)
		admin.DELETE("/:id", h.Delete)
	}
}
