package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/schedules")

	// === Public Routes ===
	group.GET("", h.List)
	// Both slash forms are served directly so clients never see a redirect.
	group.GET("/available-slots", h.AvailableSlots)
	group.GET("/available-slots/", h.AvailableSlots)
	group.GET("/:id", h.Get)

	// === Authenticated Routes ===
	authGroup := group.Group("")
	authGroup.Use(authMiddleware)
	{
		authGroup.POST("", h.Create)
		authGroup.PATCH("/:id", h.Update)
		authGroup.DELETE("/:id", h.Delete)
	}
}
