package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/checks")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/usage-stats", h.Stats)
	group.GET("/usage-stats/", h.Stats)
	group.GET("/:id", h.Get)

	// === Authenticated Routes ===
	authGroup := group.Group("")
	authGroup.Use(authMiddleware)
	{
		authGroup.POST("/increment-counter", h.Increment)
		authGroup.POST("/increment-counter/", h.Increment)
		authGroup.DELETE("/:id", h.Delete)
	}
}
