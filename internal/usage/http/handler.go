package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/request"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/response"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/usage"
)

type Handler struct {
	service usage.Service
}

func NewHandler(service usage.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Increment(c *gin.Context) {
	var body IncrementRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	counter, err := h.service.Increment(c.Request.Context(), body.Department, body.Stadium)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(counter))
}

// Stats lists counters filtered by department and/or stadium.
func (h *Handler) Stats(c *gin.Context) {
	var req StatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	list, err := h.service.List(c.Request.Context(), usage.Filter{
		DepartmentID: req.Department,
		StadiumID:    req.Stadium,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponses(list))
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), usage.Filter{})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponses(list))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	counter, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(counter))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
