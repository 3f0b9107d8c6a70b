package http

import (
	"strings"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/request"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/stadium"
)

type StadiumResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(s *stadium.Stadium) StadiumResponse {
	return StadiumResponse{
		ID:        s.ID,
		Name:      s.Name,
		Location:  s.Location,
		Capacity:  s.Capacity,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}

type ListStadiumsRequest struct {
	request.ListParams
	Keyword  string `form:"q"`
	IsActive *bool  `form:"is_active"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=name capacity created_at"`
}

func (r *ListStadiumsRequest) Normalize() {
	if r.SortBy == "" {
		r.SortBy = "created_at"
	}
	r.SortOrder = strings.ToUpper(r.SortOrder)
	if r.SortOrder == "" {
		r.SortOrder = "DESC"
	}
}

type CreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	IsActive *bool  `json:"is_active"`
}

type UpdateRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Capacity *int    `json:"capacity"`
	IsActive *bool   `json:"is_active"`
}
