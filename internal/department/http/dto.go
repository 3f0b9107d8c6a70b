package http

import (
	"strings"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/department"
	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/request"
)

type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(d *department.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}

type ListDepartmentsRequest struct {
	request.ListParams
	Name   string `form:"name"`
	SortBy string `form:"sort_by" binding:"omitempty,oneof=name created_at"`
}

type CreateRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateRequest struct {
	Name *string `json:"name"`
}

func (r *ListDepartmentsRequest) Normalize() {
	r.SortOrder = strings.ToUpper(r.SortOrder)
}
