package http

import "github.com/nekogravitycat/stadium-schedule-backend/internal/usage"

type CounterResponse struct {
	ID             string `json:"id"`
	Counter        int    `json:"counter"`
	Department     string `json:"department"`
	DepartmentName string `json:"department_name"`
	Stadium        string `json:"stadium"`
	StadiumName    string `json:"stadium_name"`
}

func NewResponse(c *usage.Counter) CounterResponse {
	return CounterResponse{
		ID:             c.ID,
		Counter:        c.Count,
		Department:     c.DepartmentID,
		DepartmentName: c.DepartmentName,
		Stadium:        c.StadiumID,
		StadiumName:    c.StadiumName,
	}
}

func NewResponses(list []*usage.Counter) []CounterResponse {
	out := make([]CounterResponse, len(list))
	for i, c := range list {
		out[i] = NewResponse(c)
	}
	return out
}

// IncrementRequest leaves presence checks to the service so a missing id
// gets the pair-required message rather than a binding error.
type IncrementRequest struct {
	Department string `json:"department" binding:"omitempty,uuid"`
	Stadium    string `json:"stadium" binding:"omitempty,uuid"`
}

type StatsRequest struct {
	Department string `form:"department" binding:"omitempty,uuid"`
	Stadium    string `form:"stadium" binding:"omitempty,uuid"`
}
