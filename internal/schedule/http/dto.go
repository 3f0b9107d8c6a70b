package http

import (
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/schedule"
)

type ScheduleResponse struct {
	ID             string    `json:"id"`
	Department     string    `json:"department"`
	DepartmentName string    `json:"department_name"`
	Stadium        string    `json:"stadium"`
	StadiumName    string    `json:"stadium_name"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewResponse(s *schedule.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:             s.ID,
		Department:     s.DepartmentID,
		DepartmentName: s.DepartmentName,
		Stadium:        s.StadiumID,
		StadiumName:    s.StadiumName,
		Date:           s.Date.Format(schedule.DateLayout),
		StartTime:      s.StartTime.Long(),
		EndTime:        s.EndTime.Long(),
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewSlotResponses(slots []schedule.Interval) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{StartTime: s.Start.String(), EndTime: s.End.String()}
	}
	return out
}

type ListSchedulesRequest struct {
	Date       string `form:"date"`
	Department string `form:"department" binding:"omitempty,uuid"`
	Stadium    string `form:"stadium" binding:"omitempty,uuid"`
	IsActive   *bool  `form:"is_active"`
}

// Filter converts the query into a schedule.Filter.
func (r ListSchedulesRequest) Filter() (schedule.Filter, error) {
	f := schedule.Filter{
		DepartmentID: r.Department,
		StadiumID:    r.Stadium,
		IsActive:     r.IsActive,
	}
	if r.Date != "" {
		d, err := schedule.ParseDate(r.Date)
		if err != nil {
			return schedule.Filter{}, err
		}
		f.Date = &d
	}
	return f, nil
}

type AvailableSlotsRequest struct {
	Date    string `form:"date"`
	Stadium string `form:"stadium" binding:"omitempty,uuid"`
	Open    string `form:"open"`
	Close   string `form:"close"`
}

// Override returns the bounds given in the query. Unset bounds stay nil.
func (r AvailableSlotsRequest) Override() (schedule.HoursOverride, error) {
	var o schedule.HoursOverride
	if r.Open != "" {
		c, err := schedule.ParseClock(r.Open)
		if err != nil {
			return o, err
		}
		o.Open = &c
	}
	if r.Close != "" {
		c, err := schedule.ParseClock(r.Close)
		if err != nil {
			return o, err
		}
		o.Close = &c
	}
	return o, nil
}

type CreateRequest struct {
	Department string `json:"department" binding:"required,uuid"`
	Stadium    string `json:"stadium" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	IsActive   *bool  `json:"is_active"`
}

func (r CreateRequest) ToService() (schedule.CreateRequest, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return schedule.CreateRequest{}, err
	}
	start, err := schedule.ParseClock(r.StartTime)
	if err != nil {
		return schedule.CreateRequest{}, err
	}
	end, err := schedule.ParseClock(r.EndTime)
	if err != nil {
		return schedule.CreateRequest{}, err
	}
	return schedule.CreateRequest{
		DepartmentID: r.Department,
		StadiumID:    r.Stadium,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		IsActive:     r.IsActive,
	}, nil
}

type UpdateRequest struct {
	Department *string `json:"department" binding:"omitempty,uuid"`
	Stadium    *string `json:"stadium" binding:"omitempty,uuid"`
	Date       *string `json:"date"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	IsActive   *bool   `json:"is_active"`
}

func (r UpdateRequest) ToService() (schedule.UpdateRequest, error) {
	req := schedule.UpdateRequest{
		DepartmentID: r.Department,
		StadiumID:    r.Stadium,
		IsActive:     r.IsActive,
	}
	if r.Date != nil {
		d, err := schedule.ParseDate(*r.Date)
		if err != nil {
			return req, err
		}
		req.Date = &d
	}
	if r.StartTime != nil {
		c, err := schedule.ParseClock(*r.StartTime)
		if err != nil {
			return req, err
		}
		req.StartTime = &c
	}
	if r.EndTime != nil {
		c, err := schedule.ParseClock(*r.EndTime)
		if err != nil {
			return req, err
		}
		req.EndTime = &c
	}
	return req, nil
}
