package schedule

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/apperror"
)

// DateLayout is the wire and query format of a schedule date.
const DateLayout = "2006-01-02"

// KindTimeConflict is the error code returned when a booking overlaps another.
const KindTimeConflict apperror.Kind = "time_conflict"

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "schedule not found")
	ErrTimeConflict       = apperror.NewKind(http.StatusBadRequest, KindTimeConflict, "Time conflict with an existing schedule.")
	ErrInvalidTimeRange   = apperror.Validation("start_time must be before end_time.")
	ErrInvalidDate        = apperror.Validation("Invalid date format. Use YYYY-MM-DD.")
	ErrInvalidTime        = apperror.Validation("Invalid time format. Use HH:MM.")
	ErrSlotParamsRequired = apperror.Validation("Both date and stadium parameters are required.")
	ErrDepartmentNotFound = apperror.New(http.StatusNotFound, "department not found")
	ErrStadiumNotFound    = apperror.New(http.StatusNotFound, "stadium not found")
)

// ConflictError reports the active schedule a candidate collided with.
// ScheduleID is empty when the collision was detected by the database constraint.
type ConflictError struct {
	ScheduleID string
}

func (e *ConflictError) Error() string {
	return ErrTimeConflict.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrTimeConflict
}

func (e *ConflictError) ErrorDetails() map[string]any {
	if e.ScheduleID == "" {
		return nil
	}
	return map[string]any{"conflicting_schedule_id": e.ScheduleID}
}

// Schedule is a booking of a stadium by a department on one date.
type Schedule struct {
	ID             string
	DepartmentID   string
	DepartmentName string
	StadiumID      string
	StadiumName    string
	Date           time.Time
	StartTime      Clock
	EndTime        Clock
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (s *Schedule) Interval() Interval {
	return Interval{Start: s.StartTime, End: s.EndTime}
}

// Filter selects schedules. Zero values are ignored; set fields combine with AND.
type Filter struct {
	Date         *time.Time
	DepartmentID string
	StadiumID    string
	IsActive     *bool
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
