package usage

import (
	"net/http"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "usage counter not found")
	ErrPairRequired       = apperror.Validation("Both department and stadium IDs are required.")
	ErrDepartmentNotFound = apperror.New(http.StatusNotFound, "department not found")
	ErrStadiumNotFound    = apperror.New(http.StatusNotFound, "stadium not found")
)

// Counter tallies how often a department has used a stadium.
// There is at most one Counter per (department, stadium) pair.
type Counter struct {
	ID             string
	DepartmentID   string
	DepartmentName string
	StadiumID      string
	StadiumName    string
	Count          int
}

type Filter struct {
	DepartmentID string
	StadiumID    string
}
