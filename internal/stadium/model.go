package stadium

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "stadium not found")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "name is required")
	ErrCapacityInvalid = apperror.New(http.StatusBadRequest, "capacity must be zero or greater")
)

// Stadium is a bookable venue. Schedules are scoped to a stadium and a date.
type Stadium struct {
	ID        string
	Name      string
	Location  string
	Capacity  int
	IsActive  bool
	CreatedAt time.Time
}

// Filter defines parameters for listing stadiums.
type Filter struct {
	Keyword   string // matches name or location
	IsActive  *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
