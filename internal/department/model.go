package department

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "department not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "name is required")
)

// Department is an organizational unit that books stadiums.
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Filter defines parameters for listing departments.
type Filter struct {
	Name      string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
