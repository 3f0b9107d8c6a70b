package schedule

import (
	"net/http"
	"slices"

	"github.com/nekogravitycat/stadium-schedule-backend/internal/pkg/apperror"
)

var ErrInvalidOperatingHours = apperror.New(http.StatusBadRequest, "open must be before close.")

// OperatingHours is the daily window availability is computed within.
type OperatingHours struct {
	Open  Clock
	Close Clock
}

// DefaultOperatingHours is 08:00 to 22:00.
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{Open: At(8, 0), Close: At(22, 0)}
}

func (h OperatingHours) Validate() error {
	if h.Open >= h.Close || h.Close > endOfDay {
		return ErrInvalidOperatingHours
	}
	return nil
}

// HoursOverride replaces either bound of the configured operating hours for one query.
type HoursOverride struct {
	Open  *Clock
	Close *Clock
}

// Apply returns base with the set bounds replaced.
func (o HoursOverride) Apply(base OperatingHours) OperatingHours {
	if o.Open != nil {
		base.Open = *o.Open
	}
	if o.Close != nil {
		base.Close = *o.Close
	}
	return base
}

// AvailableSlots returns the free gaps inside hours not covered by existing.
// existing need not be sorted or disjoint. Empty gaps are never emitted.
func AvailableSlots(hours OperatingHours, existing []Interval) []Interval {
	sorted := slices.Clone(existing)
	slices.SortFunc(sorted, func(a, b Interval) int { return int(a.Start - b.Start) })

	slots := make([]Interval, 0, len(sorted)+1)
	cursor := hours.Open
	for _, s := range sorted {
		if s.Start >= hours.Close {
			break
		}
		if cursor < s.Start {
			slots = append(slots, Interval{Start: cursor, End: s.Start})
		}
		cursor = max(cursor, s.End)
	}
	if cursor < hours.Close {
		slots = append(slots, Interval{Start: cursor, End: hours.Close})
	}
	return slots
}
