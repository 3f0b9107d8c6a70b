package schedule

// Overlaps reports whether two half-open intervals share any instant.
// Intervals that only touch at an endpoint do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// FindConflict returns the index of the first interval in existing that
// overlaps candidate, or -1.
func FindConflict(candidate Interval, existing []Interval) int {
	for i, e := range existing {
		if Overlaps(candidate, e) {
			return i
		}
	}
	return -1
}

// HasConflict reports whether candidate overlaps any interval in existing.
func HasConflict(candidate Interval, existing []Interval) bool {
	return FindConflict(candidate, existing) >= 0
}

// conflictWith returns the first active schedule in scope that overlaps candidate,
// ignoring the schedule with id exclude.
func conflictWith(candidate Interval, scope []*Schedule, exclude string) *Schedule {
	intervals := make([]Interval, 0, len(scope))
	owners := make([]*Schedule, 0, len(scope))
	for _, s := range scope {
		if s.ID == exclude || !s.IsActive {
			continue
		}
		intervals = append(intervals, s.Interval())
		owners = append(owners, s)
	}
	if i := FindConflict(candidate, intervals); i >= 0 {
		return owners[i]
	}
	return nil
}
