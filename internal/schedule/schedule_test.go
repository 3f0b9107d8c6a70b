package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(sh, sm, eh, em int) Interval {
	return Interval{Start: At(sh, sm), End: At(eh, em)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", iv(10, 0, 11, 0), iv(10, 0, 11, 0), true},
		{"partial left", iv(9, 30, 10, 30), iv(10, 0, 11, 0), true},
		{"partial right", iv(10, 30, 11, 30), iv(10, 0, 11, 0), true},
		{"contained", iv(10, 15, 10, 45), iv(10, 0, 11, 0), true},
		{"containing", iv(9, 0, 12, 0), iv(10, 0, 11, 0), true},
		{"touching before", iv(9, 0, 10, 0), iv(10, 0, 11, 0), false},
		{"touching after", iv(11, 0, 12, 0), iv(10, 0, 11, 0), false},
		{"disjoint", iv(13, 0, 14, 0), iv(10, 0, 11, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	existing := []Interval{iv(8, 0, 9, 0), iv(10, 0, 11, 0), iv(10, 30, 12, 0)}

	assert.Equal(t, 1, FindConflict(iv(10, 45, 11, 15), existing))
	assert.Equal(t, -1, FindConflict(iv(9, 0, 10, 0), existing))
	assert.True(t, HasConflict(iv(11, 30, 13, 0), existing))
	assert.False(t, HasConflict(iv(12, 0, 13, 0), existing))
	assert.False(t, HasConflict(iv(12, 0, 13, 0), nil))
}

func TestConflictWith_SkipsSelfAndInactive(t *testing.T) {
	scope := []*Schedule{
		{ID: "a", StartTime: At(10, 0), EndTime: At(11, 0), IsActive: true},
		{ID: "b", StartTime: At(10, 0), EndTime: At(11, 0), IsActive: false},
		{ID: "c", StartTime: At(14, 0), EndTime: At(15, 0), IsActive: true},
	}

	assert.Nil(t, conflictWith(iv(10, 0, 11, 0), scope, "a"))

	got := conflictWith(iv(14, 30, 16, 0), scope, "a")
	require.NotNil(t, got)
	assert.Equal(t, "c", got.ID)

	got = conflictWith(iv(10, 30, 10, 45), scope, "")
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestAvailableSlots(t *testing.T) {
	hours := DefaultOperatingHours()

	tests := []struct {
		name     string
		existing []Interval
		want     []Interval
	}{
		{
			name: "empty day",
			want: []Interval{iv(8, 0, 22, 0)},
		},
		{
			name:     "single booking",
			existing: []Interval{iv(10, 0, 11, 0)},
			want:     []Interval{iv(8, 0, 10, 0), iv(11, 0, 22, 0)},
		},
		{
			name:     "fully booked",
			existing: []Interval{iv(8, 0, 22, 0)},
			want:     []Interval{},
		},
		{
			name:     "unsorted input",
			existing: []Interval{iv(15, 0, 16, 0), iv(9, 0, 10, 0)},
			want:     []Interval{iv(8, 0, 9, 0), iv(10, 0, 15, 0), iv(16, 0, 22, 0)},
		},
		{
			name:     "nested booking does not move cursor back",
			existing: []Interval{iv(9, 0, 13, 0), iv(10, 0, 11, 0)},
			want:     []Interval{iv(8, 0, 9, 0), iv(13, 0, 22, 0)},
		},
		{
			name:     "back to back bookings leave no empty gap",
			existing: []Interval{iv(10, 0, 11, 0), iv(11, 0, 12, 0)},
			want:     []Interval{iv(8, 0, 10, 0), iv(12, 0, 22, 0)},
		},
		{
			name:     "bookings outside hours are clipped",
			existing: []Interval{iv(6, 0, 9, 0), iv(21, 0, 23, 0), iv(22, 30, 23, 30)},
			want:     []Interval{iv(9, 0, 21, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlots(hours, tt.existing)
			assert.Equal(t, tt.want, got)
			for _, slot := range got {
				assert.True(t, slot.Valid())
				assert.False(t, HasConflict(slot, tt.existing))
			}
		})
	}
}

func TestAvailableSlots_DoesNotMutateInput(t *testing.T) {
	existing := []Interval{iv(15, 0, 16, 0), iv(9, 0, 10, 0)}
	AvailableSlots(DefaultOperatingHours(), existing)
	assert.Equal(t, iv(15, 0, 16, 0), existing[0])
}

func TestOperatingHoursValidate(t *testing.T) {
	assert.NoError(t, DefaultOperatingHours().Validate())
	assert.NoError(t, OperatingHours{Open: 0, Close: At(24, 0)}.Validate())
	assert.ErrorIs(t, OperatingHours{Open: At(10, 0), Close: At(10, 0)}.Validate(), ErrInvalidOperatingHours)
	assert.ErrorIs(t, OperatingHours{Open: At(10, 0), Close: At(24, 30)}.Validate(), ErrInvalidOperatingHours)
}

func TestHoursOverrideApply(t *testing.T) {
	base := OperatingHours{Open: At(6, 0), Close: At(23, 0)}
	closeAt := At(20, 0)
	openAt := At(9, 0)

	assert.Equal(t, base, HoursOverride{}.Apply(base))
	assert.Equal(t, OperatingHours{Open: At(6, 0), Close: At(20, 0)}, HoursOverride{Close: &closeAt}.Apply(base))
	assert.Equal(t, OperatingHours{Open: At(9, 0), Close: At(23, 0)}, HoursOverride{Open: &openAt}.Apply(base))
	assert.Equal(t, OperatingHours{Open: At(9, 0), Close: At(20, 0)}, HoursOverride{Open: &openAt, Close: &closeAt}.Apply(base))
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, At(9, 30), c)
	assert.Equal(t, "09:30", c.String())
	assert.Equal(t, "09:30:00", c.Long())

	c, err = ParseClock("18:05:07")
	require.NoError(t, err)
	assert.Equal(t, "18:05:07", c.Long())
	assert.Equal(t, "18:05", c.String())

	for _, bad := range []string{"", "9am", "25:00", "12:60", "12-00"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrInvalidTime, bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("03/01/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestConflictErrorDetails(t *testing.T) {
	err := &ConflictError{ScheduleID: "abc"}
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Equal(t, map[string]any{"conflicting_schedule_id": "abc"}, err.ErrorDetails())
	assert.Nil(t, (&ConflictError{}).ErrorDetails())
}

func TestCacheEncoding(t *testing.T) {
	in := []Interval{iv(8, 0, 9, 30), iv(13, 0, 14, 0)}
	raw, err := encodeIntervals(in)
	require.NoError(t, err)
	assert.JSONEq(t, "[[28800,34200],[46800,50400]]", string(raw))

	out, err := decodeIntervals(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = decodeIntervals([]byte("not json"))
	assert.Error(t, err)
}

func TestCacheKey(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "avail:s1:2024-03-01:0", cacheKey("s1", d, 0))
	assert.Equal(t, "avail:s1:2024-03-01:7", cacheKey("s1", d, 7))
	assert.Equal(t, "avail:gen:s1:2024-03-01", genKey("s1", d))
}
