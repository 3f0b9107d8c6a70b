package schedule

import (
	"fmt"
	"time"
)

// Clock is a wall-clock time of day in seconds since midnight, without a timezone.
type Clock int

const (
	hour       = 3600
	minute     = 60
	endOfDay   = 24 * hour
	clockShort = "15:04"
	clockLong  = "15:04:05"
)

// At builds a Clock from hours and minutes.
func At(h, m int) Clock {
	return Clock(h*hour + m*minute)
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(clockLong, s)
	if err != nil {
		t, err = time.Parse(clockShort, s)
	}
	if err != nil {
		return 0, ErrInvalidTime
	}
	return Clock(t.Hour()*hour + t.Minute()*minute + t.Second()), nil
}

// String formats as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/hour, int(c)%hour/minute)
}

// Long formats as HH:MM:SS.
func (c Clock) Long() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/hour, int(c)%hour/minute, int(c)%minute)
}

// Interval is a half-open time range [Start, End) within one day.
type Interval struct {
	Start Clock
	End   Clock
}

// Valid reports whether Start is strictly before End.
func (i Interval) Valid() bool {
	return i.Start < i.End
}
