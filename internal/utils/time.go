package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/streaker/internal/streak"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ParseDateInLocation reads s as a calendar day. It accepts YYYY-MM-DD, or
// an RFC3339 timestamp which is converted to loc before the time of day is
// dropped.
func ParseDateInLocation(s string, loc *time.Location) (streak.Day, error) {
	if d, err := streak.ParseDay(s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return streak.Day{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD or RFC3339)", streak.ErrInvalidDay, s)
	}
	return streak.DayOf(ts.In(loc)), nil
}
