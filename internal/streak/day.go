// Package streak computes habit streaks and calendar membership from
// per-day completion records.
//
// Everything in this package works at calendar-day resolution. Callers
// normalize raw timestamps with DayOf (or ParseDay for YYYY-MM-DD strings)
// once at the boundary and pass Day values from then on.
package streak

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat is the layout used by ParseDay and Day.String (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// ErrInvalidDay is returned when a value cannot be read as a calendar day.
var ErrInvalidDay = errors.New("invalid calendar day")

// Day is a calendar date with no time-of-day and no location.
// The zero value is not a valid day; use IsZero to detect it.
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay returns the day for the given year, month and day of month.
// Out-of-range values are normalized the same way time.Date does.
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DayOf returns the calendar day of t in t's own location.
// Use t.In(loc) first to pick the day in another timezone.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{y: y, m: m, d: d}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return DayOf(t), nil
}

func (d Day) Year() int         { return d.y }
func (d Day) Month() time.Month { return d.m }
func (d Day) DayOfMonth() int   { return d.d }
func (d Day) IsZero() bool      { return d == Day{} }

// Time returns midnight UTC of the day.
func (d Day) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day n days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Sub returns the number of calendar days from o to d.
func (d Day) Sub(o Day) int {
	return d.ordinal() - o.ordinal()
}

// ordinal is the number of days since 1970-01-01 in the proleptic
// Gregorian calendar. Only valid for normalized days.
func (d Day) ordinal() int {
	y, m := d.y, int(d.m)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d.d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }
func (d Day) After(o Day) bool  { return d.Compare(o) > 0 }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after o.
func (d Day) Compare(o Day) int {
	switch {
	case d.y != o.y:
		return cmpInt(d.y, o.y)
	case d.m != o.m:
		return cmpInt(int(d.m), int(o.m))
	default:
		return cmpInt(d.d, o.d)
	}
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(DateFormat)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
