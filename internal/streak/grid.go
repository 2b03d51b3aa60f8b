package streak

import "time"

// Month is one row of a year grid.
type Month struct {
	Month time.Month
	Days  []Day
}

// YearGrid enumerates every day of year grouped by month, both in
// ascending order.
func YearGrid(year int) []Month {
	grid := make([]Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := NewDay(year, m, 1)
		n := DaysInMonth(year, m)
		days := make([]Day, n)
		for i := range days {
			days[i] = first.AddDays(i)
		}
		grid = append(grid, Month{Month: m, Days: days})
	}
	return grid
}

// DaysInMonth returns the number of days in month m of year.
func DaysInMonth(year int, m time.Month) int {
	// Day 0 of the next month is the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool {
	return DaysInMonth(year, time.February) == 29
}
