package streak

import (
	"testing"
	"time"
)

func TestYearGridShape(t *testing.T) {
	tests := []struct {
		year      int
		febDays   int
		totalDays int
	}{
		{2024, 29, 366},
		{2023, 28, 365},
		{2000, 29, 366},
		{1900, 28, 365},
	}

	for _, tt := range tests {
		grid := YearGrid(tt.year)
		if len(grid) != 12 {
			t.Fatalf("YearGrid(%d) has %d months, want 12", tt.year, len(grid))
		}

		total := 0
		for i, m := range grid {
			if m.Month != time.Month(i+1) {
				t.Errorf("YearGrid(%d)[%d].Month = %v, want %v", tt.year, i, m.Month, time.Month(i+1))
			}
			total += len(m.Days)
		}
		if got := len(grid[1].Days); got != tt.febDays {
			t.Errorf("YearGrid(%d) February has %d days, want %d", tt.year, got, tt.febDays)
		}
		if total != tt.totalDays {
			t.Errorf("YearGrid(%d) has %d days, want %d", tt.year, total, tt.totalDays)
		}
		if IsLeapYear(tt.year) != (tt.totalDays == 366) {
			t.Errorf("IsLeapYear(%d) = %v", tt.year, IsLeapYear(tt.year))
		}
	}
}

func TestYearGridOrdering(t *testing.T) {
	grid := YearGrid(2024)

	var prev Day
	for _, m := range grid {
		for i, d := range m.Days {
			if d.Year() != 2024 || d.Month() != m.Month || d.DayOfMonth() != i+1 {
				t.Fatalf("unexpected day %v in %v at index %d", d, m.Month, i)
			}
			if !prev.IsZero() && d.Sub(prev) != 1 {
				t.Fatalf("days not contiguous: %v then %v", prev, d)
			}
			prev = d
		}
	}
	if prev != NewDay(2024, time.December, 31) {
		t.Errorf("last day = %v, want 2024-12-31", prev)
	}
}

func TestYearGridDeterministic(t *testing.T) {
	a, b := YearGrid(2025), YearGrid(2025)
	for i := range a {
		if len(a[i].Days) != len(b[i].Days) {
			t.Fatalf("month %v differs between calls", a[i].Month)
		}
		for j := range a[i].Days {
			if a[i].Days[j] != b[i].Days[j] {
				t.Fatalf("day %d of %v differs between calls", j, a[i].Month)
			}
		}
	}
}
