package streak

import "slices"

// MaxStreak returns the length of the longest run of consecutive calendar
// days in days. Input order does not matter and duplicate days count once.
// An empty input yields 0.
func MaxStreak(days []Day) int {
	if len(days) == 0 {
		return 0
	}

	sorted := slices.Clone(days)
	slices.SortFunc(sorted, Day.Compare)
	sorted = slices.Compact(sorted)

	maxRun, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 1 {
			run++
			maxRun = max(maxRun, run)
		} else {
			run = 1
		}
	}
	return maxRun
}
