package streak

import "slices"

// CompletionSet is a membership index over completion days. Build it once
// per render pass and query it per calendar cell.
type CompletionSet struct {
	days map[Day]struct{}
}

// NewCompletionSet indexes days. Duplicates are collapsed.
func NewCompletionSet(days []Day) CompletionSet {
	m := make(map[Day]struct{}, len(days))
	for _, d := range days {
		m[d] = struct{}{}
	}
	return CompletionSet{days: m}
}

// Has reports whether day is in the set.
func (s CompletionSet) Has(day Day) bool {
	_, ok := s.days[day]
	return ok
}

// Len returns the number of distinct days.
func (s CompletionSet) Len() int {
	return len(s.days)
}

// Days returns the distinct days in ascending order.
func (s CompletionSet) Days() []Day {
	out := make([]Day, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	slices.SortFunc(out, Day.Compare)
	return out
}

// MaxStreak is MaxStreak over the set's days.
func (s CompletionSet) MaxStreak() int {
	return MaxStreak(s.Days())
}

// IsCompletedOn reports whether day is in set.
func IsCompletedOn(set CompletionSet, day Day) bool {
	return set.Has(day)
}

// Action is the mutation offered to the user for a task on a given day.
type Action string

const (
	ActionMarkDone Action = "mark_done"
	ActionUndo     Action = "undo"
)

func (a Action) Label() string {
	if a == ActionUndo {
		return "Undo"
	}
	return "Mark as Done"
}

// NextAction picks between creating and deleting today's completion.
func NextAction(set CompletionSet, today Day) Action {
	if set.Has(today) {
		return ActionUndo
	}
	return ActionMarkDone
}
