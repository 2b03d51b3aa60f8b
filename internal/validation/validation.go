package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/streaker/internal/feed"
	"github.com/julianstephens/streaker/internal/models"
	"github.com/julianstephens/streaker/internal/streak"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyTaskName       ConflictType = "empty_task_name"
	ConflictInvalidDateRange    ConflictType = "invalid_date_range"
	ConflictDuplicateCompletion ConflictType = "duplicate_completion"
	ConflictUnknownTask         ConflictType = "unknown_task"
	ConflictOwnerMismatch       ConflictType = "owner_mismatch"
	ConflictInvalidDate         ConflictType = "invalid_date"
)

// Conflict represents a detected problem in tasks or logs
type Conflict struct {
	Type        ConflictType
	Description string
	TaskID      string
	LogIDs      []string
	Date        streak.Day // zero when not tied to a day
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns the number of conflicts of type ct.
func (vr *ValidationResult) Count(ct ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == ct {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Validator checks tasks and completion logs against the data model
// invariants before they reach the streak engine.
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateTasks checks each task's name and date range.
func (v *Validator) ValidateTasks(tasks []models.Task) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	for _, task := range tasks {
		if strings.TrimSpace(task.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyTaskName,
				Description: fmt.Sprintf("Task %s has an empty name", task.ID),
				TaskID:      task.ID,
			})
		}
		if task.EndDate != nil && task.EndDate.Before(task.StartDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictInvalidDateRange,
				Description: fmt.Sprintf("Task \"%s\" ends (%s) before it starts (%s)",
					task.Name, task.EndDate, task.StartDate),
				TaskID: task.ID,
			})
		}
	}

	return result
}

// ValidateLogs checks that every log belongs to a known task, is recorded
// by the task's owner, and that no task has more than one log per day.
func (v *Validator) ValidateLogs(tasks []models.Task, logs []models.CompletionLog) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	byID := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	type key struct {
		taskID string
		day    streak.Day
	}
	perDay := make(map[key][]string)
	var order []key

	for _, l := range logs {
		task, ok := byID[l.TaskID]
		if !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownTask,
				Description: fmt.Sprintf("Log %s references unknown task %s", l.ID, l.TaskID),
				TaskID:      l.TaskID,
				LogIDs:      []string{l.ID},
				Date:        l.CompletionDate,
			})
			continue
		}
		if l.UserID != task.UserID {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOwnerMismatch,
				Description: fmt.Sprintf("Log %s for task \"%s\" was recorded by %q, task is owned by %q",
					l.ID, task.Name, l.UserID, task.UserID),
				TaskID: task.ID,
				LogIDs: []string{l.ID},
				Date:   l.CompletionDate,
			})
		}

		k := key{taskID: l.TaskID, day: l.CompletionDate}
		if _, seen := perDay[k]; !seen {
			order = append(order, k)
		}
		perDay[k] = append(perDay[k], l.ID)
	}

	for _, k := range order {
		ids := perDay[k]
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictDuplicateCompletion,
			Description: fmt.Sprintf("Task \"%s\" has %d completions on %s (IDs: %v)",
				byID[k.taskID].Name, len(ids), k.day, ids),
			TaskID: k.taskID,
			LogIDs: ids,
			Date:   k.day,
		})
	}

	return result
}

// Validate runs ValidateTasks and ValidateLogs and merges the results.
func (v *Validator) Validate(tasks []models.Task, logs []models.CompletionLog) ValidationResult {
	result := v.ValidateTasks(tasks)
	result.Conflicts = append(result.Conflicts, v.ValidateLogs(tasks, logs).Conflicts...)
	return result
}

// FromLoadError turns a feed parse failure into invalid_date conflicts.
// It returns false if err is not a *feed.ParseError.
func FromLoadError(err error) (ValidationResult, bool) {
	var perr *feed.ParseError
	if !errors.As(err, &perr) {
		return ValidationResult{}, false
	}

	result := ValidationResult{Conflicts: make([]Conflict, 0, len(perr.Problems))}
	for _, p := range perr.Problems {
		c := Conflict{
			Type:        ConflictInvalidDate,
			Description: fmt.Sprintf("Feed %s %s has an invalid %s: %v", p.Kind, p.ID, p.Field, p.Err),
		}
		if p.Kind == "log" {
			c.LogIDs = []string{p.ID}
		} else {
			c.TaskID = p.ID
		}
		result.Conflicts = append(result.Conflicts, c)
	}
	return result, true
}
