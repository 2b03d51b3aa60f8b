package models

import "github.com/julianstephens/streaker/internal/streak"

// Task is a named habit owned by a single user.
type Task struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	UserID    string      `json:"user_id"`
	StartDate streak.Day  `json:"start_date"`
	EndDate   *streak.Day `json:"end_date,omitempty"`
}

// Active reports whether day falls inside the task's date range.
func (t Task) Active(day streak.Day) bool {
	if day.Before(t.StartDate) {
		return false
	}
	return t.EndDate == nil || !day.After(*t.EndDate)
}

// CompletionLog asserts that a task was completed on one calendar day.
type CompletionLog struct {
	ID             string     `json:"id"`
	TaskID         string     `json:"task_id"`
	UserID         string     `json:"user_id"`
	CompletionDate streak.Day `json:"completion_date"`
}

// CompletionDays extracts the completion dates of logs.
func CompletionDays(logs []CompletionLog) []streak.Day {
	days := make([]streak.Day, len(logs))
	for i, l := range logs {
		days[i] = l.CompletionDate
	}
	return days
}
