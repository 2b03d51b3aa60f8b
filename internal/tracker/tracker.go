// Package tracker combines a feed.Source with the streak engine to produce
// what the front end shows: per-task streaks, today's action and the year
// calendar.
package tracker

import (
	"fmt"
	"time"

	"github.com/julianstephens/streaker/internal/feed"
	"github.com/julianstephens/streaker/internal/logger"
	"github.com/julianstephens/streaker/internal/models"
	"github.com/julianstephens/streaker/internal/streak"
)

// TaskSummary is the streak badge and today's state for one task.
type TaskSummary struct {
	Task        models.Task
	MaxStreak   int
	Completions int
	DoneToday   bool
	Action      streak.Action
}

// Cell is one day of a calendar. Active is false for days outside the
// task's start and end dates.
type Cell struct {
	Day       streak.Day
	Completed bool
	Active    bool
}

// MonthRow is one month of a calendar.
type MonthRow struct {
	Month time.Month
	Cells []Cell
}

// YearCalendar is the heat-map of one task over one year.
type YearCalendar struct {
	Task      models.Task
	Year      int
	MaxStreak int
	Months    []MonthRow
}

// CheckResult answers whether a task was completed on a day.
type CheckResult struct {
	Task      models.Task
	Day       streak.Day
	Completed bool
	// Action is the mutation to offer for today, independent of Day.
	Action streak.Action
}

type Tracker struct {
	src feed.Source
}

func New(src feed.Source) *Tracker {
	return &Tracker{src: src}
}

func (t *Tracker) completions(userID, taskID string) (streak.CompletionSet, error) {
	days, err := t.src.CompletionDays(userID, taskID)
	if err != nil {
		return streak.CompletionSet{}, fmt.Errorf("failed to load completions for task %s: %w", taskID, err)
	}
	return streak.NewCompletionSet(days), nil
}

// Summarize returns one summary per task owned by userID, in the order the
// source lists them. The streak is always recomputed from the logs, which
// are read once for all tasks.
func (t *Tracker) Summarize(userID string, today streak.Day) ([]TaskSummary, error) {
	tasks, err := t.src.Tasks(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	logs, err := t.src.Logs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion logs: %w", err)
	}

	byTask := make(map[string][]models.CompletionLog)
	for _, l := range logs {
		byTask[l.TaskID] = append(byTask[l.TaskID], l)
	}

	summaries := make([]TaskSummary, 0, len(tasks))
	for _, task := range tasks {
		set := streak.NewCompletionSet(models.CompletionDays(byTask[task.ID]))
		summaries = append(summaries, TaskSummary{
			Task:        task,
			MaxStreak:   set.MaxStreak(),
			Completions: set.Len(),
			DoneToday:   set.Has(today),
			Action:      streak.NextAction(set, today),
		})
	}

	logger.Debug("Summarized tasks", "user", userID, "tasks", len(summaries), "today", today)
	return summaries, nil
}

// Check reports whether taskID was completed on day, and which action to
// offer for today.
func (t *Tracker) Check(userID, taskID string, day, today streak.Day) (CheckResult, error) {
	task, err := t.src.Task(userID, taskID)
	if err != nil {
		return CheckResult{}, err
	}
	set, err := t.completions(userID, taskID)
	if err != nil {
		return CheckResult{}, err
	}
	return CheckResult{
		Task:      task,
		Day:       day,
		Completed: streak.IsCompletedOn(set, day),
		Action:    streak.NextAction(set, today),
	}, nil
}

// Calendar builds the year heat-map for taskID. The completion set is
// built once and reused for every cell.
func (t *Tracker) Calendar(userID, taskID string, year int) (YearCalendar, error) {
	task, err := t.src.Task(userID, taskID)
	if err != nil {
		return YearCalendar{}, err
	}
	set, err := t.completions(userID, taskID)
	if err != nil {
		return YearCalendar{}, err
	}

	grid := streak.YearGrid(year)
	months := make([]MonthRow, len(grid))
	for i, m := range grid {
		cells := make([]Cell, len(m.Days))
		for j, d := range m.Days {
			cells[j] = Cell{Day: d, Completed: set.Has(d), Active: task.Active(d)}
		}
		months[i] = MonthRow{Month: m.Month, Cells: cells}
	}

	return YearCalendar{
		Task:      task,
		Year:      year,
		MaxStreak: set.MaxStreak(),
		Months:    months,
	}, nil
}
