// Package feed reads an exported snapshot of tasks and completion logs.
//
// The feed is the input boundary of the streak engine: every date is
// validated and normalized to a calendar day here, once, so nothing
// downstream compares raw timestamps.
package feed

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/streaker/internal/constants"
	"github.com/julianstephens/streaker/internal/logger"
	"github.com/julianstephens/streaker/internal/models"
	"github.com/julianstephens/streaker/internal/streak"
	"github.com/julianstephens/streaker/internal/utils"
)

var (
	// ErrNotFound is returned when a task is missing or owned by someone else.
	ErrNotFound = errors.New("not found")

	errNotLoaded = errors.New("feed not loaded")
)

// Source is a user-scoped, read-only view of tasks and their completions.
type Source interface {
	Tasks(userID string) ([]models.Task, error)
	Task(userID, taskID string) (models.Task, error)
	Logs(userID string) ([]models.CompletionLog, error)
	CompletionDays(userID, taskID string) ([]streak.Day, error)
}

type document struct {
	Version int       `json:"version"`
	Tasks   []taskDoc `json:"tasks"`
	Logs    []logDoc  `json:"logs"`
}

type taskDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date,omitempty"`
}

type logDoc struct {
	ID             string `json:"id"`
	TaskID         string `json:"task_id"`
	UserID         string `json:"user_id"`
	CompletionDate string `json:"completion_date"`
}

// DateProblem names one record whose date could not be read.
type DateProblem struct {
	Kind  string // "task" or "log"
	ID    string
	Field string
	Err   error
}

func (p DateProblem) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", p.Kind, p.ID, p.Field, p.Err)
}

func (p DateProblem) Unwrap() error { return p.Err }

// ParseError collects every unreadable date in a feed.
type ParseError struct {
	Problems []DateProblem
}

func (e *ParseError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("%d invalid date(s) in feed: %s", len(e.Problems), strings.Join(msgs, "; "))
}

func (e *ParseError) Unwrap() []error {
	errs := make([]error, len(e.Problems))
	for i, p := range e.Problems {
		errs[i] = p
	}
	return errs
}

// FileSource is a Source backed by a JSON file. It is immutable after Load
// and safe for concurrent reads.
type FileSource struct {
	path   string
	loc    *time.Location
	tasks  []models.Task
	logs   []models.CompletionLog
	loaded bool
}

// NewFileSource returns a source for the feed at path. Timestamps in the
// feed are assigned to calendar days in loc.
func NewFileSource(path string, loc *time.Location) *FileSource {
	if loc == nil {
		loc = time.Local
	}
	return &FileSource{path: path, loc: loc}
}

func (s *FileSource) Path() string {
	return s.path
}

// Load reads and normalizes the feed. A feed with unreadable dates is
// rejected as a whole with a *ParseError.
func (s *FileSource) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("feed not found at %s", s.path)
		}
		return fmt.Errorf("failed to read feed: %w", err)
	}

	tasks, logs, err := Parse(data, s.loc)
	if err != nil {
		return err
	}

	s.tasks, s.logs, s.loaded = tasks, logs, true
	logger.Debug("Loaded feed", "path", s.path, "tasks", len(tasks), "logs", len(logs))
	return nil
}

// Parse decodes a feed document and normalizes its dates to calendar days
// in loc. Records without an ID are given a random one.
func Parse(data []byte, loc *time.Location) ([]models.Task, []models.CompletionLog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	if doc.Version != constants.FeedFormatVersion {
		return nil, nil, fmt.Errorf("unsupported feed version %d (want %d)", doc.Version, constants.FeedFormatVersion)
	}

	var perr ParseError
	day := func(kind, id, field, raw string) streak.Day {
		d, err := utils.ParseDateInLocation(raw, loc)
		if err != nil {
			perr.Problems = append(perr.Problems, DateProblem{Kind: kind, ID: id, Field: field, Err: err})
		}
		return d
	}

	tasks := make([]models.Task, 0, len(doc.Tasks))
	for _, td := range doc.Tasks {
		id := td.ID
		if id == "" {
			id = uuid.New().String()
		}
		task := models.Task{
			ID:        id,
			Name:      td.Name,
			UserID:    td.UserID,
			StartDate: day("task", id, "start_date", td.StartDate),
		}
		if td.EndDate != "" {
			end := day("task", id, "end_date", td.EndDate)
			task.EndDate = &end
		}
		tasks = append(tasks, task)
	}

	logs := make([]models.CompletionLog, 0, len(doc.Logs))
	for _, ld := range doc.Logs {
		id := ld.ID
		if id == "" {
			id = uuid.New().String()
		}
		logs = append(logs, models.CompletionLog{
			ID:             id,
			TaskID:         ld.TaskID,
			UserID:         ld.UserID,
			CompletionDate: day("log", id, "completion_date", ld.CompletionDate),
		})
	}

	if len(perr.Problems) > 0 {
		return nil, nil, &perr
	}
	return tasks, logs, nil
}

// All returns every task and log in the feed regardless of owner.
func (s *FileSource) All() ([]models.Task, []models.CompletionLog, error) {
	if !s.loaded {
		return nil, nil, errNotLoaded
	}
	return append([]models.Task(nil), s.tasks...), append([]models.CompletionLog(nil), s.logs...), nil
}

// Tasks returns the user's tasks, newest ID first.
func (s *FileSource) Tasks(userID string) ([]models.Task, error) {
	if !s.loaded {
		return nil, errNotLoaded
	}
	var out []models.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Task) int {
		return compareIDs(b.ID, a.ID)
	})
	return out, nil
}

// compareIDs orders numeric IDs by value, so "10" sorts after "9". Numeric
// IDs sort before any other ID; the rest compare as strings.
func compareIDs(a, b string) int {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(x, y)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Task returns the task with taskID if userID owns it.
func (s *FileSource) Task(userID, taskID string) (models.Task, error) {
	if !s.loaded {
		return models.Task{}, errNotLoaded
	}
	for _, t := range s.tasks {
		if t.ID == taskID && t.UserID == userID {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task %q: %w", taskID, ErrNotFound)
}

// Logs returns all completion logs recorded by userID.
func (s *FileSource) Logs(userID string) ([]models.CompletionLog, error) {
	if !s.loaded {
		return nil, errNotLoaded
	}
	var out []models.CompletionLog
	for _, l := range s.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

// CompletionDays returns the completion dates of one task for userID, in
// feed order.
func (s *FileSource) CompletionDays(userID, taskID string) ([]streak.Day, error) {
	if !s.loaded {
		return nil, errNotLoaded
	}
	var logs []models.CompletionLog
	for _, l := range s.logs {
		if l.UserID == userID && l.TaskID == taskID {
			logs = append(logs, l)
		}
	}
	return models.CompletionDays(logs), nil
}
