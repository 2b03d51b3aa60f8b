package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/streaker/internal/feed"
	"github.com/julianstephens/streaker/internal/models"
	"github.com/julianstephens/streaker/internal/streak"
	"github.com/julianstephens/streaker/internal/tracker"
)

var errNoUser = errors.New("no user given: pass --user or set STREAKER_USER")

// Feed is the file behind a Source. Only validate loads it directly.
type Feed interface {
	Load() error
	All() ([]models.Task, []models.CompletionLog, error)
	Path() string
}

type Context struct {
	Source   feed.Source
	Feed     Feed
	Tracker  *tracker.Tracker
	UserID   string
	Location *time.Location
	Out      io.Writer

	// Now overrides the clock in tests.
	Now func() time.Time
}

// NewContext wires a tracker over src for userID. Days are taken in loc.
func NewContext(src *feed.FileSource, userID string, loc *time.Location) *Context {
	return &Context{
		Source:   src,
		Feed:     src,
		Tracker:  tracker.New(src),
		UserID:   userID,
		Location: loc,
		Out:      os.Stdout,
	}
}

// Today returns the current calendar day in the configured timezone.
// Every command derives "today" through here.
func (c *Context) Today() streak.Day {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return streak.DayOf(now().In(c.Location))
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

// requireUser fails for commands that read one user's tasks when no user
// was given.
func (c *Context) requireUser() error {
	if c.UserID == "" {
		return errNoUser
	}
	return nil
}

// resolveTask finds one of the user's tasks by ID, falling back to an
// exact name match.
func (c *Context) resolveTask(ref string) (models.Task, error) {
	if err := c.requireUser(); err != nil {
		return models.Task{}, err
	}
	task, err := c.Source.Task(c.UserID, ref)
	if err == nil {
		return task, nil
	}
	if !errors.Is(err, feed.ErrNotFound) {
		return models.Task{}, err
	}

	tasks, err := c.Source.Tasks(c.UserID)
	if err != nil {
		return models.Task{}, err
	}
	var match []models.Task
	for _, t := range tasks {
		if t.Name == ref {
			match = append(match, t)
		}
	}
	switch len(match) {
	case 0:
		return models.Task{}, fmt.Errorf("task %q not found", ref)
	case 1:
		return match[0], nil
	default:
		return models.Task{}, fmt.Errorf("task name %q is ambiguous (%d tasks), use the task ID", ref, len(match))
	}
}
