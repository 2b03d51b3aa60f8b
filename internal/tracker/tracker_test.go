package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/streaker/internal/feed"
	"github.com/julianstephens/streaker/internal/models"
	"github.com/julianstephens/streaker/internal/streak"
)

// memorySource is an in-memory feed.Source for tests.
type memorySource struct {
	tasks []models.Task
	logs  []models.CompletionLog
	err   error
}

func (m *memorySource) Tasks(userID string) ([]models.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memorySource) Task(userID, taskID string) (models.Task, error) {
	for _, t := range m.tasks {
		if t.UserID == userID && t.ID == taskID {
			return t, nil
		}
	}
	return models.Task{}, feed.ErrNotFound
}

func (m *memorySource) Logs(userID string) ([]models.CompletionLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.CompletionLog
	for _, l := range m.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memorySource) CompletionDays(userID, taskID string) ([]streak.Day, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []streak.Day
	for _, l := range m.logs {
		if l.UserID == userID && l.TaskID == taskID {
			out = append(out, l.CompletionDate)
		}
	}
	return out, nil
}

func day(m time.Month, d int) streak.Day {
	return streak.NewDay(2024, m, d)
}

func newSource() *memorySource {
	end := day(11, 30)
	logs := func(taskID string, days ...streak.Day) []models.CompletionLog {
		out := make([]models.CompletionLog, len(days))
		for i, d := range days {
			out[i] = models.CompletionLog{TaskID: taskID, UserID: "alice", CompletionDate: d}
		}
		return out
	}

	src := &memorySource{
		tasks: []models.Task{
			{ID: "2", Name: "Run", UserID: "alice", StartDate: day(1, 1), EndDate: &end},
			{ID: "1", Name: "Read", UserID: "alice", StartDate: day(1, 1)},
			{ID: "9", Name: "Swim", UserID: "bob", StartDate: day(1, 1)},
		},
	}
	src.logs = append(src.logs, logs("1", day(3, 1), day(3, 2), day(3, 3), day(3, 10))...)
	src.logs = append(src.logs, logs("2", day(2, 28), day(2, 29), day(3, 10))...)
	return src
}

func TestSummarize(t *testing.T) {
	tr := New(newSource())
	today := day(3, 10)

	got, err := tr.Summarize("alice", today)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Summarize returned %d tasks, want 2", len(got))
	}

	want := []struct {
		id        string
		streak    int
		count     int
		doneToday bool
	}{
		{"2", 2, 3, true},
		{"1", 3, 4, true},
	}
	for i, w := range want {
		s := got[i]
		if s.Task.ID != w.id || s.MaxStreak != w.streak || s.Completions != w.count || s.DoneToday != w.doneToday {
			t.Errorf("summary[%d] = %+v, want %+v", i, s, w)
		}
		if s.Action != streak.ActionUndo {
			t.Errorf("summary[%d].Action = %s, want undo", i, s.Action)
		}
	}

	got, err = tr.Summarize("alice", day(3, 11))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	for _, s := range got {
		if s.DoneToday || s.Action != streak.ActionMarkDone {
			t.Errorf("task %s should be pending on 3/11: %+v", s.Task.ID, s)
		}
	}
}

func TestSummarizeNoTasks(t *testing.T) {
	got, err := New(newSource()).Summarize("carol", day(1, 1))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Summarize(carol) = %v, want empty", got)
	}
}

func TestSummarizeSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(&memorySource{err: boom}).Summarize("alice", day(1, 1))
	if !errors.Is(err, boom) {
		t.Errorf("Summarize error = %v, want wrapping boom", err)
	}
}

func TestCheck(t *testing.T) {
	tr := New(newSource())

	res, err := tr.Check("alice", "1", day(3, 2), day(3, 11))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !res.Completed || res.Action != streak.ActionMarkDone || res.Task.Name != "Read" {
		t.Errorf("Check() = %+v", res)
	}

	res, err = tr.Check("alice", "1", day(3, 4), day(3, 10))
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if res.Completed || res.Action != streak.ActionUndo {
		t.Errorf("Check() = %+v", res)
	}

	if _, err := tr.Check("bob", "1", day(3, 2), day(3, 2)); !errors.Is(err, feed.ErrNotFound) {
		t.Errorf("Check on another user's task error = %v, want ErrNotFound", err)
	}
}

func TestCalendar(t *testing.T) {
	cal, err := New(newSource()).Calendar("alice", "2", 2024)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if cal.Year != 2024 || cal.MaxStreak != 2 || len(cal.Months) != 12 {
		t.Fatalf("Calendar() = year %d streak %d months %d", cal.Year, cal.MaxStreak, len(cal.Months))
	}

	feb := cal.Months[1]
	if feb.Month != time.February || len(feb.Cells) != 29 {
		t.Fatalf("February row = %v with %d cells", feb.Month, len(feb.Cells))
	}

	completed := 0
	for _, m := range cal.Months {
		for _, c := range m.Cells {
			if c.Completed {
				completed++
			}
		}
	}
	if completed != 3 {
		t.Errorf("completed cells = %d, want 3", completed)
	}
	if !feb.Cells[28].Completed || feb.Cells[0].Completed {
		t.Error("February cells marked incorrectly")
	}

	dec := cal.Months[11]
	if !cal.Months[10].Cells[29].Active || dec.Cells[0].Active || dec.Cells[30].Active {
		t.Error("cells after the task's end date should be inactive")
	}
	if !cal.Months[0].Cells[0].Active {
		t.Error("the task's start date should be active")
	}

	// Completions outside the requested year do not appear.
	cal, err = New(newSource()).Calendar("alice", "2", 2023)
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	for _, m := range cal.Months {
		for _, c := range m.Cells {
			if c.Completed {
				t.Fatalf("unexpected completion on %v in 2023", c.Day)
			}
		}
	}
	if len(cal.Months[1].Cells) != 28 {
		t.Errorf("2023 February has %d cells, want 28", len(cal.Months[1].Cells))
	}
	if cal.Months[11].Cells[30].Active {
		t.Error("days before the task's start date should be inactive")
	}
}

func TestSummarizeIgnoresOtherTasksLogs(t *testing.T) {
	src := newSource()
	src.logs = append(src.logs, models.CompletionLog{TaskID: "404", UserID: "alice", CompletionDate: day(3, 10)})

	got, err := New(src).Summarize("alice", day(3, 10))
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	total := 0
	for _, s := range got {
		total += s.Completions
	}
	if total != 7 {
		t.Errorf("total completions = %d, want 7", total)
	}
}
