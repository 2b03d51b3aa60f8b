package cli

import "github.com/julianstephens/streaker/internal/logger"

type SummaryCmd struct{}

func (c *SummaryCmd) Run(ctx *Context) error {
	if err := ctx.requireUser(); err != nil {
		return err
	}
	today := ctx.Today()
	summaries, err := ctx.Tracker.Summarize(ctx.UserID, today)
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		ctx.printf("No tasks found.\n")
		return nil
	}

	ctx.printf("Tasks for %s:\n\n", today)
	done := 0
	for _, s := range summaries {
		status := "[ ]"
		if s.DoneToday {
			status = "[x]"
			done++
		}
		ctx.printf("%s %s (Streak: %d)\n", status, s.Task.Name, s.MaxStreak)
	}

	ctx.printf("\nDone today: %d/%d\n", done, len(summaries))
	logger.Info("Printed summary", "user", ctx.UserID, "tasks", len(summaries), "done", done)
	return nil
}
