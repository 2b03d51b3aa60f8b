package cli

import (
	"fmt"

	"github.com/julianstephens/streaker/internal/streak"
)

type CheckCmd struct {
	Task string `arg:"" help:"Task ID or name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CheckCmd) Run(ctx *Context) error {
	task, err := ctx.resolveTask(c.Task)
	if err != nil {
		return err
	}

	today := ctx.Today()
	day := today
	if c.Date != "" {
		day, err = streak.ParseDay(c.Date)
		if err != nil {
			return fmt.Errorf("invalid date format: %w (expected YYYY-MM-DD)", err)
		}
	}

	res, err := ctx.Tracker.Check(ctx.UserID, task.ID, day, today)
	if err != nil {
		return err
	}

	verb := "was not completed"
	if res.Completed {
		verb = "was completed"
	}
	ctx.printf("%s %s on %s\n", task.Name, verb, day)
	ctx.printf("Today: %s\n", res.Action.Label())
	return nil
}
