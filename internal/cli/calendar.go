package cli

import (
	"strings"

	"github.com/julianstephens/streaker/internal/constants"
)

type CalendarCmd struct {
	Task string `arg:"" help:"Task ID or name."`
	Year int    `help:"Calendar year (default: current year)." default:"0"`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	task, err := ctx.resolveTask(c.Task)
	if err != nil {
		return err
	}

	year := c.Year
	if year == 0 {
		year = ctx.Today().Year()
	}

	cal, err := ctx.Tracker.Calendar(ctx.UserID, task.ID, year)
	if err != nil {
		return err
	}

	ctx.printf("%s %d (Streak: %d)\n\n", cal.Task.Name, cal.Year, cal.MaxStreak)
	for _, row := range cal.Months {
		var b strings.Builder
		b.WriteString(row.Month.String()[:constants.CalendarLabelLen])
		b.WriteString(" ")
		for _, cell := range row.Cells {
			switch {
			case cell.Completed:
				b.WriteByte('x')
			case !cell.Active:
				b.WriteByte('-')
			default:
				b.WriteByte('.')
			}
		}
		ctx.printf("%s\n", b.String())
	}
	return nil
}
