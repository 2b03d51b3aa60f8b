package cli

import (
	"fmt"

	"github.com/julianstephens/streaker/internal/errors"
	"github.com/julianstephens/streaker/internal/logger"
	"github.com/julianstephens/streaker/internal/validation"
)

// ExitConflicts is the exit code of validate when conflicts are found.
const ExitConflicts = 2

// ValidateCmd checks the whole feed, across all users, against the data
// model invariants. It loads the feed itself so that unreadable dates are
// reported as conflicts rather than aborting.
type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	var result validation.ValidationResult

	if err := ctx.Feed.Load(); err != nil {
		dateResult, ok := validation.FromLoadError(err)
		if !ok {
			return err
		}
		result = dateResult
	} else {
		tasks, logs, err := ctx.Feed.All()
		if err != nil {
			return err
		}
		ctx.printf("Validating %d tasks and %d completion logs...\n", len(tasks), len(logs))
		result = validation.New().Validate(tasks, logs)
	}

	ctx.printf("\n%s\n", result.FormatReport())

	if result.HasConflicts() {
		logger.Warn("Feed validation failed", "path", ctx.Feed.Path(), "conflicts", len(result.Conflicts))
		return errors.WithCode(fmt.Errorf("found %d conflict(s)", len(result.Conflicts)), ExitConflicts)
	}
	return nil
}
