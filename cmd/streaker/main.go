package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/streaker/internal/cli"
	"github.com/julianstephens/streaker/internal/constants"
	"github.com/julianstephens/streaker/internal/errors"
	"github.com/julianstephens/streaker/internal/feed"
	"github.com/julianstephens/streaker/internal/logger"
	"github.com/julianstephens/streaker/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Feed     string `help:"Path to the exported completion feed (JSON)." type:"path" env:"STREAKER_FEED" default:"${default_feed}"`
	User     string `help:"User whose tasks to read. Required by every command except validate." env:"STREAKER_USER"`
	Timezone string `help:"IANA timezone that decides calendar days and today." env:"STREAKER_TZ" default:"${default_tz}"`
	LogDir   string `help:"Directory for log files." type:"path" default:"${default_log_dir}"`
	Debug    bool   `help:"Enable debug logging to stderr."`

	Summary  cli.SummaryCmd  `cmd:"" help:"Show each task's streak and today's status." default:"1"`
	Check    cli.CheckCmd    `cmd:"" help:"Check whether a task was completed on a day."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show a task's year calendar."`
	Validate cli.ValidateCmd `cmd:"" help:"Validate the feed for invalid dates and duplicate completions."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit streaks and calendars from a completion feed"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":         constants.Version,
			"default_feed":    constants.DefaultFeedPath,
			"default_tz":      constants.DefaultTimezone,
			"default_log_dir": constants.DefaultConfigDir + "/logs",
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, LogDir: CLI.LogDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		errors.Fatal(fmt.Errorf("invalid timezone %q: %w", CLI.Timezone, err))
	}

	src := feed.NewFileSource(CLI.Feed, loc)
	appCtx := cli.NewContext(src, CLI.User, loc)

	// validate loads the feed itself so it can report bad dates as conflicts
	if ctx.Selected() == nil || ctx.Selected().Name != "validate" {
		if err := src.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	logger.Debug("Running command", "command", ctx.Command(), "user", CLI.User, "timezone", loc.String())
	errors.Fatal(ctx.Run(appCtx))
}
