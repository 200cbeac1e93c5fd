package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/waggle"
)

// TodayCmd implements the waggle today command.
type TodayCmd struct {
	flags *Flags
	app   *waggle.App
}

// NewTodayCmd creates a new today command.
func NewTodayCmd(flags *Flags, app *waggle.App) *TodayCmd {
	return &TodayCmd{flags: flags, app: app}
}

// Register adds the today command to the application.
func (cmd *TodayCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "today",
		Usage:       "List tasks due today",
		UsageText:   "waggle today",
		Description: "Lists tasks whose deadline falls on today's calendar date, regardless of time of day.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *TodayCmd) run(ctx context.Context, c *cli.Command) error {
	tasks, err := cmd.app.Tasks.DueToday(ctx)
	if err != nil {
		return fmt.Errorf("load tasks due today: %w", err)
	}

	renderTable(c.Root().Writer, tasks, time.Now(), cmd.flags.Config.DateFormat)
	return nil
}
