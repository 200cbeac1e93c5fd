package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/waggle"
)

// ArchiveCmd implements the waggle archive command.
type ArchiveCmd struct {
	flags *Flags
	app   *waggle.App
}

// NewArchiveCmd creates a new archive command.
func NewArchiveCmd(flags *Flags, app *waggle.App) *ArchiveCmd {
	return &ArchiveCmd{flags: flags, app: app}
}

// Register adds the archive command to the application.
func (cmd *ArchiveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "archive",
		Usage:     "List archived tasks",
		UsageText: "waggle archive",
		Description: `Lists tasks in the archived state.

To archive a task, use 'waggle status <id> archived'.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ArchiveCmd) run(ctx context.Context, c *cli.Command) error {
	tasks, err := cmd.app.Tasks.Archived(ctx)
	if err != nil {
		return fmt.Errorf("load archived tasks: %w", err)
	}

	renderTable(c.Root().Writer, tasks, time.Now(), cmd.flags.Config.DateFormat)
	return nil
}
