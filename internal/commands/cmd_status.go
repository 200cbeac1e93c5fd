package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/waggle"
)

// StatusCmd implements the waggle status and done commands.
type StatusCmd struct {
	flags *Flags
	app   *waggle.App
}

// NewStatusCmd creates a new status command.
func NewStatusCmd(flags *Flags, app *waggle.App) *StatusCmd {
	return &StatusCmd{flags: flags, app: app}
}

// Register adds the status and done commands to the application.
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "status",
			Usage:     "Change a task's status",
			UsageText: "waggle status <id> <todo|in-progress|done|cancelled|archived>",
			Description: `Sets the lifecycle status and stamps the task's updated time.

Examples:
  waggle status 4f21 in-progress
  waggle status 4f21 archived`,
			Action: cmd.runStatus,
		},
		&cli.Command{
			Name:      "done",
			Usage:     "Mark a task done",
			UsageText: "waggle done <id>",
			Action:    cmd.runDone,
		},
	)

	return app
}

func (cmd *StatusCmd) runStatus(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected <id> and <status> arguments")
	}

	status, err := task.ParseStatus(c.Args().Get(1))
	if err != nil {
		return err
	}

	return cmd.set(ctx, c, c.Args().First(), status)
}

func (cmd *StatusCmd) runDone(ctx context.Context, c *cli.Command) error {
	return cmd.set(ctx, c, c.Args().First(), task.StatusDone)
}

func (cmd *StatusCmd) set(ctx context.Context, c *cli.Command, prefix string, status task.Status) error {
	id, err := resolveID(ctx, cmd.app, prefix)
	if err != nil {
		return err
	}

	updated, err := cmd.app.Tasks.SetStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("set status: %w", err)
	}

	fmt.Fprintln(c.Root().Writer,
		styles.SuccessStyle.Render(shortID(updated.ID))+" "+updated.Title+" → "+updated.Status.String())
	return nil
}
