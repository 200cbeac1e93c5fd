package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/waggle"
)

// RmCmd implements the waggle rm command.
type RmCmd struct {
	flags *Flags
	app   *waggle.App

	yes bool
}

// NewRmCmd creates a new rm command.
func NewRmCmd(flags *Flags, app *waggle.App) *RmCmd {
	return &RmCmd{flags: flags, app: app}
}

// Register adds the rm command to the application.
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete a task",
		UsageText: "waggle rm <id> [--yes]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := resolveID(ctx, cmd.app, c.Args().First())
	if err != nil {
		return err
	}

	t, err := cmd.app.Tasks.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	if !cmd.yes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q?", t.Title)).
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !confirmed {
			return nil
		}
	}

	if err := cmd.app.Tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render("Deleted ")+shortID(id)+" "+t.Title)
	return nil
}
