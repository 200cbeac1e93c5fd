package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/tui"
	"github.com/colonyops/waggle/internal/waggle"
)

// TuiCmd launches the interactive task browser. It is also the default
// action when waggle runs without a subcommand.
type TuiCmd struct {
	flags *Flags
	app   *waggle.App
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags, app *waggle.App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "tui",
		Usage:       "Open the interactive task browser",
		UsageText:   "waggle tui",
		Description: "Opens a full-screen browser with list and board views, due-date filtering, and live search.",
		Action:      cmd.Run,
	})

	return app
}

// Run starts the bubbletea program and blocks until it exits.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	program := tea.NewProgram(tui.New(cmd.app), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
