package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/waggle"
	"github.com/colonyops/waggle/pkg/iojson"
)

// ExportCmd implements the waggle export command.
type ExportCmd struct {
	flags *Flags
	app   *waggle.App

	file string
}

// NewExportCmd creates a new export command.
func NewExportCmd(flags *Flags, app *waggle.App) *ExportCmd {
	return &ExportCmd{flags: flags, app: app}
}

// Register adds the export command to the application.
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export all tasks as JSON",
		UsageText: "waggle export [--file <path>]",
		Description: `Writes the whole collection in the storage format: a JSON array of
task objects with integer statuses and tags and ISO-8601 timestamps.
The output round-trips through 'waggle import'.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "output path (stdout if not provided)",
				Destination: &cmd.file,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	tasks, err := cmd.app.Tasks.Export(ctx)
	if err != nil {
		return fmt.Errorf("export tasks: %w", err)
	}

	if cmd.file != "" {
		return iojson.WriteFile(cmd.file, tasks)
	}
	return iojson.Write(c.Root().Writer, tasks)
}
