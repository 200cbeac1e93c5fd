package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/waggle"
	"github.com/colonyops/waggle/pkg/iojson"
)

// ImportCmd implements the waggle import command.
type ImportCmd struct {
	flags *Flags
	app   *waggle.App

	file string
}

// NewImportCmd creates a new import command.
func NewImportCmd(flags *Flags, app *waggle.App) *ImportCmd {
	return &ImportCmd{flags: flags, app: app}
}

// Register adds the import command to the application.
func (cmd *ImportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "import",
		Usage:     "Import tasks from JSON",
		UsageText: "waggle import [--file <path>]",
		Description: `Reads a JSON array of tasks in the storage format and appends them
to the collection, keeping their ids and timestamps. Input comes from
--file or piped stdin.

Examples:
  waggle import -f backup.json
  waggle export | ssh laptop waggle import`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to JSON file (reads from stdin if not provided)",
				Destination: &cmd.file,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ImportCmd) run(ctx context.Context, c *cli.Command) error {
	incoming, err := iojson.Read[[]task.Task](cmd.file)
	if err != nil {
		return err
	}

	if len(incoming) == 0 {
		fmt.Fprintln(c.Root().Writer, "Nothing to import")
		return nil
	}

	total, err := cmd.app.Tasks.Import(ctx, incoming)
	if err != nil {
		return fmt.Errorf("import tasks: %w", err)
	}

	fmt.Fprintln(c.Root().Writer,
		styles.SuccessStyle.Render(fmt.Sprintf("Imported %d task(s)", len(incoming)))+fmt.Sprintf(" (%d total)", total))
	return nil
}
