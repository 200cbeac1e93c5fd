package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/waggle"
	"github.com/colonyops/waggle/pkg/iojson"
)

// LsCmd implements the waggle ls command.
type LsCmd struct {
	flags *Flags
	app   *waggle.App

	search     string
	status     string
	due        string
	sortField  string
	sortOrder  string
	jsonOutput bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *waggle.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "waggle ls [--search <term>] [--status <status>] [--due <bucket>] [--sort <field>] [--order <dir>] [--json]",
		Description: `Lists tasks as a table, filtered and ordered by the given flags.

Search matches title, description, and id, case-insensitively.
Due buckets: all, overdue, today, soon, future. Sorting by deadline
puts undated tasks last ascending and first descending.

Examples:
  waggle ls
  waggle ls --status todo --due overdue
  waggle ls --search bug --sort updated --order desc
  waggle ls --json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "free-text search term",
				Destination: &cmd.search,
			},
			&cli.StringFlag{
				Name:        "status",
				Usage:       "filter by status (todo, in-progress, done, cancelled, archived)",
				Destination: &cmd.status,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "filter by due bucket (all, overdue, today, soon, future)",
				Destination: &cmd.due,
			},
			&cli.StringFlag{
				Name:        "sort",
				Usage:       "sort field (deadline, created, updated)",
				Value:       string(task.SortByDeadline),
				Destination: &cmd.sortField,
			},
			&cli.StringFlag{
				Name:        "order",
				Usage:       "sort order (asc, desc)",
				Value:       string(task.SortAsc),
				Destination: &cmd.sortOrder,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines in the storage format",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) params() (task.Params, error) {
	params := task.Params{Search: cmd.search}

	if cmd.status != "" {
		status, err := task.ParseStatus(cmd.status)
		if err != nil {
			return task.Params{}, err
		}
		params.Status = &status
	}

	if cmd.due != "" {
		bucket, err := task.ParseBucket(cmd.due)
		if err != nil {
			return task.Params{}, err
		}
		params.Due = bucket
	}

	field, err := task.ParseSortField(cmd.sortField)
	if err != nil {
		return task.Params{}, err
	}
	params.SortField = field

	order, err := task.ParseSortOrder(cmd.sortOrder)
	if err != nil {
		return task.Params{}, err
	}
	params.SortOrder = order

	return params, nil
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	params, err := cmd.params()
	if err != nil {
		return err
	}

	tasks, err := cmd.app.Tasks.List(ctx, params)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, t := range tasks {
			if err := iojson.WriteLine(out, t); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	renderTable(out, tasks, time.Now(), cmd.flags.Config.DateFormat)
	return nil
}
