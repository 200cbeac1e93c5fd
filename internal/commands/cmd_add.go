package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/core/validate"
	"github.com/colonyops/waggle/internal/waggle"
)

// AddCmd implements the waggle add command.
type AddCmd struct {
	flags *Flags
	app   *waggle.App

	title       string
	description string
	deadline    string
	tags        []string
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *waggle.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Create a new task",
		UsageText: "waggle add [--title <title>] [--description <desc>] [--deadline <when>] [--tag <tag>]...",
		Description: `Creates a task. With no --title, an interactive form opens.

Deadlines accept YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC 3339.

Examples:
  waggle add --title "Fix login bug" --deadline 2025-07-01 --tag work --tag urgent
  waggle add`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "task title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "optional description (markdown)",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "deadline",
				Usage:       "optional deadline",
				Destination: &cmd.deadline,
			},
			&cli.StringSliceFlag{
				Name:        "tag",
				Usage:       "tag (work, personal, urgent, low-priority); repeatable",
				Destination: &cmd.tags,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	// Show interactive form if title not provided via flag
	if cmd.title == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	// Front-door validation; the store itself does not validate.
	if err := validate.TitleField("title", cmd.title); err != nil {
		return err
	}

	var deadline *time.Time
	if cmd.deadline != "" {
		d, err := validate.ParseDeadline(cmd.deadline)
		if err != nil {
			return err
		}
		deadline = &d
	}

	tags := make([]task.Tag, 0, len(cmd.tags))
	for _, raw := range cmd.tags {
		tag, err := task.ParseTag(raw)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
	}

	created, err := cmd.app.Tasks.Create(ctx, cmd.title, cmd.description, deadline, tags)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render("Created ")+shortID(created.ID)+" "+created.Title)
	return nil
}

func (cmd *AddCmd) runForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validate.TaskTitle).
				Value(&cmd.title),
			huh.NewText().
				Title("Description").
				Description("Optional; rendered as markdown in 'waggle show'").
				Value(&cmd.description),
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD, empty for none").
				Validate(validate.Deadline).
				Value(&cmd.deadline),
			huh.NewMultiSelect[string]().
				Title("Tags").
				Options(huh.NewOptions(task.TagNames()...)...).
				Value(&cmd.tags),
		),
	).Run()
}
