package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/core/validate"
	"github.com/colonyops/waggle/internal/waggle"
)

// EditCmd implements the waggle edit command.
type EditCmd struct {
	flags *Flags
	app   *waggle.App

	title         string
	description   string
	deadline      string
	clearDeadline bool
	tags          []string
	clearTags     bool
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags, app *waggle.App) *EditCmd {
	return &EditCmd{flags: flags, app: app}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit a task's fields",
		UsageText: "waggle edit <id> [--title <title>] [--description <desc>] [--deadline <when>] [--clear-deadline] [--tag <tag>]... [--clear-tags]",
		Description: `Merges the given fields into the task and stamps its updated time.
With no field flags, an interactive form opens pre-filled with the
current values. Status changes go through 'waggle status'.

Examples:
  waggle edit 4f21 --title "Fix login bug (prod)"
  waggle edit 4f21 --deadline 2025-07-15
  waggle edit 4f21 --clear-deadline
  waggle edit 4f21`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "new description",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "deadline",
				Usage:       "new deadline",
				Destination: &cmd.deadline,
			},
			&cli.BoolFlag{
				Name:        "clear-deadline",
				Usage:       "remove the deadline",
				Destination: &cmd.clearDeadline,
			},
			&cli.StringSliceFlag{
				Name:        "tag",
				Usage:       "replace tags with the given set; repeatable",
				Destination: &cmd.tags,
			},
			&cli.BoolFlag{
				Name:        "clear-tags",
				Usage:       "remove all tags",
				Destination: &cmd.clearTags,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := resolveID(ctx, cmd.app, c.Args().First())
	if err != nil {
		return err
	}

	current, err := cmd.app.Tasks.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	interactive := !cmd.anyFieldSet(c)
	if interactive {
		if err := cmd.runForm(current); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	patch, err := cmd.patch(c, interactive)
	if err != nil {
		return err
	}

	updated, err := cmd.app.Tasks.Edit(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("edit task: %w", err)
	}

	fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render("Updated ")+shortID(updated.ID)+" "+updated.Title)
	return nil
}

func (cmd *EditCmd) anyFieldSet(c *cli.Command) bool {
	for _, name := range []string{"title", "description", "deadline", "clear-deadline", "tag", "clear-tags"} {
		if c.IsSet(name) {
			return true
		}
	}
	return false
}

// patch translates flag/form values into a task.Patch. In interactive
// mode every field was presented, so all of them are applied; in flag
// mode only flags the user set are.
func (cmd *EditCmd) patch(c *cli.Command, interactive bool) (task.Patch, error) {
	var patch task.Patch

	set := func(name string) bool { return interactive || c.IsSet(name) }

	if set("title") {
		if err := validate.TitleField("title", cmd.title); err != nil {
			return task.Patch{}, err
		}
		patch.Title = &cmd.title
	}
	if set("description") {
		patch.Description = &cmd.description
	}

	switch {
	case cmd.clearDeadline, interactive && cmd.deadline == "":
		patch.ClearDeadline = true
	case set("deadline") && cmd.deadline != "":
		d, err := validate.ParseDeadline(cmd.deadline)
		if err != nil {
			return task.Patch{}, err
		}
		patch.Deadline = &d
	}

	switch {
	case cmd.clearTags, interactive && len(cmd.tags) == 0:
		patch.ClearTags = true
	case set("tag") && len(cmd.tags) > 0:
		tags := make([]task.Tag, 0, len(cmd.tags))
		for _, raw := range cmd.tags {
			tag, err := task.ParseTag(raw)
			if err != nil {
				return task.Patch{}, err
			}
			tags = append(tags, tag)
		}
		patch.Tags = tags
	}

	return patch, nil
}

func (cmd *EditCmd) runForm(current task.Task) error {
	cmd.title = current.Title
	cmd.description = current.Description
	if current.Deadline != nil {
		cmd.deadline = current.Deadline.Local().Format("2006-01-02 15:04")
	}
	cmd.tags = make([]string, len(current.Tags))
	for i, tag := range current.Tags {
		cmd.tags[i] = tag.String()
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validate.TaskTitle).
				Value(&cmd.title),
			huh.NewText().
				Title("Description").
				Value(&cmd.description),
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD [HH:MM], empty for none").
				Validate(validate.Deadline).
				Value(&cmd.deadline),
			huh.NewMultiSelect[string]().
				Title("Tags").
				Options(huh.NewOptions(task.TagNames()...)...).
				Value(&cmd.tags),
		),
	).Run()
}
