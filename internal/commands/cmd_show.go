package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/waggle"
)

// ShowCmd implements the waggle show command.
type ShowCmd struct {
	flags *Flags
	app   *waggle.App
}

// NewShowCmd creates a new show command.
func NewShowCmd(flags *Flags, app *waggle.App) *ShowCmd {
	return &ShowCmd{flags: flags, app: app}
}

// Register adds the show command to the application.
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show one task in full",
		UsageText: "waggle show <id>",
		Description: `Prints a task's fields and renders its description as markdown.

The id may be any unique prefix of the full task id.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := resolveID(ctx, cmd.app, c.Args().First())
	if err != nil {
		return err
	}

	t, err := cmd.app.Tasks.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	now := time.Now()
	out := c.Root().Writer
	layout := cmd.flags.Config.DateFormat

	fmt.Fprintln(out, styles.TitleStyle.Render(t.Title))
	fmt.Fprintln(out, styles.MutedStyle.Render(t.ID))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Status:   %s\n", styles.StatusStyle(t.Status).Render(t.Status.String()))

	if t.Deadline != nil {
		u := task.Classify(t, now)
		due := t.Deadline.Local().Format(layout)
		if u != task.UrgencyNone {
			due = styles.UrgencyStyle(u).Render(due + " (" + u.String() + ")")
		}
		fmt.Fprintf(out, "Deadline: %s\n", due)
	}

	if len(t.Tags) > 0 {
		fmt.Fprintf(out, "Tags:     %s\n", formatTags(t.Tags))
	}

	fmt.Fprintf(out, "Created:  %s\n", t.CreatedAt.Local().Format(layout))
	fmt.Fprintf(out, "Updated:  %s\n", t.UpdatedAt.Local().Format(layout))

	if t.Description != "" {
		rendered, err := renderMarkdown(t.Description)
		if err != nil {
			// Fall back to the raw text rather than failing the command.
			rendered = "\n" + t.Description + "\n"
		}
		fmt.Fprintln(out, rendered)
	}

	return nil
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
