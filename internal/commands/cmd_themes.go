package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/data/stores"
	"github.com/colonyops/waggle/internal/waggle"
)

// ThemesCmd implements the waggle themes command.
type ThemesCmd struct {
	flags *Flags
	app   *waggle.App

	set string
}

// NewThemesCmd creates a new themes command.
func NewThemesCmd(flags *Flags, app *waggle.App) *ThemesCmd {
	return &ThemesCmd{flags: flags, app: app}
}

// Register adds the themes command to the application.
func (cmd *ThemesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "themes",
		Usage:     "List or set the color theme",
		UsageText: "waggle themes [--set <name>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "set",
				Usage:       "persist the given theme as a preference",
				Destination: &cmd.set,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ThemesCmd) run(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer

	if cmd.set != "" {
		if _, ok := styles.GetPalette(cmd.set); !ok {
			return fmt.Errorf("unknown theme %q (available: %v)", cmd.set, styles.ThemeNames())
		}
		cmd.app.Prefs.Set(ctx, stores.PrefTheme, cmd.set)
		fmt.Fprintln(out, styles.SuccessStyle.Render("Theme set to ")+cmd.set)
		return nil
	}

	active := cmd.app.Prefs.Get(ctx, stores.PrefTheme, cmd.flags.Config.Theme)
	for _, name := range styles.ThemeNames() {
		marker := "  "
		if name == active {
			marker = "* "
		}
		fmt.Fprintln(out, marker+name)
	}

	return nil
}
