package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/waggle/internal/commands"
	"github.com/colonyops/waggle/internal/core/config"
	"github.com/colonyops/waggle/internal/core/styles"
	"github.com/colonyops/waggle/internal/data/db"
	"github.com/colonyops/waggle/internal/data/stores"
	"github.com/colonyops/waggle/internal/waggle"
	"github.com/colonyops/waggle/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		waggleApp = &waggle.App{}
		database  *db.DB
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "waggle",
		Usage:     "Track tasks from the terminal",
		UsageText: "waggle [global options] command [command options]",
		Description: `Waggle is a small task manager with deadlines, tags, and statuses.

Run 'waggle' with no arguments to open the interactive task browser.
Run 'waggle add' to capture a new task.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("WAGGLE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/waggle.log)",
				Sources:     cli.EnvVars("WAGGLE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("WAGGLE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("WAGGLE_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/waggle.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "waggle.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Open database connection
			dbOpts := db.OpenOptions{
				MaxOpenConns: cfg.Database.MaxOpenConns,
				MaxIdleConns: cfg.Database.MaxIdleConns,
				BusyTimeout:  cfg.Database.BusyTimeout,
			}
			database, err = db.Open(cfg.DataDir, dbOpts)
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}

			kvStore := stores.NewKVStore(database)
			taskStore := stores.NewTaskStore(kvStore)
			prefStore := stores.NewPrefStore(kvStore, log.With().Str("component", "prefs").Logger())

			// The stored theme preference wins over the config file; an
			// unknown stored name falls back to the validated config theme.
			theme := prefStore.Get(ctx, stores.PrefTheme, cfg.Theme)
			palette, ok := styles.GetPalette(theme)
			if !ok {
				palette, _ = styles.GetPalette(cfg.Theme)
			}
			styles.SetTheme(palette)

			svcLogger := log.With().Str("component", "tasks").Logger()

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*waggleApp = *waggle.NewApp(
				waggle.NewTaskService(taskStore, svcLogger),
				prefStore,
				cfg,
				database,
			)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close database connection
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, waggleApp)

	app = commands.NewAddCmd(flags, waggleApp).Register(app)
	app = commands.NewLsCmd(flags, waggleApp).Register(app)
	app = commands.NewShowCmd(flags, waggleApp).Register(app)
	app = commands.NewEditCmd(flags, waggleApp).Register(app)
	app = commands.NewStatusCmd(flags, waggleApp).Register(app)
	app = commands.NewRmCmd(flags, waggleApp).Register(app)
	app = commands.NewTodayCmd(flags, waggleApp).Register(app)
	app = commands.NewArchiveCmd(flags, waggleApp).Register(app)
	app = commands.NewExportCmd(flags, waggleApp).Register(app)
	app = commands.NewImportCmd(flags, waggleApp).Register(app)
	app = commands.NewThemesCmd(flags, waggleApp).Register(app)
	app = tuiCmd.Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'waggle --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
