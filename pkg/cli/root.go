package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-steen/reminder-tracker/pkg/config"
	"github.com/matt-steen/reminder-tracker/pkg/controller"
	"github.com/matt-steen/reminder-tracker/pkg/db"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const filePerms = 0o666

// App holds the settings shared by all commands.
type App struct {
	ConfigPath string
	DBPath     string
	LogPath    string
	LogLevel   string

	cfg     config.Config
	logFile *os.File
}

// NewRootCmd builds the reminders command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "reminders",
		Short:        "Keep a list of reminders in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  reminders

  # Print the list sorted by due date, latest first
  reminders list --sort date --desc
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.teardown()
	}

	cmd.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "", "config file (default "+config.ResolveConfigPath()+")")
	cmd.PersistentFlags().StringVar(&app.DBPath, "db", "", "sqlite database file (overrides the config file)")
	cmd.PersistentFlags().StringVar(&app.LogPath, "log-file", "", "debug log file (overrides the config file)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides the config file)")

	cmd.AddCommand(newListCmd(app))

	return cmd
}

func (a *App) setup() error {
	if a.ConfigPath == "" {
		a.ConfigPath = config.ResolveConfigPath()
	}

	cfg, err := config.LoadOrCreate(a.ConfigPath)
	if err != nil {
		return err
	}

	if a.DBPath != "" {
		cfg.DBPath = a.DBPath
	}

	if a.LogPath != "" {
		cfg.LogPath = a.LogPath
	}

	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}

	a.cfg = cfg

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	a.logFile, err = os.OpenFile(cfg.LogPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, fs.FileMode(filePerms))
	if err != nil {
		return fmt.Errorf("error opening log file %s: %w", cfg.LogPath, err)
	}

	log.Logger = log.With().Caller().Logger().Level(level).Output(zerolog.ConsoleWriter{
		Out: a.logFile, TimeFormat: "2006-01-02_15:04:05",
	})

	return nil
}

func (a *App) teardown() error {
	if a.logFile == nil {
		return nil
	}

	err := a.logFile.Close()
	a.logFile = nil

	return err
}

func (a *App) openDatabase(ctx context.Context) (*db.Database, error) {
	if err := os.MkdirAll(filepath.Dir(a.cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("error creating db dir: %w", err)
	}

	return db.NewDatabase(ctx, a.cfg.DBPath, db.WithKey(a.cfg.StorageKey))
}

func runTUI(ctx context.Context, app *App) error {
	log.Info().Str("db", app.cfg.DBPath).Msg("starting application...")

	database, err := app.openDatabase(ctx)
	if err != nil {
		return err
	}

	defer database.Close()

	c, err := controller.NewController(ctx, database)
	if err != nil {
		return err
	}

	return c.Go()
}
