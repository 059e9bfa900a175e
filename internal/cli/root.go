// Package cli wires configuration, logging and storage into the cobra
// command tree. Running the root command without a subcommand starts the
// terminal UI.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/mytodo/internal/config"
	"github.com/sandeepkv93/mytodo/internal/logging"
	"github.com/sandeepkv93/mytodo/internal/storage"
	"github.com/sandeepkv93/mytodo/internal/store"
)

type App struct {
	Config     config.Config
	ConfigPath string
	DB         *storage.SQLiteStore
	Store      *store.Store
	Logger     *log.Logger
	logCloser  io.Closer
}

func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mytodo",
		Short:         "Keep a short todo list in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()
			return startTUI(cmd.Context(), app)
		},
	}
	cmd.PersistentFlags().String("config", "", "Path to config.toml (defaults to $XDG_CONFIG_HOME/mytodo/config.toml)")
	cmd.PersistentFlags().String("db", "", "Path to the SQLite database")
	cmd.PersistentFlags().String("log-file", "", `Log destination; "-" for stderr, empty to disable`)
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newEditCmd())
	cmd.AddCommand(newDeleteCmd())
	cmd.AddCommand(newDoneCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

func initApp(cmd *cobra.Command) (*App, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.ConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	cfg = applyFlags(cmd, cfg)

	opts := logging.DefaultOptions()
	opts.Level = cfg.LogLevel
	opts.Format = cfg.LogFormat
	logger, closer, err := logging.Open(cfg.LogFile, opts)
	if err != nil {
		return nil, err
	}

	db, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}
	logger.Debug("database opened", "path", cfg.DBPath, "config", cfgPath)

	st := store.New(cmd.Context(), storage.NewTaskPersistence(db, logger), store.WithLogger(logger))
	return &App{
		Config:     cfg,
		ConfigPath: cfgPath,
		DB:         db,
		Store:      st,
		Logger:     logger,
		logCloser:  closer,
	}, nil
}

func applyFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg
}
