package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/platform-dashboard/internal/config"
	"github.com/tbourn/platform-dashboard/internal/domain"
	"github.com/tbourn/platform-dashboard/internal/repo"
	"github.com/tbourn/platform-dashboard/internal/seed"
	"github.com/tbourn/platform-dashboard/internal/sysutil"
)

// app carries what every subcommand needs once the root pre-run has loaded
// configuration and installed the logger.
type app struct {
	envFiles []string
	cfg      config.Config
	log      zerolog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "platformdash",
		Short:         "Low-code platform comparison dashboard",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", []string{".env"}, "dotenv files loaded before reading the environment")

	root.AddCommand(
		newServeCommand(a),
		newSeedCommand(a),
		newExportCommand(a),
		newRemoveCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envFiles...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	a.cfg = cfg
	a.log = sysutil.SetupLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogPretty)
	return nil
}

// openStore opens the configured catalog store and migrates its schema.
func (a *app) openStore() (*gorm.DB, error) {
	db, err := repo.Open(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", a.cfg.DBDriver(), err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		_ = repo.Close(db)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// loadCatalog reads the first non-blank path, or the embedded catalog when
// none is given.
func loadCatalog(paths ...string) ([]domain.Platform, string, error) {
	path := sysutil.FirstNonEmpty(paths...)
	if path == "" {
		ps, err := seed.Default()
		return ps, "embedded", err
	}
	ps, err := seed.LoadFile(path)
	return ps, path, err
}
