package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbourn/platform-dashboard/internal/repo"
	"github.com/tbourn/platform-dashboard/internal/services"
)

func newSeedCommand(a *app) *cobra.Command {
	var (
		file  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the platform catalog into the store",
		Long: `Load the platform catalog (YAML, or a comparison CSV export) into the store.

Without --force the catalog is only written when the store has no platforms.
With --force every platform is upserted by name; existing reviews are kept.
When --file is omitted SEED_PATH is used, then the embedded catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			platforms, src, err := loadCatalog(file, a.cfg.SeedPath)
			if err != nil {
				return err
			}

			db, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close(db) }()

			catalog := &services.CatalogService{DB: db}
			var n int
			if force {
				n, err = catalog.Upsert(cmd.Context(), platforms)
			} else {
				n, err = catalog.SeedIfEmpty(cmd.Context(), platforms)
			}
			if err != nil {
				return err
			}

			a.log.Info().Int("platforms", n).Str("source", src).Bool("force", force).Msg("seed")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d platforms written from %s\n", n, src)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file (.yaml or .csv)")
	cmd.Flags().BoolVar(&force, "force", false, "upsert even when the catalog is not empty")
	return cmd
}
