package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbourn/platform-dashboard/internal/repo"
	"github.com/tbourn/platform-dashboard/internal/services"
)

func newRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Delete a platform and its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close(db) }()

			catalog := &services.CatalogService{DB: db}
			if err := catalog.DeletePlatform(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("remove %q: %w", args[0], err)
			}
			a.log.Info().Str("platform", args[0]).Msg("platform removed")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}
