package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/locbundle-backend/internal/app"
)

func newMigrateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending corpus store migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			applied, err := app.Migrate(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("migrate %s: %w", cfg.Database.Driver, err)
			}
			if applied == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s corpus store is up to date\n", cfg.Database.Driver)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) to %s corpus store\n", applied, cfg.Database.Driver)
			return nil
		},
	}
}
