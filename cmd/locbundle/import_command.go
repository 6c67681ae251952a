package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/locbundle-backend/internal/app"
	"github.com/heartmarshall/locbundle-backend/internal/service/catalog"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var franchise, name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add every key/value line of a source file to the corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger(cmd.ErrOrStderr())

			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open source file: %w", err)
			}
			defer f.Close()

			return ctx.withStore(cmd.Context(), logger, func(store *app.Store) error {
				svc := catalog.NewService(logger, store.Entries, store.Tx, cfg.Reconcile)
				result, err := svc.ImportEntries(cmd.Context(), catalog.ImportInput{
					File:      f,
					FileName:  filepath.Base(path),
					Franchise: franchise,
					Name:      name,
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s entr%s (language %s), skipped %s line(s)\n",
					humanize.Comma(int64(result.Imported)), pluralY(result.Imported),
					result.Language, humanize.Comma(int64(result.Skipped)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&franchise, "franchise", "", "Game franchise recorded on every entry")
	cmd.Flags().StringVar(&name, "name", "", "Game name recorded on every entry")

	return cmd
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
