package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/locbundle-backend/internal/app"
	"github.com/heartmarshall/locbundle-backend/internal/service/reconcile"
)

const defaultArchivePath = "translations.zip"

func newReconcileCommand(ctx *commandContext) *cobra.Command {
	var franchise, name, out string

	cmd := &cobra.Command{
		Use:   "reconcile <file>",
		Short: "Reconcile a source file against the corpus and write a bundle archive",
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
				svc := reconcile.NewService(logger, store.Entries, cfg.Reconcile)
				output, err := svc.Reconcile(cmd.Context(), reconcile.ReconcileInput{
					File:      f,
					FileName:  filepath.Base(path),
					Franchise: franchise,
					Name:      name,
				})
				var nothing *reconcile.NothingToBundleError
				if errors.As(err, &nothing) {
					fmt.Fprintf(cmd.OutOrStdout(), "Nothing to bundle: none of %d line(s) were found in the corpus\n", nothing.NotFound)
					return nil
				}
				if err != nil {
					return err
				}

				if err := os.WriteFile(out, output.Archive, 0o644); err != nil {
					return fmt.Errorf("write archive: %w", err)
				}
				printReconcileSummary(cmd.OutOrStdout(), out, output)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&franchise, "franchise", "", "Game franchise to match (empty matches any)")
	cmd.Flags().StringVar(&name, "name", "", "Game name to match (empty matches any)")
	cmd.Flags().StringVarP(&out, "out", "o", defaultArchivePath, "Archive output path")

	return cmd
}

func printReconcileSummary(w io.Writer, path string, output *reconcile.ReconcileOutput) {
	fmt.Fprintf(w, "Wrote %s (%s)\n", path, humanize.Bytes(uint64(len(output.Archive))))
	fmt.Fprintf(w, "  found:     %s\n", humanize.Comma(int64(len(output.Result.Found))))
	fmt.Fprintf(w, "  not found: %s\n", humanize.Comma(int64(len(output.Result.NotFound))))
	fmt.Fprintf(w, "  bundles:   %s\n", humanize.Comma(int64(len(output.Bundles))))
}
