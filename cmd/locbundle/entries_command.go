package main

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/locbundle-backend/internal/app"
	"github.com/heartmarshall/locbundle-backend/internal/domain"
	"github.com/heartmarshall/locbundle-backend/internal/service/catalog"
)

const maxTextColumn = 48

type entryJSON struct {
	ID            string    `json:"id"`
	Key           string    `json:"key"`
	Text          *string   `json:"text"`
	Language      string    `json:"language"`
	GameFranchise *string   `json:"game_franchise"`
	GameName      *string   `json:"game_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type entryListJSON struct {
	Items []entryJSON `json:"items"`
	Total int         `json:"total"`
}

func newEntriesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Inspect the translation corpus",
	}
	cmd.AddCommand(newEntriesListCommand(ctx))
	return cmd
}

func newEntriesListCommand(ctx *commandContext) *cobra.Command {
	var (
		key, language, franchise, name string
		limit, offset                  int
		jsonOutput                     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List corpus entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger(cmd.ErrOrStderr())

			input := catalog.ListEntriesInput{Limit: limit, Offset: offset}
			flags := cmd.Flags()
			if flags.Changed("key") {
				input.Key = &key
			}
			if flags.Changed("language") {
				input.Language = &language
			}
			if flags.Changed("franchise") {
				input.GameFranchise = &franchise
			}
			if flags.Changed("name") {
				input.GameName = &name
			}

			return ctx.withStore(cmd.Context(), logger, func(store *app.Store) error {
				svc := catalog.NewService(logger, store.Entries, store.Tx, cfg.Reconcile)
				result, err := svc.ListEntries(cmd.Context(), input)
				if err != nil {
					return err
				}

				if jsonOutput || !isTerminal(cmd.OutOrStdout()) {
					return writeJSON(cmd, toEntryListJSON(result))
				}

				if len(result.Items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No entries")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderEntries(result.Items))
				fmt.Fprintf(cmd.OutOrStdout(), "%s of %s entries\n",
					humanize.Comma(int64(len(result.Items))), humanize.Comma(int64(result.Total)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Only entries with this key")
	cmd.Flags().StringVar(&language, "language", "", "Only entries in this language (e.g. ja_JP)")
	cmd.Flags().StringVar(&franchise, "franchise", "", "Only entries of this game franchise")
	cmd.Flags().StringVar(&name, "name", "", "Only entries of this game name")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of entries (0 = all)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of entries to skip")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON even when stdout is a terminal")

	return cmd
}

func renderEntries(items []domain.LocalizedEntry) string {
	headers := []string{"Key", "Language", "Text", "Franchise", "Game", "Updated"}
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{
			e.Key,
			e.Language.String(),
			truncate(e.TextOrEmpty(), maxTextColumn),
			e.FranchiseOrEmpty(),
			e.NameOrEmpty(),
			humanize.Time(e.UpdatedAt),
		})
	}
	return renderTable(headers, rows, nil)
}

func toEntryListJSON(result *catalog.ListEntriesResult) entryListJSON {
	out := entryListJSON{Items: make([]entryJSON, 0, len(result.Items)), Total: result.Total}
	for _, e := range result.Items {
		out.Items = append(out.Items, entryJSON{
			ID:            e.ID.String(),
			Key:           e.Key,
			Text:          e.Text,
			Language:      e.Language.String(),
			GameFranchise: e.GameFranchise,
			GameName:      e.GameName,
			CreatedAt:     e.CreatedAt,
			UpdatedAt:     e.UpdatedAt,
		})
	}
	return out
}

// truncate shortens s to at most limit runes, marking the cut with "...".
func truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}
