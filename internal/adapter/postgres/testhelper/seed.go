package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEntry inserts a localized entry with a unique franchise so parallel
// tests do not see each other's rows when filtering by franchise.
// Returns the filled domain.LocalizedEntry.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, key, text string, language domain.LanguageCode) domain.LocalizedEntry {
	t.Helper()
	return SeedEntryWithContext(t, pool, key, text, language, "franchise-"+uniqueSuffix(), "")
}

// SeedEntryWithContext inserts a localized entry with the given franchise and
// game name. Empty strings are stored as NULL.
func SeedEntryWithContext(t *testing.T, pool *pgxpool.Pool, key, text string, language domain.LanguageCode, franchise, name string) domain.LocalizedEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.LocalizedEntry{
		ID:            uuid.Must(uuid.NewV7()),
		Key:           key,
		Text:          domain.StringPtr(text),
		Language:      language,
		GameFranchise: domain.StringPtr(franchise),
		GameName:      domain.StringPtr(name),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO localized_entries (id, key, text, language, game_franchise, game_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Key, e.Text, string(e.Language), e.GameFranchise, e.GameName, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return e
}
