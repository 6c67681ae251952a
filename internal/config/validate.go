package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Reconcile.validate(); err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", d.Driver)
		}
	case DriverSQLite:
		if d.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", d.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q (want %q or %q)", d.Driver, DriverPostgres, DriverSQLite)
	}
	return nil
}

func (r *ReconcileConfig) validate() error {
	if r.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", r.MaxUploadBytes)
	}
	if r.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be > 0 (got %d)", r.MaxLineBytes)
	}
	if !domain.MatchMode(r.MatchMode).IsValid() {
		return fmt.Errorf("unknown match_mode %q", r.MatchMode)
	}

	langs, err := ParseLanguageList(r.ExcludedLanguagesRaw)
	if err != nil {
		return fmt.Errorf("excluded_languages: %w", err)
	}
	r.ExcludedLanguages = langs

	return nil
}

// ParseLanguageList parses a comma-separated list of language codes
// (e.g. "en_US,en_GB"). An empty string returns a nil slice.
func ParseLanguageList(raw string) ([]domain.LanguageCode, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	langs := make([]domain.LanguageCode, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		l, ok := domain.LookupLanguageCode(p)
		if !ok {
			return nil, fmt.Errorf("unknown language %q", p)
		}
		langs = append(langs, l)
	}

	return langs, nil
}
