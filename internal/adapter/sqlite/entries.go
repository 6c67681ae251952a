package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

const (
	table  = "localized_entries"
	entity = "localized entry"

	// timeLayout is fixed-width so text ordering equals time ordering.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

var (
	sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	columns = []string{
		"id", "key", "text", "language", "game_franchise", "game_name", "created_at", "updated_at",
	}
)

// List returns the entries matching filter ordered by (created_at, id).
// Returns an empty slice (not nil) when nothing matches.
func (s *Store) List(ctx context.Context, filter domain.EntryFilter) ([]domain.LocalizedEntry, error) {
	q := applyFilter(sq.Select(columns...).From(table), filter).OrderBy("created_at", "id")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			// SQLite only accepts OFFSET after LIMIT.
			q = q.Limit(uint64(1<<63 - 1))
		}
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := s.connFromCtx(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list localized entries: %w", err)
	}
	defer rows.Close()

	out := []domain.LocalizedEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("list localized entries: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list localized entries: %w", err)
	}
	return out, nil
}

// Count returns the number of entries matching filter. Limit and Offset
// are ignored.
func (s *Store) Count(ctx context.Context, filter domain.EntryFilter) (int, error) {
	query, args, err := applyFilter(sq.Select("COUNT(1)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := s.connFromCtx(ctx).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count localized entries: %w", err)
	}
	return n, nil
}

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.LocalizedEntry, error) {
	query, args, err := sq.Select(columns...).From(table).Where(squirrel.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	e, err := scanEntry(s.connFromCtx(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, id)
	}
	return &e, nil
}

// Create inserts a new entry and returns the persisted row. A nil ID is
// replaced with a fresh UUID.
func (s *Store) Create(ctx context.Context, e domain.LocalizedEntry) (*domain.LocalizedEntry, error) {
	e = stamp(e, time.Now())

	query, args, err := sq.Insert(table).Columns(columns...).Values(insertArgs(e)...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	if err := retryOnBusy(ctx, func() error {
		_, execErr := s.connFromCtx(ctx).ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, mapError(err, e.ID)
	}
	return &e, nil
}

// CreateBatch inserts entries in a single transaction and returns the
// persisted rows in input order.
func (s *Store) CreateBatch(ctx context.Context, entries []domain.LocalizedEntry) ([]domain.LocalizedEntry, error) {
	created := make([]domain.LocalizedEntry, 0, len(entries))
	if len(entries) == 0 {
		return created, nil
	}

	err := s.RunInTx(ctx, func(ctx context.Context) error {
		now := time.Now()
		for _, e := range entries {
			e = stamp(e, now)

			query, args, err := sq.Insert(table).Columns(columns...).Values(insertArgs(e)...).ToSql()
			if err != nil {
				return fmt.Errorf("build insert query: %w", err)
			}
			if _, err := s.connFromCtx(ctx).ExecContext(ctx, query, args...); err != nil {
				return mapError(err, e.ID)
			}
			created = append(created, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites the mutable fields of an entry and bumps updated_at.
// Returns domain.ErrNotFound if the entry does not exist.
func (s *Store) Update(ctx context.Context, e domain.LocalizedEntry) (*domain.LocalizedEntry, error) {
	var updated *domain.LocalizedEntry

	err := s.RunInTx(ctx, func(ctx context.Context) error {
		query, args, err := sq.Update(table).
			Set("key", e.Key).
			Set("text", nullable(e.Text)).
			Set("language", string(e.Language)).
			Set("game_franchise", nullable(e.GameFranchise)).
			Set("game_name", nullable(e.GameName)).
			Set("updated_at", formatTime(time.Now())).
			Where(squirrel.Eq{"id": e.ID.String()}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update query: %w", err)
		}

		res, err := s.connFromCtx(ctx).ExecContext(ctx, query, args...)
		if err != nil {
			return mapError(err, e.ID)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return mapError(sql.ErrNoRows, e.ID)
		}

		updated, err = s.GetByID(ctx, e.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Delete(table).Where(squirrel.Eq{"id": id.String()}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	var res sql.Result
	if err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.connFromCtx(ctx).ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return mapError(err, id)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mapError(sql.ErrNoRows, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (domain.LocalizedEntry, error) {
	var (
		id, key, language    string
		text, franchise      sql.NullString
		name                 sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&id, &key, &text, &language, &franchise, &name, &createdAt, &updatedAt); err != nil {
		return domain.LocalizedEntry{}, err
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return domain.LocalizedEntry{}, fmt.Errorf("parse id %q: %w", id, err)
	}
	created, err := parseTime(createdAt)
	if err != nil {
		return domain.LocalizedEntry{}, err
	}
	updated, err := parseTime(updatedAt)
	if err != nil {
		return domain.LocalizedEntry{}, err
	}

	return domain.LocalizedEntry{
		ID:            parsedID,
		Key:           key,
		Text:          fromNull(text),
		Language:      domain.ParseLanguageCode(language),
		GameFranchise: fromNull(franchise),
		GameName:      fromNull(name),
		CreatedAt:     created,
		UpdatedAt:     updated,
	}, nil
}

func stamp(e domain.LocalizedEntry, now time.Time) domain.LocalizedEntry {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}
	// Round-trip through the storage layout so the returned value equals a
	// later read.
	now, _ = parseTime(formatTime(now))
	e.CreatedAt = now
	e.UpdatedAt = now
	return e
}

func insertArgs(e domain.LocalizedEntry) []any {
	return []any{
		e.ID.String(),
		e.Key,
		nullable(e.Text),
		string(e.Language),
		nullable(e.GameFranchise),
		nullable(e.GameName),
		formatTime(e.CreatedAt),
		formatTime(e.UpdatedAt),
	}
}

func applyFilter(b squirrel.SelectBuilder, f domain.EntryFilter) squirrel.SelectBuilder {
	if f.Key != nil {
		b = b.Where(squirrel.Eq{"key": *f.Key})
	}
	if f.Language != nil {
		b = b.Where(squirrel.Eq{"language": string(*f.Language)})
	}
	if f.GameFranchise != nil {
		b = b.Where(squirrel.Eq{"game_franchise": *f.GameFranchise})
	}
	if f.GameName != nil {
		b = b.Where(squirrel.Eq{"game_name": *f.GameName})
	}
	return b
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func fromNull(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	return t, nil
}

// mapError converts database/sql and SQLite errors to domain errors.
func mapError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var coder interface{ Code() int }
	if errors.As(err, &coder) {
		switch coder.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
