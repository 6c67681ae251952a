// Package localized implements the localized entry corpus repository using
// PostgreSQL.
package localized

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/locbundle-backend/internal/adapter/postgres"
	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

const (
	table  = "localized_entries"
	entity = "localized entry"

	// maxRowsPerInsert keeps multi-row inserts well below the 65535
	// bind parameter limit.
	maxRowsPerInsert = 1000
)

var (
	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	columns = []string{
		"id", "key", "text", "language", "game_franchise", "game_name", "created_at", "updated_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

// entryRow is the scan target for localized_entries rows.
type entryRow struct {
	ID            uuid.UUID `db:"id"`
	Key           string    `db:"key"`
	Text          *string   `db:"text"`
	Language      string    `db:"language"`
	GameFranchise *string   `db:"game_franchise"`
	GameName      *string   `db:"game_name"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r entryRow) toDomain() domain.LocalizedEntry {
	return domain.LocalizedEntry{
		ID:            r.ID,
		Key:           r.Key,
		Text:          r.Text,
		Language:      domain.ParseLanguageCode(r.Language),
		GameFranchise: r.GameFranchise,
		GameName:      r.GameName,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toDomainEntries(rows []entryRow) []domain.LocalizedEntry {
	out := make([]domain.LocalizedEntry, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// Repo provides localized entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new localized entry repository. db is usually a
// *pgxpool.Pool; a transaction stored in the context takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the entries matching filter ordered by (created_at, id), so
// the corpus iteration order is stable between calls.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.EntryFilter) ([]domain.LocalizedEntry, error) {
	q := applyFilter(psql.Select(columns...).From(table), filter).OrderBy("created_at", "id")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list localized entries: %w", err)
	}

	return toDomainEntries(rows), nil
}

// Count returns the number of entries matching filter. Limit and Offset
// are ignored.
func (r *Repo) Count(ctx context.Context, filter domain.EntryFilter) (int, error) {
	query, args, err := applyFilter(psql.Select("count(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count localized entries: %w", err)
	}
	return n, nil
}

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LocalizedEntry, error) {
	query, args, err := psql.Select(columns...).From(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapScanError(err, id)
	}

	e := row.toDomain()
	return &e, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted row. A nil ID is
// replaced with a time-ordered (v7) UUID so id order follows insertion order.
func (r *Repo) Create(ctx context.Context, e domain.LocalizedEntry) (*domain.LocalizedEntry, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.Must(uuid.NewV7())
	}

	query, args, err := insertValues(psql.Insert(table), e).Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, e.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// CreateBatch inserts entries with multi-row INSERT statements and returns
// the persisted rows in input order. Callers wanting all-or-nothing
// semantics across chunks run it inside TxManager.RunInTx.
func (r *Repo) CreateBatch(ctx context.Context, entries []domain.LocalizedEntry) ([]domain.LocalizedEntry, error) {
	if len(entries) == 0 {
		return []domain.LocalizedEntry{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	created := make([]domain.LocalizedEntry, 0, len(entries))

	for start := 0; start < len(entries); start += maxRowsPerInsert {
		end := min(start+maxRowsPerInsert, len(entries))

		ins := psql.Insert(table).Columns(insertColumns...)
		for _, e := range entries[start:end] {
			if e.ID == uuid.Nil {
				e.ID = uuid.Must(uuid.NewV7())
			}
			ins = ins.Values(insertArgs(e)...)
		}

		query, args, err := ins.Suffix(returning).ToSql()
		if err != nil {
			return nil, fmt.Errorf("build batch insert query: %w", err)
		}

		var rows []entryRow
		if err := pgxscan.Select(ctx, querier, &rows, query, args...); err != nil {
			return nil, postgres.MapError(err, entity, uuid.Nil)
		}
		created = append(created, toDomainEntries(rows)...)
	}

	return created, nil
}

// Update overwrites the mutable fields of an entry and bumps updated_at.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Update(ctx context.Context, e domain.LocalizedEntry) (*domain.LocalizedEntry, error) {
	query, args, err := psql.Update(table).
		Set("key", e.Key).
		Set("text", e.Text).
		Set("language", string(e.Language)).
		Set("game_franchise", e.GameFranchise).
		Set("game_name", e.GameName).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapScanError(err, e.ID)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var insertColumns = []string{"id", "key", "text", "language", "game_franchise", "game_name"}

func insertArgs(e domain.LocalizedEntry) []any {
	return []any{e.ID, e.Key, e.Text, string(e.Language), e.GameFranchise, e.GameName}
}

func insertValues(b squirrel.InsertBuilder, e domain.LocalizedEntry) squirrel.InsertBuilder {
	return b.Columns(insertColumns...).Values(insertArgs(e)...)
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

// mapScanError maps scany's not-found error onto pgx.ErrNoRows before the
// shared pg error mapping.
func mapScanError(err error, id uuid.UUID) error {
	if pgxscan.NotFound(err) {
		err = pgx.ErrNoRows
	}
	return postgres.MapError(err, entity, id)
}
