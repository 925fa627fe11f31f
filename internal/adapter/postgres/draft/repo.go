// Package draft implements the draft repository using PostgreSQL.
// Fixed statements are raw SQL; the listing query is composed with squirrel
// because its filters are optional.
package draft

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/draftstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

const entity = "draft"

// Repo provides draft persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new draft repository. q is usually a *pgxpool.Pool.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

var draftColumns = []string{"id", "user_id", "service", "document_type", "document", "created_at", "updated_at"}

const selectColumns = `id, user_id, service, document_type, document, created_at, updated_at`

const updateByKeySQL = `
UPDATE drafts
SET document = $4, secret_fingerprint = $5, updated_at = now()
WHERE user_id = $1 AND service = $2 AND document_type = $3
RETURNING id`

const insertSQL = `
INSERT INTO drafts (user_id, service, document_type, document, secret_fingerprint)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const getByKeySQL = `
SELECT ` + selectColumns + `
FROM drafts
WHERE user_id = $1 AND service = $2 AND document_type = $3`

const getByIDSQL = `
SELECT ` + selectColumns + `
FROM drafts
WHERE id = $1`

const deleteByKeySQL = `
DELETE FROM drafts
WHERE user_id = $1 AND service = $2 AND document_type = $3`

const updateByIDSQL = `
UPDATE drafts
SET document_type = $4, document = $5, secret_fingerprint = $6, updated_at = now()
WHERE id = $1 AND user_id = $2 AND service = $3`

const deleteByIDSQL = `
DELETE FROM drafts
WHERE id = $1 AND user_id = $2 AND service = $3`

const deleteAllSQL = `
DELETE FROM drafts
WHERE user_id = $1 AND service = $2`

const deleteStaleSQL = `
DELETE FROM drafts
WHERE updated_at < $1`

// ---------------------------------------------------------------------------
// Key-based operations
// ---------------------------------------------------------------------------

// Upsert stores document under key: it replaces the existing draft of that key
// or inserts a new one. Two statements run without a transaction; when two
// first writes race, the unique constraint lets one insert win and the other
// gets domain.ErrConflict.
func (r *Repo) Upsert(ctx context.Context, key domain.Key, document []byte, fingerprint string) (domain.SaveResult, error) {
	var id int64

	err := r.q.QueryRow(ctx, updateByKeySQL,
		key.UserID, key.Service, key.Type, document, nullable(fingerprint),
	).Scan(&id)
	if err == nil {
		return domain.SaveResult{ID: id, Status: domain.SaveUpdated}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.SaveResult{}, postgres.MapError(err, entity, key.String())
	}

	err = r.q.QueryRow(ctx, insertSQL,
		key.UserID, key.Service, key.Type, document, nullable(fingerprint),
	).Scan(&id)
	if err != nil {
		return domain.SaveResult{}, postgres.MapError(err, entity, key.String())
	}

	return domain.SaveResult{ID: id, Status: domain.SaveCreated}, nil
}

// GetByKey returns the draft stored under key.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetByKey(ctx context.Context, key domain.Key) (*domain.Draft, error) {
	row := r.q.QueryRow(ctx, getByKeySQL, key.UserID, key.Service, key.Type)

	d, err := scanDraft(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, key.String())
	}

	return d, nil
}

// DeleteByKey removes the draft stored under key.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) DeleteByKey(ctx context.Context, key domain.Key) error {
	ct, err := r.q.Exec(ctx, deleteByKeySQL, key.UserID, key.Service, key.Type)
	if err != nil {
		return postgres.MapError(err, entity, key.String())
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Owner-wide operations
// ---------------------------------------------------------------------------

// List returns the owner's drafts in insertion order, optionally narrowed to a type.
// An empty result is an empty slice, never an error.
func (r *Repo) List(ctx context.Context, owner domain.UserAndService, filter domain.ListFilter) ([]domain.Draft, error) {
	query, args, err := buildListQuery(owner, filter)
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, owner.UserID+"/"+owner.Service)
	}
	defer rows.Close()

	drafts, err := scanDrafts(rows)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}

	return drafts, nil
}

func buildListQuery(owner domain.UserAndService, filter domain.ListFilter) (string, []any, error) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(draftColumns...).
		From("drafts").
		Where(sq.Eq{"user_id": owner.UserID}).
		Where(sq.Eq{"service": owner.Service})

	if filter.Type != nil {
		b = b.Where(sq.Eq{"document_type": *filter.Type})
	}
	if filter.After > 0 {
		b = b.Where(sq.Gt{"id": filter.After})
	}

	b = b.OrderBy("id ASC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	return b.ToSql()
}

// DeleteAll removes every draft of the owner and returns how many were removed.
func (r *Repo) DeleteAll(ctx context.Context, owner domain.UserAndService) (int64, error) {
	ct, err := r.q.Exec(ctx, deleteAllSQL, owner.UserID, owner.Service)
	if err != nil {
		return 0, postgres.MapError(err, entity, owner.UserID+"/"+owner.Service)
	}

	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// ID-based operations
// ---------------------------------------------------------------------------

// GetByID returns a draft by primary key regardless of owner; the caller checks ownership.
// Returns domain.ErrNotFound if the draft does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Draft, error) {
	row := r.q.QueryRow(ctx, getByIDSQL, id)

	d, err := scanDraft(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, strconv.FormatInt(id, 10))
	}

	return d, nil
}

// UpdateByID replaces the type and document of the owner's draft id.
// Returns domain.ErrNotFound if no such draft belongs to owner and
// domain.ErrConflict if the owner already has a draft of docType.
func (r *Repo) UpdateByID(ctx context.Context, id int64, owner domain.UserAndService, docType string, document []byte, fingerprint string) error {
	ct, err := r.q.Exec(ctx, updateByIDSQL,
		id, owner.UserID, owner.Service, docType, document, nullable(fingerprint),
	)
	if err != nil {
		return postgres.MapError(err, entity, strconv.FormatInt(id, 10))
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByID removes the owner's draft id.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) DeleteByID(ctx context.Context, id int64, owner domain.UserAndService) error {
	ct, err := r.q.Exec(ctx, deleteByIDSQL, id, owner.UserID, owner.Service)
	if err != nil {
		return postgres.MapError(err, entity, strconv.FormatInt(id, 10))
	}

	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Maintenance
// ---------------------------------------------------------------------------

// DeleteStale removes drafts last updated before the cutoff and returns the count.
func (r *Repo) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	ct, err := r.q.Exec(ctx, deleteStaleSQL, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete stale drafts: %w", err)
	}

	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanDraft(row pgx.Row) (*domain.Draft, error) {
	var d domain.Draft
	var doc []byte

	if err := row.Scan(&d.ID, &d.UserID, &d.Service, &d.Type, &doc, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	d.Document = doc

	return &d, nil
}

func scanDrafts(rows pgx.Rows) ([]domain.Draft, error) {
	drafts := []domain.Draft{}
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drafts, nil
}

// nullable maps an empty fingerprint to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
