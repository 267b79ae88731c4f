// Package audit implements the audit log repository using PostgreSQL.
// The log is append-only.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const auditColumns = `id, round_id, user_id, user_name, action, details, metadata, created_at`

const createSQL = `INSERT INTO audit_log (` + auditColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Default limits for audit reads.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Filter selects audit entries. A nil RoundID reads across all rounds.
type Filter struct {
	RoundID *uuid.UUID
	Limit   int
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an entry. It joins the caller's transaction, so a failure here
// fails the mutation being recorded.
func (r *Repo) Log(ctx context.Context, e domain.AuditEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	var meta []byte
	if len(e.Metadata) > 0 {
		var err error
		meta, err = json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("audit entry marshal metadata: %w", err)
		}
	}

	_, err := q.Exec(ctx, createSQL, e.ID, e.RoundID, e.UserID, e.UserName, string(e.Action), e.Details, meta, e.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "audit entry", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns entries newest first (created_at DESC, id DESC).
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.AuditEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	qb := postgres.Builder().
		Select(auditColumns).
		From("audit_log").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
	if f.RoundID != nil {
		qb = qb.Where(squirrel.Eq{"round_id": *f.RoundID})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "audit entries", "list")
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AuditEntry, error) {
		return scanEntry(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "audit entries", "list")
	}
	return entries, nil
}

// ListByRound returns every entry of a round, newest first.
func (r *Repo) ListByRound(ctx context.Context, roundID uuid.UUID) ([]domain.AuditEntry, error) {
	return r.List(ctx, Filter{RoundID: &roundID, Limit: MaxLimit})
}

// ListRecent returns the latest limit entries across all rounds.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return r.List(ctx, Filter{Limit: limit})
}

func scanEntry(row pgx.Row) (domain.AuditEntry, error) {
	var (
		e      domain.AuditEntry
		action string
		meta   []byte
	)
	if err := row.Scan(&e.ID, &e.RoundID, &e.UserID, &e.UserName, &action, &e.Details, &meta, &e.CreatedAt); err != nil {
		return domain.AuditEntry{}, err
	}
	e.Action = domain.AuditAction(action)
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &e.Metadata); err != nil {
			return domain.AuditEntry{}, fmt.Errorf("audit entry %s unmarshal metadata: %w", e.ID, err)
		}
	}
	return e, nil
}
