// Package sector implements the Sector repository using PostgreSQL.
package sector

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const sectorColumns = `id, name, sort_order, checkpoint_hint, created_at`

const (
	listSQL = `SELECT ` + sectorColumns + ` FROM sectors ORDER BY sort_order, name`

	existingIDsSQL = `SELECT id FROM sectors WHERE id = ANY($1)`

	createSQL = `INSERT INTO sectors (id, name, sort_order, checkpoint_hint, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + sectorColumns
)

// Repo provides sector persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sector repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns every sector ordered by order, then name.
func (r *Repo) List(ctx context.Context) ([]domain.Sector, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "sectors", "all")
	}
	defer rows.Close()

	sectors := make([]domain.Sector, 0)
	for rows.Next() {
		s, err := scanSector(rows)
		if err != nil {
			return nil, postgres.MapError(err, "sectors", "all")
		}
		sectors = append(sectors, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "sectors", "all")
	}
	return sectors, nil
}

// MissingIDs returns the ids from ids that do not name a sector.
func (r *Repo) MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, existingIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "sectors", len(ids))
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, postgres.MapError(err, "sectors", len(ids))
	}

	known := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// Create inserts a sector. A duplicate order yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s domain.Sector) (*domain.Sector, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	got, err := scanSector(q.QueryRow(ctx, createSQL, s.ID, s.Name, s.Order, s.CheckpointHint, s.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "sector", s.Order)
	}
	return &got, nil
}

func scanSector(row pgx.Row) (domain.Sector, error) {
	var s domain.Sector
	if err := row.Scan(&s.ID, &s.Name, &s.Order, &s.CheckpointHint, &s.CreatedAt); err != nil {
		return domain.Sector{}, err
	}
	return s, nil
}
