// Package location implements the LocationPing repository using PostgreSQL.
package location

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const pingColumns = `id, round_id, latitude, longitude, accuracy_meters, collected_at, source`

const (
	createSQL = `INSERT INTO location_pings (` + pingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + pingColumns

	listByRoundSQL = `SELECT ` + pingColumns + `
		FROM location_pings
		WHERE round_id = $1
		ORDER BY collected_at, id`
)

// Repo provides location ping persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new location repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends a ping. Out-of-range coordinates fail the check constraint
// and surface as domain.ErrValidation.
func (r *Repo) Create(ctx context.Context, p domain.LocationPing) (*domain.LocationPing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.CollectedAt.IsZero() {
		p.CollectedAt = time.Now().UTC()
	}

	got, err := scanPing(q.QueryRow(ctx, createSQL,
		p.ID, p.RoundID, p.Latitude, p.Longitude, p.AccuracyMeters, p.CollectedAt, string(p.Source),
	))
	if err != nil {
		return nil, postgres.MapError(err, "location ping", p.ID)
	}
	return &got, nil
}

// ListByRound returns the round's pings ordered by collection time, oldest first.
func (r *Repo) ListByRound(ctx context.Context, roundID uuid.UUID) ([]domain.LocationPing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByRoundSQL, roundID)
	if err != nil {
		return nil, postgres.MapError(err, "location pings", roundID)
	}
	pings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LocationPing, error) {
		return scanPing(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "location pings", roundID)
	}
	return pings, nil
}

func scanPing(row pgx.Row) (domain.LocationPing, error) {
	var (
		p      domain.LocationPing
		source string
	)
	if err := row.Scan(&p.ID, &p.RoundID, &p.Latitude, &p.Longitude, &p.AccuracyMeters, &p.CollectedAt, &source); err != nil {
		return domain.LocationPing{}, err
	}
	p.Source = domain.LocationSource(source)
	return p, nil
}
