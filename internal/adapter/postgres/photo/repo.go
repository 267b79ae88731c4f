// Package photo implements the Photo metadata repository using PostgreSQL.
// Photo bytes live in the blob store; rows only carry the storage key.
package photo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const photoColumns = `id, round_id, item_answer_id, file_name, mime_type, size_bytes, storage_key, captured_at, uploaded_by`

const (
	createSQL = `INSERT INTO photos (` + photoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + photoColumns

	getSQL = `SELECT ` + photoColumns + ` FROM photos WHERE id = $1 AND round_id = $2`

	listByRoundSQL = `SELECT ` + photoColumns + ` FROM photos WHERE round_id = $1 ORDER BY captured_at, id`
)

// Repo provides photo persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new photo repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts photo metadata.
func (r *Repo) Create(ctx context.Context, p domain.Photo) (*domain.Photo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.CapturedAt.IsZero() {
		p.CapturedAt = time.Now().UTC()
	}

	got, err := scanPhoto(q.QueryRow(ctx, createSQL,
		p.ID, p.RoundID, p.ItemAnswerID, p.FileName, p.MimeType, p.SizeBytes, p.StorageKey, p.CapturedAt, p.UploadedByUserID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "photo", p.ID)
	}
	return &got, nil
}

// Get returns a photo of the round, or domain.ErrPhotoNotFound.
func (r *Repo) Get(ctx context.Context, roundID, photoID uuid.UUID) (*domain.Photo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	got, err := scanPhoto(q.QueryRow(ctx, getSQL, photoID, roundID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("photo %s: %w", photoID, domain.ErrPhotoNotFound)
	}
	if err != nil {
		return nil, postgres.MapError(err, "photo", photoID)
	}
	return &got, nil
}

// ListByRound returns the round's photos in capture order.
func (r *Repo) ListByRound(ctx context.Context, roundID uuid.UUID) ([]domain.Photo, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByRoundSQL, roundID)
	if err != nil {
		return nil, postgres.MapError(err, "photos", roundID)
	}
	photos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Photo, error) {
		return scanPhoto(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "photos", roundID)
	}
	return photos, nil
}

func scanPhoto(row pgx.Row) (domain.Photo, error) {
	var p domain.Photo
	err := row.Scan(&p.ID, &p.RoundID, &p.ItemAnswerID, &p.FileName, &p.MimeType, &p.SizeBytes, &p.StorageKey, &p.CapturedAt, &p.UploadedByUserID)
	return p, err
}
