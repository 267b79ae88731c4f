// Package blob stores photo bytes in PostgreSQL (photo_blobs.data bytea).
package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const (
	putSQL = `INSERT INTO photo_blobs (key, mime_type, data) VALUES ($1, $2, $3)`
	getSQL = `SELECT data, mime_type FROM photo_blobs WHERE key = $1`
)

// Repo is a blob store backed by a bytea column. Writes join the caller's
// transaction, so a photo row and its bytes commit together.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new blob repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Put stores data under key and returns key as the retrievable reference.
func (r *Repo) Put(ctx context.Context, key string, data []byte, mime string) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, putSQL, key, mime, data); err != nil {
		return "", postgres.MapError(err, "blob", key)
	}
	return key, nil
}

// Get returns the bytes and mime type stored under ref.
func (r *Repo) Get(ctx context.Context, ref string) ([]byte, string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		data []byte
		mime string
	)
	err := q.QueryRow(ctx, getSQL, ref).Scan(&data, &mime)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", fmt.Errorf("blob %s: %w", ref, domain.ErrPhotoNotFound)
	}
	if err != nil {
		return nil, "", postgres.MapError(err, "blob", ref)
	}
	return data, mime, nil
}
