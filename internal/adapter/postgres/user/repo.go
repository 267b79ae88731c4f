// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const userColumns = `id, name, username, role, active, password_hash, created_at`

const (
	getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	findByUsernameRoleSQL = `SELECT ` + userColumns + `
		FROM users
		WHERE lower(username) = lower($1) AND role = $2`

	getActiveAnalystSQL = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND role = 'analyst' AND active`

	listByRoleSQL = `SELECT ` + userColumns + `
		FROM users
		WHERE role = $1 AND active
		ORDER BY name, username`

	createSQL = `INSERT INTO users (id, name, username, role, active, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// FindByUsernameRole looks a user up by case-insensitive username and role.
// Inactive users are returned too; the caller decides what to do with them.
func (r *Repo) FindByUsernameRole(ctx context.Context, username string, role domain.Role) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, findByUsernameRoleSQL, username, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return &u, nil
}

// GetActiveAnalyst returns the user only if it is an active analyst.
func (r *Repo) GetActiveAnalyst(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getActiveAnalystSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "analyst", id)
	}
	return &u, nil
}

// ListByRole returns active users of the given role ordered by name.
func (r *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByRoleSQL, string(role))
	if err != nil {
		return nil, postgres.MapError(err, "users", role)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "users", role)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "users", role)
	}
	return users, nil
}

// Create inserts a new user and returns the persisted row.
// A duplicate (username, role) pair yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	got, err := scanUser(q.QueryRow(ctx, createSQL,
		u.ID, u.Name, u.Username, string(u.Role), u.Active, u.PasswordHash, u.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return &got, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Username, &role, &u.Active, &u.PasswordHash, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}
