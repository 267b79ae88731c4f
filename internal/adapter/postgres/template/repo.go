// Package template implements the ChecklistTemplate repository using PostgreSQL.
// Templates are immutable once created; a new version is a new row.
package template

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const templateColumns = `id, name, version, active, created_at`

const (
	getActiveSQL = `SELECT ` + templateColumns + `
		FROM checklist_templates
		WHERE active
		ORDER BY version DESC, created_at DESC
		LIMIT 1`

	getActiveByIDSQL = `SELECT ` + templateColumns + `
		FROM checklist_templates
		WHERE id = $1 AND active`

	listSQL = `SELECT ` + templateColumns + `
		FROM checklist_templates
		ORDER BY name, version DESC`

	itemsSQL = `SELECT ti.id, ti.template_id, ti.sector_id, s.name, s.sort_order,
			ti.title, ti.description, ti.photo_required_on_incident, ti.sort_order
		FROM template_items ti
		JOIN sectors s ON s.id = ti.sector_id
		WHERE ti.template_id = ANY($1)
		ORDER BY ti.template_id, s.sort_order, ti.sort_order`

	// Serializes version allocation per name within the surrounding transaction.
	lockNameSQL = `SELECT pg_advisory_xact_lock(hashtext(lower($1::text)))`

	createSQL = `INSERT INTO checklist_templates (id, name, version, active, created_at)
		SELECT $1::uuid, $2::text, coalesce(max(version), 0) + 1, $3::boolean, $4::timestamptz
		FROM checklist_templates
		WHERE lower(name) = lower($2::text)
		RETURNING ` + templateColumns

	createItemSQL = `INSERT INTO template_items
			(id, template_id, sector_id, title, description, photo_required_on_incident, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
)

// Repo provides template persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new template repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetActive returns the active template with the highest version, newest
// first on ties, with its items.
func (r *Repo) GetActive(ctx context.Context) (*domain.ChecklistTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tpl, err := scanTemplate(q.QueryRow(ctx, getActiveSQL))
	if err != nil {
		return nil, postgres.MapError(err, "active template", "latest")
	}
	if err := r.attachItems(ctx, q, []*domain.ChecklistTemplate{&tpl}); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// GetActiveByID returns the template only if it exists and is active.
func (r *Repo) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.ChecklistTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tpl, err := scanTemplate(q.QueryRow(ctx, getActiveByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "template", id)
	}
	if err := r.attachItems(ctx, q, []*domain.ChecklistTemplate{&tpl}); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// List returns every template ordered by name, then version descending.
func (r *Repo) List(ctx context.Context) ([]domain.ChecklistTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, postgres.MapError(err, "templates", "all")
	}
	defer rows.Close()

	templates := make([]domain.ChecklistTemplate, 0)
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, postgres.MapError(err, "templates", "all")
		}
		templates = append(templates, tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "templates", "all")
	}
	rows.Close()

	ptrs := make([]*domain.ChecklistTemplate, len(templates))
	for i := range templates {
		ptrs[i] = &templates[i]
	}
	if err := r.attachItems(ctx, q, ptrs); err != nil {
		return nil, err
	}
	return templates, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a template and its items. The version is allocated as
// max(version)+1 among templates sharing the name case-insensitively; the
// returned template carries it. Call inside a transaction so the name lock
// spans the whole insert.
func (r *Repo) Create(ctx context.Context, tpl domain.ChecklistTemplate) (*domain.ChecklistTemplate, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = time.Now().UTC()
	}

	if _, err := q.Exec(ctx, lockNameSQL, tpl.Name); err != nil {
		return nil, postgres.MapError(err, "template", tpl.Name)
	}

	created, err := scanTemplate(q.QueryRow(ctx, createSQL, tpl.ID, tpl.Name, tpl.Active, tpl.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "template", tpl.Name)
	}

	batch := &pgx.Batch{}
	for _, it := range tpl.Items {
		batch.Queue(createItemSQL,
			it.ID, created.ID, it.SectorID, it.Title, it.Description, it.PhotoRequiredOnIncident, it.Order,
		)
	}
	if err := postgres.ExecBatch(ctx, q, batch, "template item"); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, q, []*domain.ChecklistTemplate{&created}); err != nil {
		return nil, err
	}
	return &created, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) attachItems(ctx context.Context, q postgres.Querier, templates []*domain.ChecklistTemplate) error {
	if len(templates) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(templates))
	byID := make(map[uuid.UUID]*domain.ChecklistTemplate, len(templates))
	for i, t := range templates {
		ids[i] = t.ID
		byID[t.ID] = t
		t.Items = make([]domain.TemplateItem, 0)
	}

	rows, err := q.Query(ctx, itemsSQL, ids)
	if err != nil {
		return postgres.MapError(err, "template items", len(ids))
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.TemplateItem
		if err := rows.Scan(
			&it.ID, &it.TemplateID, &it.SectorID, &it.SectorName, &it.SectorOrder,
			&it.Title, &it.Description, &it.PhotoRequiredOnIncident, &it.Order,
		); err != nil {
			return postgres.MapError(err, "template items", len(ids))
		}
		t, ok := byID[it.TemplateID]
		if !ok {
			return fmt.Errorf("template items: unexpected template %s: %w", it.TemplateID, domain.ErrStorage)
		}
		t.Items = append(t.Items, it)
	}
	if err := rows.Err(); err != nil {
		return postgres.MapError(err, "template items", len(ids))
	}
	return nil
}

func scanTemplate(row pgx.Row) (domain.ChecklistTemplate, error) {
	var t domain.ChecklistTemplate
	if err := row.Scan(&t.ID, &t.Name, &t.Version, &t.Active, &t.CreatedAt); err != nil {
		return domain.ChecklistTemplate{}, err
	}
	return t, nil
}
