// Package round implements the Round repository using PostgreSQL.
// A round is read as a full aggregate: answers, photos and pings included.
package round

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

const roundColumns = `id, template_id, template_name, template_version, status,
	analyst_id, analyst_name, started_at, finished_at, general_note`

const (
	getByIDSQL = `SELECT ` + roundColumns + ` FROM rounds WHERE id = $1`

	lockSQL = `SELECT ` + roundColumns + ` FROM rounds WHERE id = $1 FOR UPDATE`

	findOpenByAnalystSQL = `SELECT id FROM rounds WHERE analyst_id = $1 AND status = 'open'`

	createOpenSQL = `INSERT INTO rounds
			(id, template_id, template_name, template_version, status, analyst_id, analyst_name, started_at, general_note)
		VALUES ($1, $2, $3, $4, 'open', $5, $6, $7, '')
		ON CONFLICT (analyst_id) WHERE status = 'open' DO NOTHING
		RETURNING id`

	insertAnswerSQL = `INSERT INTO item_answers
			(id, round_id, template_item_id, sector_id, sector_name, sector_order, title, description,
			 item_order, photo_required_on_incident, status, observation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	updateAnswerSQL = `UPDATE item_answers
		SET status = $3,
			observation = coalesce($4, observation),
			answered_at = $5,
			answered_by = $6
		WHERE id = $1 AND round_id = $2`

	setGeneralNoteSQL = `UPDATE rounds SET general_note = $2 WHERE id = $1`

	finalizeSQL = `UPDATE rounds
		SET status = 'finished', finished_at = coalesce(finished_at, $2)
		WHERE id = $1 AND status = 'open'
		RETURNING id`

	answersSQL = `SELECT id, round_id, template_item_id, sector_id, sector_name, sector_order, title, description,
			item_order, photo_required_on_incident, status, observation, answered_at, answered_by
		FROM item_answers
		WHERE round_id = ANY($1)
		ORDER BY round_id, sector_order, item_order`

	photosSQL = `SELECT id, round_id, item_answer_id, file_name, mime_type, size_bytes, storage_key, captured_at, uploaded_by
		FROM photos
		WHERE round_id = ANY($1)
		ORDER BY captured_at, id`

	pingsSQL = `SELECT id, round_id, latitude, longitude, accuracy_meters, collected_at, source
		FROM location_pings
		WHERE round_id = ANY($1)
		ORDER BY collected_at, id`
)

// Repo provides round persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new round repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the full round aggregate.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rd, err := scanRound(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapRoundError(err, id)
	}
	if err := loadChildren(ctx, q, []*domain.Round{&rd}); err != nil {
		return nil, err
	}
	return &rd, nil
}

// FindOpenByAnalyst returns the analyst's open round, or domain.ErrRoundNotFound.
func (r *Repo) FindOpenByAnalyst(ctx context.Context, analystID uuid.UUID) (*domain.Round, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id uuid.UUID
	if err := q.QueryRow(ctx, findOpenByAnalystSQL, analystID).Scan(&id); err != nil {
		return nil, mapRoundError(err, analystID)
	}
	return r.GetByID(ctx, id)
}

// LockForUpdate locks the round row for the rest of the surrounding
// transaction and returns the round header without children.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rd, err := scanRound(q.QueryRow(ctx, lockSQL, id))
	if err != nil {
		return nil, mapRoundError(err, id)
	}
	return &rd, nil
}

// List returns round aggregates matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.RoundFilter) ([]domain.Round, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := listQuery(f).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rounds query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "rounds", "list")
	}
	rounds, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Round, error) {
		return scanRound(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "rounds", "list")
	}

	ptrs := make([]*domain.Round, len(rounds))
	for i := range rounds {
		ptrs[i] = &rounds[i]
	}
	if err := loadChildren(ctx, q, ptrs); err != nil {
		return nil, err
	}
	return rounds, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateOpen inserts rd as an open round. It reports false, without error,
// when the analyst already has an open round.
func (r *Repo) CreateOpen(ctx context.Context, rd domain.Round) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if rd.StartedAt.IsZero() {
		rd.StartedAt = time.Now().UTC()
	}

	var id uuid.UUID
	err := q.QueryRow(ctx, createOpenSQL,
		rd.ID, rd.TemplateID, rd.TemplateName, rd.TemplateVersion, rd.AnalystID, rd.AnalystName, rd.StartedAt,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "round", rd.ID)
	}
	return true, nil
}

// InsertAnswers seeds the round's answers in one batch.
func (r *Repo) InsertAnswers(ctx context.Context, answers []domain.ItemAnswer) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, a := range answers {
		batch.Queue(insertAnswerSQL,
			a.ID, a.RoundID, a.TemplateItemID, a.SectorID, a.SectorName, a.SectorOrder, a.Title, a.Description,
			a.ItemOrder, a.PhotoRequiredOnIncident, string(a.Status), a.Observation,
		)
	}
	return postgres.ExecBatch(ctx, q, batch, "item answer")
}

// UpdateAnswer records an answer. A nil observation keeps the stored one.
// Returns domain.ErrItemNotFound if the answer is not part of the round.
func (r *Repo) UpdateAnswer(ctx context.Context, roundID, answerID uuid.UUID, status domain.AnswerStatus, observation *string, by uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateAnswerSQL, answerID, roundID, string(status), observation, at, by)
	if err != nil {
		return postgres.MapError(err, "item answer", answerID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item answer %s: %w", answerID, domain.ErrItemNotFound)
	}
	return nil
}

// SetGeneralNote replaces the round's general note.
func (r *Repo) SetGeneralNote(ctx context.Context, roundID uuid.UUID, note string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setGeneralNoteSQL, roundID, note)
	if err != nil {
		return postgres.MapError(err, "round", roundID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("round %s: %w", roundID, domain.ErrRoundNotFound)
	}
	return nil
}

// Finalize closes an open round. It reports whether this call performed the
// transition; finishing an already finished round is a no-op.
func (r *Repo) Finalize(ctx context.Context, roundID uuid.UUID, at time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id uuid.UUID
	err := q.QueryRow(ctx, finalizeSQL, roundID, at).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, postgres.MapError(err, "round", roundID)
	}
	return true, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mapRoundError(err error, id uuid.UUID) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("round %s: %w", id, domain.ErrRoundNotFound)
	}
	return postgres.MapError(err, "round", id)
}

func scanRound(row pgx.Row) (domain.Round, error) {
	var (
		rd     domain.Round
		status string
	)
	if err := row.Scan(
		&rd.ID, &rd.TemplateID, &rd.TemplateName, &rd.TemplateVersion, &status,
		&rd.AnalystID, &rd.AnalystName, &rd.StartedAt, &rd.FinishedAt, &rd.GeneralNote,
	); err != nil {
		return domain.Round{}, err
	}
	rd.Status = domain.NormalizeRoundStatus(status)
	return rd, nil
}

// loadChildren fills answers, photos, pings and planned sectors for rounds
// using one query per child table.
func loadChildren(ctx context.Context, q postgres.Querier, rounds []*domain.Round) error {
	if len(rounds) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(rounds))
	byID := make(map[uuid.UUID]*domain.Round, len(rounds))
	for i, rd := range rounds {
		ids[i] = rd.ID
		byID[rd.ID] = rd
		rd.Answers = make([]domain.ItemAnswer, 0)
		rd.GeneralPhotos = make([]domain.Photo, 0)
		rd.Pings = make([]domain.LocationPing, 0)
	}

	if err := loadAnswers(ctx, q, ids, byID); err != nil {
		return err
	}
	if err := loadPhotos(ctx, q, ids, byID); err != nil {
		return err
	}
	if err := loadPings(ctx, q, ids, byID); err != nil {
		return err
	}

	for _, rd := range rounds {
		rd.PlannedSectors = domain.DerivePlannedSectors(rd.Answers)
	}
	return nil
}

func loadAnswers(ctx context.Context, q postgres.Querier, ids []uuid.UUID, byID map[uuid.UUID]*domain.Round) error {
	rows, err := q.Query(ctx, answersSQL, ids)
	if err != nil {
		return postgres.MapError(err, "item answers", len(ids))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a      domain.ItemAnswer
			status string
		)
		if err := rows.Scan(
			&a.ID, &a.RoundID, &a.TemplateItemID, &a.SectorID, &a.SectorName, &a.SectorOrder, &a.Title, &a.Description,
			&a.ItemOrder, &a.PhotoRequiredOnIncident, &status, &a.Observation, &a.AnsweredAt, &a.AnsweredByUserID,
		); err != nil {
			return postgres.MapError(err, "item answers", len(ids))
		}
		a.Status = domain.AnswerStatus(status)
		a.Photos = make([]domain.Photo, 0)
		if rd, ok := byID[a.RoundID]; ok {
			rd.Answers = append(rd.Answers, a)
		}
	}
	return postgres.MapError(rows.Err(), "item answers", len(ids))
}

func loadPhotos(ctx context.Context, q postgres.Querier, ids []uuid.UUID, byID map[uuid.UUID]*domain.Round) error {
	rows, err := q.Query(ctx, photosSQL, ids)
	if err != nil {
		return postgres.MapError(err, "photos", len(ids))
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Photo
		if err := rows.Scan(
			&p.ID, &p.RoundID, &p.ItemAnswerID, &p.FileName, &p.MimeType, &p.SizeBytes, &p.StorageKey, &p.CapturedAt, &p.UploadedByUserID,
		); err != nil {
			return postgres.MapError(err, "photos", len(ids))
		}
		rd, ok := byID[p.RoundID]
		if !ok {
			continue
		}
		if p.ItemAnswerID == nil {
			rd.GeneralPhotos = append(rd.GeneralPhotos, p)
			continue
		}
		if a, ok := rd.Answer(*p.ItemAnswerID); ok {
			a.Photos = append(a.Photos, p)
		}
	}
	return postgres.MapError(rows.Err(), "photos", len(ids))
}

func loadPings(ctx context.Context, q postgres.Querier, ids []uuid.UUID, byID map[uuid.UUID]*domain.Round) error {
	rows, err := q.Query(ctx, pingsSQL, ids)
	if err != nil {
		return postgres.MapError(err, "location pings", len(ids))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p      domain.LocationPing
			source string
		)
		if err := rows.Scan(&p.ID, &p.RoundID, &p.Latitude, &p.Longitude, &p.AccuracyMeters, &p.CollectedAt, &source); err != nil {
			return postgres.MapError(err, "location pings", len(ids))
		}
		p.Source = domain.LocationSource(source)
		if rd, ok := byID[p.RoundID]; ok {
			rd.Pings = append(rd.Pings, p)
		}
	}
	return postgres.MapError(rows.Err(), "location pings", len(ids))
}
