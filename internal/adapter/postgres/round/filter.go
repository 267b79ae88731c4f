package round

import (
	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/rondaflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

const (
	// DefaultLimit is used when the filter limit is zero or negative.
	DefaultLimit = 200
	// MaxLimit caps the filter limit.
	MaxLimit = 200
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func listQuery(f domain.RoundFilter) squirrel.SelectBuilder {
	qb := postgres.Builder().
		Select(roundColumns).
		From("rounds").
		OrderBy("started_at DESC", "id DESC").
		Limit(uint64(clampLimit(f.Limit)))

	if f.AnalystID != nil {
		qb = qb.Where(squirrel.Eq{"analyst_id": *f.AnalystID})
	}
	if f.Status != nil {
		switch *f.Status {
		case domain.RoundStatusFinished:
			qb = qb.Where(squirrel.Eq{"status": []string{"finished", "cancelled"}})
		default:
			qb = qb.Where(squirrel.Eq{"status": string(*f.Status)})
		}
	}
	if f.StartedFrom != nil {
		qb = qb.Where(squirrel.GtOrEq{"started_at": *f.StartedFrom})
	}
	if f.StartedTo != nil {
		qb = qb.Where(squirrel.Lt{"started_at": *f.StartedTo})
	}
	return qb
}
