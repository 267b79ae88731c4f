// Package dashboard builds the manager's read-side view: round summaries,
// today's KPIs and the latest audit activity.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/rondaflow-backend/internal/config"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/pkg/ctxutil"
)

const (
	// RecentRounds is how many rounds the dashboard summarizes.
	RecentRounds = 200
	// RecentAudit is how many audit entries the dashboard shows.
	RecentAudit = 50
)

type roundLister interface {
	List(ctx context.Context, f domain.RoundFilter) ([]domain.Round, error)
}

type auditReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// Service implements dashboard reads.
type Service struct {
	log    *slog.Logger
	rounds roundLister
	audit  auditReader
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a new dashboard service instance. Calendar days are
// evaluated in cfg.Location.
func NewService(logger *slog.Logger, rounds roundLister, audit auditReader, cfg config.TrackingConfig) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:    logger.With("service", "dashboard"),
		rounds: rounds,
		audit:  audit,
		loc:    loc,
		now:    time.Now,
	}
}

func managerFromCtx(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if !actor.IsManager() {
		return domain.Actor{}, domain.ErrForbidden
	}
	return actor, nil
}
