// Package catalog manages sectors and versioned checklist templates.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/pkg/ctxutil"
)

type sectorRepo interface {
	List(ctx context.Context) ([]domain.Sector, error)
	MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, s domain.Sector) (*domain.Sector, error)
}

type templateRepo interface {
	List(ctx context.Context) ([]domain.ChecklistTemplate, error)
	Create(ctx context.Context, tpl domain.ChecklistTemplate) (*domain.ChecklistTemplate, error)
}

type auditLog interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog operations.
type Service struct {
	log       *slog.Logger
	sectors   sectorRepo
	templates templateRepo
	audit     auditLog
	tx        txManager
}

// NewService creates a new catalog service instance.
func NewService(
	logger *slog.Logger,
	sectors sectorRepo,
	templates templateRepo,
	audit auditLog,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "catalog"),
		sectors:   sectors,
		templates: templates,
		audit:     audit,
		tx:        tx,
	}
}

func actorFromCtx(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return actor, nil
}

func managerFromCtx(ctx context.Context) (domain.Actor, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return domain.Actor{}, err
	}
	if !actor.IsManager() {
		return domain.Actor{}, domain.ErrForbidden
	}
	return actor, nil
}
