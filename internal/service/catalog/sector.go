package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// ListSectors returns every sector in checklist order.
func (s *Service) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	sectors, err := s.sectors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListSectors: %w", err)
	}
	return sectors, nil
}

// CreateSector adds a sector. A sector with the same order yields
// ErrAlreadyExists.
func (s *Service) CreateSector(ctx context.Context, input CreateSectorInput) (*domain.Sector, error) {
	actor, err := managerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sector := domain.Sector{
		ID:    uuid.New(),
		Name:  input.Name,
		Order: int(input.Order),
	}
	if input.CheckpointHint != "" {
		sector.CheckpointHint = &input.CheckpointHint
	}

	var created *domain.Sector
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.sectors.Create(txCtx, sector)
		if err != nil {
			return fmt.Errorf("create sector: %w", err)
		}

		return s.audit.Log(txCtx, domain.NewAuditEntry(actor, nil, domain.AuditActionSectorCreated,
			"Sector created: "+created.Name,
			domain.AuditMetadata{domain.MetaSectorOrder: created.Order}))
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "sector created",
		slog.String("sector_id", created.ID.String()),
		slog.Int("order", created.Order))

	return created, nil
}
