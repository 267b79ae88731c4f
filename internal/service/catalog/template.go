package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// ListTemplates returns every template version with its items.
func (s *Service) ListTemplates(ctx context.Context) ([]domain.ChecklistTemplate, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListTemplates: %w", err)
	}
	return templates, nil
}

// CreateTemplate stores a new version of a named template. Incomplete items
// are dropped; every remaining item must point at an existing sector.
func (s *Service) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.ChecklistTemplate, error) {
	actor, err := managerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tpl := domain.ChecklistTemplate{
		ID:     uuid.New(),
		Name:   strings.TrimSpace(input.Name),
		Active: input.Active,
		Items:  input.items(),
	}

	var created *domain.ChecklistTemplate
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		missing, err := s.sectors.MissingIDs(txCtx, sectorIDs(tpl.Items))
		if err != nil {
			return fmt.Errorf("check sectors: %w", err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("sector %s: %w", missing[0], domain.ErrSectorNotFound)
		}

		created, err = s.templates.Create(txCtx, tpl)
		if err != nil {
			return fmt.Errorf("create template: %w", err)
		}

		return s.audit.Log(txCtx, domain.NewAuditEntry(actor, nil, domain.AuditActionTemplateCreated,
			fmt.Sprintf("Checklist template created: %s v%d", created.Name, created.Version),
			domain.AuditMetadata{
				domain.MetaTemplateID: created.ID.String(),
				domain.MetaVersion:    created.Version,
			}))
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "template created",
		slog.String("template_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.Int("version", created.Version),
		slog.Int("items", len(created.Items)))

	return created, nil
}

// sectorIDs returns the distinct sector ids referenced by items.
func sectorIDs(items []domain.TemplateItem) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.SectorID]; ok {
			continue
		}
		seen[it.SectorID] = struct{}{}
		ids = append(ids, it.SectorID)
	}
	return ids
}
