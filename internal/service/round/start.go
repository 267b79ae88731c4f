package round

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// StartOrContinue returns the calling analyst's open round, opening one on the
// active template if none exists. Concurrent calls converge on one round.
func (s *Service) StartOrContinue(ctx context.Context) (*domain.Round, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsAnalyst() {
		return nil, domain.ErrForbidden
	}

	existing, err := s.rounds.FindOpenByAnalyst(ctx, actor.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find open round: %w", err)
	}

	tpl, err := s.templates.GetActive(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoActiveTemplate
		}
		return nil, fmt.Errorf("get active template: %w", err)
	}

	return s.open(ctx, actor, actor.ID, actor.Name, tpl)
}

// CreateForAnalyst lets a manager open a round for an analyst on a specific
// active template. An analyst's existing open round is returned unchanged.
func (s *Service) CreateForAnalyst(ctx context.Context, input CreateForAnalystInput) (*domain.Round, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if !actor.IsManager() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tpl, err := s.templates.GetActiveByID(ctx, input.TemplateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("template %s: %w", input.TemplateID, domain.ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	analyst, err := s.users.GetActiveAnalyst(ctx, input.AnalystID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("analyst %s: %w", input.AnalystID, domain.ErrAnalystNotFound)
		}
		return nil, fmt.Errorf("get analyst: %w", err)
	}

	existing, err := s.rounds.FindOpenByAnalyst(ctx, analyst.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find open round: %w", err)
	}

	return s.open(ctx, actor, analyst.ID, analyst.Name, tpl)
}

// open inserts a round with its pending answers and the round_started audit
// entry. If another request opened a round for the analyst first, that round
// is returned instead.
func (s *Service) open(ctx context.Context, actor domain.Actor, analystID uuid.UUID, analystName string, tpl *domain.ChecklistTemplate) (*domain.Round, error) {
	rd := domain.Round{
		ID:              uuid.New(),
		TemplateID:      tpl.ID,
		TemplateName:    tpl.Name,
		TemplateVersion: tpl.Version,
		Status:          domain.RoundStatusOpen,
		AnalystID:       analystID,
		AnalystName:     analystName,
		StartedAt:       s.now(),
	}

	byManager := actor.ID != analystID
	details := "Round started"
	meta := domain.AuditMetadata{domain.MetaTemplateID: tpl.ID.String()}
	if byManager {
		details = "Round created by manager for analyst " + analystName
		meta[domain.MetaCreatedByManager] = true
	}

	var created bool
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ok, err := s.rounds.CreateOpen(txCtx, rd)
		if err != nil {
			return fmt.Errorf("create round: %w", err)
		}
		if !ok {
			return nil
		}
		created = true

		if answers := domain.NewRoundAnswers(rd.ID, tpl.Items); len(answers) > 0 {
			if err := s.rounds.InsertAnswers(txCtx, answers); err != nil {
				return fmt.Errorf("seed answers: %w", err)
			}
		}

		return s.logAudit(txCtx, actor, rd.ID, domain.AuditActionRoundStarted, details, meta)
	})
	if txErr != nil {
		return nil, txErr
	}

	if !created {
		winner, err := s.rounds.FindOpenByAnalyst(ctx, analystID)
		if err != nil {
			return nil, fmt.Errorf("reload open round: %w", err)
		}
		return winner, nil
	}

	s.metrics.RoundEvent(EventStarted)
	s.log.InfoContext(ctx, "round started",
		slog.String("round_id", rd.ID.String()),
		slog.String("analyst_id", analystID.String()),
		slog.String("template_id", tpl.ID.String()),
		slog.Bool("by_manager", byManager))

	return s.rounds.GetByID(ctx, rd.ID)
}
