package round

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/gps"
)

const (
	defaultListLimit = 200
	maxListLimit     = 200
)

// Get returns a round with its audit trail.
func (s *Service) Get(ctx context.Context, roundID uuid.UUID) (*Detail, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rd, err := s.readable(ctx, actor, roundID)
	if err != nil {
		return nil, err
	}

	entries, err := s.audit.ListByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}

	return &Detail{Round: rd, Audit: entries}, nil
}

// List returns rounds newest first. Analysts only ever see their own rounds,
// whatever AnalystID they ask for.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Round, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.RoundFilter{
		AnalystID: input.AnalystID,
		Status:    input.Status,
		Limit:     clampLimit(input.Limit, 1, maxListLimit, defaultListLimit),
	}
	if actor.IsAnalyst() {
		filter.AnalystID = &actor.ID
	}

	rounds, err := s.rounds.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return rounds, nil
}

// Route returns the schematic projection of the round's pings.
func (s *Service) Route(ctx context.Context, roundID uuid.UUID) (gps.Route, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return gps.Route{}, err
	}

	rd, err := s.readable(ctx, actor, roundID)
	if err != nil {
		return gps.Route{}, err
	}
	return gps.Schematic(rd.Pings), nil
}

// readable loads a round the actor is allowed to see.
func (s *Service) readable(ctx context.Context, actor domain.Actor, roundID uuid.UUID) (*domain.Round, error) {
	rd, err := s.rounds.GetByID(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("get round: %w", err)
	}
	if !canAccess(actor, rd) {
		return nil, domain.ErrForbidden
	}
	return rd, nil
}

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
