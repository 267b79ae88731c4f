package round

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// RecordLocation appends a location ping to an open round. Simulated pings are
// accepted only when tracking.allow_simulated is set.
func (s *Service) RecordLocation(ctx context.Context, input RecordLocationInput) (*domain.LocationPing, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	source := input.Source
	if source == "" {
		source = domain.LocationSourceManual
	}
	if source == domain.LocationSourceSimulated && !s.cfg.AllowSimulated {
		return nil, domain.ErrSimulatedDisabled
	}

	var created *domain.LocationPing
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rd, err := s.lockOpen(txCtx, actor, input.RoundID)
		if err != nil {
			return err
		}

		created, err = s.locations.Create(txCtx, domain.LocationPing{
			ID:             uuid.New(),
			RoundID:        rd.ID,
			Latitude:       input.Latitude,
			Longitude:      input.Longitude,
			AccuracyMeters: input.AccuracyMeters,
			CollectedAt:    s.now(),
			Source:         source,
		})
		if err != nil {
			return fmt.Errorf("create location ping: %w", err)
		}

		return s.logAudit(txCtx, actor, rd.ID, domain.AuditActionLocationRecorded,
			fmt.Sprintf("Location point recorded (%s)", source),
			domain.AuditMetadata{
				domain.MetaLatitude:  input.Latitude,
				domain.MetaLongitude: input.Longitude,
				domain.MetaSource:    string(source),
			})
	})
	if txErr != nil {
		return nil, txErr
	}

	s.metrics.RoundEvent(EventLocationRecorded)
	s.log.InfoContext(ctx, "location recorded",
		slog.String("round_id", input.RoundID.String()),
		slog.String("source", string(source)))

	return created, nil
}
