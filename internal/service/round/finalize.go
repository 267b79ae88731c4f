package round

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// Finalize closes a round. Finalizing an already finished round returns it
// unchanged and records nothing.
func (s *Service) Finalize(ctx context.Context, roundID uuid.UUID) (*domain.Round, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var transitioned bool
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rd, err := s.rounds.LockForUpdate(txCtx, roundID)
		if err != nil {
			return fmt.Errorf("lock round: %w", err)
		}
		if !canAccess(actor, rd) {
			return domain.ErrForbidden
		}
		if !rd.IsOpen() {
			return nil
		}

		transitioned, err = s.rounds.Finalize(txCtx, rd.ID, s.now())
		if err != nil {
			return fmt.Errorf("finalize round: %w", err)
		}
		if !transitioned {
			return nil
		}

		return s.logAudit(txCtx, actor, rd.ID, domain.AuditActionRoundFinalized, "Round finalized", nil)
	})
	if txErr != nil {
		return nil, txErr
	}

	if transitioned {
		s.metrics.RoundEvent(EventFinalized)
		s.log.InfoContext(ctx, "round finalized", slog.String("round_id", roundID.String()))
	}

	return s.rounds.GetByID(ctx, roundID)
}
