package round

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// AnswerItem records ok or incident for one item of an open round.
func (s *Service) AnswerItem(ctx context.Context, input AnswerItemInput) (*domain.Round, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rd, err := s.lockOpen(txCtx, actor, input.RoundID)
		if err != nil {
			return err
		}

		item, err := s.answerOf(txCtx, rd, input.ItemAnswerID)
		if err != nil {
			return err
		}

		if err := s.rounds.UpdateAnswer(txCtx, rd.ID, item.ID, input.Status, input.Observation, actor.ID, s.now()); err != nil {
			return fmt.Errorf("update answer: %w", err)
		}

		itemID := item.ID.String()
		if err := s.logAudit(txCtx, actor, rd.ID, domain.AnswerAuditAction(input.Status),
			fmt.Sprintf("Item %q marked as %s", item.Title, strings.ToUpper(string(input.Status))),
			domain.AuditMetadata{domain.MetaItemID: itemID, domain.MetaStatus: string(input.Status)},
		); err != nil {
			return err
		}

		if input.Observation != nil && strings.TrimSpace(*input.Observation) != "" {
			if err := s.logAudit(txCtx, actor, rd.ID, domain.AuditActionItemObservationUpdated,
				fmt.Sprintf("Observation recorded on item %q", item.Title),
				domain.AuditMetadata{domain.MetaItemID: itemID},
			); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.metrics.RoundEvent(EventAnswered)
	s.log.InfoContext(ctx, "item answered",
		slog.String("round_id", input.RoundID.String()),
		slog.String("item_answer_id", input.ItemAnswerID.String()),
		slog.String("status", string(input.Status)))

	return s.rounds.GetByID(ctx, input.RoundID)
}

// SetGeneralNote replaces the round-level note. It is audited as
// item_observation_updated, matching how existing audit trails record it.
func (s *Service) SetGeneralNote(ctx context.Context, input SetGeneralNoteInput) (*domain.Round, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rd, err := s.lockOpen(txCtx, actor, input.RoundID)
		if err != nil {
			return err
		}

		if err := s.rounds.SetGeneralNote(txCtx, rd.ID, input.Note); err != nil {
			return fmt.Errorf("set general note: %w", err)
		}

		return s.logAudit(txCtx, actor, rd.ID, domain.AuditActionItemObservationUpdated,
			"General round note updated", nil)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "general note updated", slog.String("round_id", input.RoundID.String()))

	return s.rounds.GetByID(ctx, input.RoundID)
}
