package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/pkg/ctxutil"
)

// Logout deletes the session behind token and audits it.
// Returns ErrUnauthorized if no actor is found in context or the token is invalid.
func (s *Service) Logout(ctx context.Context, token string) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	claims, err := s.tokens.Validate(token)
	if err != nil || claims.UserID != actor.ID {
		return domain.ErrUnauthorized
	}

	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("auth.Logout delete session: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.audit.Log(ctx, domain.NewAuditEntry(actor, nil, domain.AuditActionLogout,
			"Logout", domain.AuditMetadata{domain.MetaRole: string(actor.Role)}))
	})
	if err != nil {
		return fmt.Errorf("auth.Logout audit: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", actor.ID.String()))
	return nil
}

// ResolveActor validates a session token and returns the identity behind it.
// Returns ErrUnauthorized if the token is invalid, or the session was revoked
// or has expired.
func (s *Service) ResolveActor(ctx context.Context, token string) (domain.Actor, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Actor{}, domain.ErrUnauthorized
		}
		return domain.Actor{}, fmt.Errorf("auth.ResolveActor: %w", err)
	}
	if sess.UserID != claims.UserID || sess.Role != claims.Role {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	return sess.Actor(), nil
}
