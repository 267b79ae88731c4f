package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/rondaflow-backend/internal/auth"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// Login authenticates by username and role and opens a session.
// Unknown or inactive users yield ErrNotFound; a wrong password yields
// ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsernameRole(ctx, input.Username, input.Role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user not found for role %s: %w", input.Role, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}
	if !user.Active {
		return nil, fmt.Errorf("user not found for role %s: %w", input.Role, domain.ErrNotFound)
	}

	if user.HasPassword() && !auth.CheckPassword(*user.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	sessionID := auth.NewSessionID()
	token, expiresAt, err := s.tokens.Issue(sessionID, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	sess := domain.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("auth.Login save session: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.audit.Log(ctx, domain.NewAuditEntry(sess.Actor(), nil, domain.AuditActionLogin,
			"Login as "+string(user.Role), domain.AuditMetadata{domain.MetaRole: string(user.Role)}))
	})
	if err != nil {
		// A login that cannot be audited must not stay usable.
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, fmt.Errorf("auth.Login audit: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))

	return &LoginResult{Token: token, ExpiresAt: expiresAt, Session: sess}, nil
}
