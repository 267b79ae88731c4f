package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/pkg/ctxutil"
)

// ListByRole returns active users of a role ordered by name. Managers may list
// any role; analysts only their own.
func (s *Service) ListByRole(ctx context.Context, input ListByRoleInput) ([]domain.User, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !actor.IsManager() && input.Role != actor.Role {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.ListByRole(ctx, input.Role)
	if err != nil {
		return nil, fmt.Errorf("user.ListByRole: %w", err)
	}
	return users, nil
}
