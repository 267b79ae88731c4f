// Package user lists the analysts and managers known to the system.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// Service implements user directory operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
