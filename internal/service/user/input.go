package user

import (
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// ListByRoleInput holds parameters for listing users.
type ListByRoleInput struct {
	Role domain.Role
}

// Validate validates the list input.
func (i ListByRoleInput) Validate() error {
	if !i.Role.IsValid() {
		return domain.NewValidationError("role", "must be analyst or manager")
	}
	return nil
}
