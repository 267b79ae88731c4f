package auth

import (
	"strings"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// LoginInput holds parameters for username + role login.
// Password is only checked for accounts that have one.
type LoginInput struct {
	Username string
	Role     domain.Role
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 120 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be analyst or manager"})
	}

	if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
