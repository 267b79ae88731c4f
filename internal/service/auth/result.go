package auth

import (
	"time"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// LoginResult is returned by Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Session   domain.Session
}

// Actor returns the identity the new session carries.
func (r *LoginResult) Actor() domain.Actor {
	return r.Session.Actor()
}
