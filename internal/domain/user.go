package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an analyst or a manager.
type User struct {
	ID           uuid.UUID
	Name         string
	Username     string
	Role         Role
	Active       bool
	PasswordHash *string
	CreatedAt    time.Time
}

// HasPassword reports whether login for this user requires a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Actor is the resolved identity behind a request.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role Role
}

func (a Actor) IsManager() bool { return a.Role == RoleManager }
func (a Actor) IsAnalyst() bool { return a.Role == RoleAnalyst }

// Session is a server-side login session. ID doubles as the token jti.
type Session struct {
	ID        string
	UserID    uuid.UUID
	Name      string
	Username  string
	Role      Role
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Actor returns the identity carried by the session.
func (s *Session) Actor() Actor {
	return Actor{ID: s.UserID, Name: s.Name, Role: s.Role}
}
