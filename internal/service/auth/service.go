package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/auth"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	FindByUsernameRole(ctx context.Context, username string, role domain.Role) (*domain.User, error)
}

// sessionStore defines the session persistence needed by auth service.
type sessionStore interface {
	Save(ctx context.Context, s domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// sessionManager signs and validates session tokens.
type sessionManager interface {
	Issue(sessionID string, userID uuid.UUID, role domain.Role) (string, time.Time, error)
	Validate(token string) (auth.Claims, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements login, logout and token resolution.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionStore
	tokens   sessionManager
	audit    auditLogger
	tx       txManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionStore,
	tokens sessionManager,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		audit:    audit,
		tx:       tx,
	}
}
