// Package round implements the round lifecycle: opening rounds, recording
// answers, notes, photos and locations, and finalizing.
package round

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/config"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer interfaces
// ---------------------------------------------------------------------------

type roundRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	FindOpenByAnalyst(ctx context.Context, analystID uuid.UUID) (*domain.Round, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	List(ctx context.Context, f domain.RoundFilter) ([]domain.Round, error)
	CreateOpen(ctx context.Context, rd domain.Round) (bool, error)
	InsertAnswers(ctx context.Context, answers []domain.ItemAnswer) error
	UpdateAnswer(ctx context.Context, roundID, answerID uuid.UUID, status domain.AnswerStatus, observation *string, by uuid.UUID, at time.Time) error
	SetGeneralNote(ctx context.Context, roundID uuid.UUID, note string) error
	Finalize(ctx context.Context, roundID uuid.UUID, at time.Time) (bool, error)
}

type templateRepo interface {
	GetActive(ctx context.Context) (*domain.ChecklistTemplate, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.ChecklistTemplate, error)
}

type userRepo interface {
	GetActiveAnalyst(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type photoRepo interface {
	Create(ctx context.Context, p domain.Photo) (*domain.Photo, error)
	Get(ctx context.Context, roundID, photoID uuid.UUID) (*domain.Photo, error)
}

type locationRepo interface {
	Create(ctx context.Context, p domain.LocationPing) (*domain.LocationPing, error)
}

// blobStore keeps photo bytes. The postgres backend joins the surrounding
// transaction; the filesystem backend does not.
type blobStore interface {
	Put(ctx context.Context, key string, data []byte, mime string) (string, error)
	Get(ctx context.Context, ref string) ([]byte, string, error)
}

// blobDeleter is implemented by blob stores that write outside the
// transaction. A blob they stored is deleted when the transaction fails.
type blobDeleter interface {
	Delete(ctx context.Context, ref string) error
}

type auditLog interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
	ListByRound(ctx context.Context, roundID uuid.UUID) ([]domain.AuditEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// metrics counts lifecycle events.
type metrics interface {
	RoundEvent(event string)
}

// Lifecycle event names reported to metrics.
const (
	EventStarted          = "started"
	EventAnswered         = "answered"
	EventPhotoAdded       = "photo_added"
	EventLocationRecorded = "location_recorded"
	EventFinalized        = "finalized"
)

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the round lifecycle.
type Service struct {
	log       *slog.Logger
	rounds    roundRepo
	templates templateRepo
	users     userRepo
	photos    photoRepo
	locations locationRepo
	blobs     blobStore
	audit     auditLog
	tx        txManager
	metrics   metrics
	cfg       config.TrackingConfig
	now       func() time.Time
}

// NewService creates a new round service.
func NewService(
	logger *slog.Logger,
	rounds roundRepo,
	templates templateRepo,
	users userRepo,
	photos photoRepo,
	locations locationRepo,
	blobs blobStore,
	audit auditLog,
	tx txManager,
	m metrics,
	cfg config.TrackingConfig,
) *Service {
	if m == nil {
		m = nopMetrics{}
	}
	return &Service{
		log:       logger.With("service", "round"),
		rounds:    rounds,
		templates: templates,
		users:     users,
		photos:    photos,
		locations: locations,
		blobs:     blobs,
		audit:     audit,
		tx:        tx,
		metrics:   m,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

type nopMetrics struct{}

func (nopMetrics) RoundEvent(string) {}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func actorFromCtx(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return actor, nil
}

// canAccess reports whether actor may read or mutate rd.
// Managers may touch any round; analysts only their own.
func canAccess(actor domain.Actor, rd *domain.Round) bool {
	return actor.IsManager() || rd.AnalystID == actor.ID
}

// lockOpen locks the round row for the surrounding transaction and checks
// access and that the round still accepts mutations.
func (s *Service) lockOpen(ctx context.Context, actor domain.Actor, roundID uuid.UUID) (*domain.Round, error) {
	rd, err := s.rounds.LockForUpdate(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("lock round: %w", err)
	}
	if !canAccess(actor, rd) {
		return nil, domain.ErrForbidden
	}
	if !rd.IsOpen() {
		return nil, domain.ErrRoundClosed
	}
	return rd, nil
}

// answerOf loads the answer with id from the locked round rd, or returns
// domain.ErrItemNotFound if it belongs to another round.
func (s *Service) answerOf(ctx context.Context, rd *domain.Round, id uuid.UUID) (*domain.ItemAnswer, error) {
	full, err := s.rounds.GetByID(ctx, rd.ID)
	if err != nil {
		return nil, fmt.Errorf("load round: %w", err)
	}
	a, ok := full.Answer(id)
	if !ok {
		return nil, fmt.Errorf("item answer %s: %w", id, domain.ErrItemNotFound)
	}
	return a, nil
}

func (s *Service) logAudit(ctx context.Context, actor domain.Actor, roundID uuid.UUID, action domain.AuditAction, details string, meta domain.AuditMetadata) error {
	if err := s.audit.Log(ctx, domain.NewAuditEntry(actor, &roundID, action, details, meta)); err != nil {
		return fmt.Errorf("audit %s: %w", action, err)
	}
	return nil
}
