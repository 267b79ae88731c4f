package round

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rondaflow-backend/internal/config"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/pkg/ctxutil"
)

//go:generate moq -out round_repo_mock_test.go -pkg round . roundRepo
//go:generate moq -out template_repo_mock_test.go -pkg round . templateRepo
//go:generate moq -out user_repo_mock_test.go -pkg round . userRepo
//go:generate moq -out photo_repo_mock_test.go -pkg round . photoRepo
//go:generate moq -out location_repo_mock_test.go -pkg round . locationRepo
//go:generate moq -out blob_store_mock_test.go -pkg round . blobStore
//go:generate moq -out audit_log_mock_test.go -pkg round . auditLog
//go:generate moq -out tx_manager_mock_test.go -pkg round . txManager
//go:generate moq -out metrics_mock_test.go -pkg round . metrics

// harness backs the repository mocks with an in-memory store so lifecycle
// tests can observe the state a sequence of operations leaves behind.
type harness struct {
	rounds    *roundRepoMock
	templates *templateRepoMock
	users     *userRepoMock
	photos    *photoRepoMock
	locations *locationRepoMock
	blobs     *blobStoreMock
	audit     *auditLogMock
	tx        *txManagerMock
	metrics   *metricsMock
	cfg       config.TrackingConfig

	mu       sync.Mutex
	stored   map[uuid.UUID]*domain.Round
	entries  []domain.AuditEntry
	blobData map[string][]byte
	blobMime map[string]string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		stored:   make(map[uuid.UUID]*domain.Round),
		blobData: make(map[string][]byte),
		blobMime: make(map[string]string),
		cfg:      config.TrackingConfig{Location: time.UTC},
	}

	h.rounds = &roundRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
			return h.get(id)
		},
		LockForUpdateFunc: func(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
			rd, err := h.get(id)
			if err != nil {
				return nil, err
			}
			rd.Answers, rd.GeneralPhotos, rd.Pings = nil, nil, nil
			return rd, nil
		},
		FindOpenByAnalystFunc: func(ctx context.Context, analystID uuid.UUID) (*domain.Round, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			for _, rd := range h.stored {
				if rd.AnalystID == analystID && rd.IsOpen() {
					return cloneRound(rd), nil
				}
			}
			return nil, fmt.Errorf("open round: %w", domain.ErrRoundNotFound)
		},
		ListFunc: func(ctx context.Context, f domain.RoundFilter) ([]domain.Round, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			out := make([]domain.Round, 0)
			for _, rd := range h.stored {
				if f.AnalystID == nil || rd.AnalystID == *f.AnalystID {
					out = append(out, *cloneRound(rd))
				}
			}
			return out, nil
		},
		CreateOpenFunc: func(ctx context.Context, rd domain.Round) (bool, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			for _, existing := range h.stored {
				if existing.AnalystID == rd.AnalystID && existing.IsOpen() {
					return false, nil
				}
			}
			rd.Answers = nil
			h.stored[rd.ID] = &rd
			return true, nil
		},
		InsertAnswersFunc: func(ctx context.Context, answers []domain.ItemAnswer) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			for _, a := range answers {
				rd := h.stored[a.RoundID]
				rd.Answers = append(rd.Answers, a)
			}
			return nil
		},
		UpdateAnswerFunc: func(ctx context.Context, roundID, answerID uuid.UUID, status domain.AnswerStatus, observation *string, by uuid.UUID, at time.Time) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			rd, ok := h.stored[roundID]
			if !ok {
				return domain.ErrRoundNotFound
			}
			a, ok := rd.Answer(answerID)
			if !ok {
				return domain.ErrItemNotFound
			}
			a.Status = status
			if observation != nil {
				a.Observation = *observation
			}
			a.AnsweredAt = &at
			a.AnsweredByUserID = &by
			return nil
		},
		SetGeneralNoteFunc: func(ctx context.Context, roundID uuid.UUID, note string) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.stored[roundID].GeneralNote = note
			return nil
		},
		FinalizeFunc: func(ctx context.Context, roundID uuid.UUID, at time.Time) (bool, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			rd := h.stored[roundID]
			if !rd.IsOpen() {
				return false, nil
			}
			rd.Status = domain.RoundStatusFinished
			if rd.FinishedAt == nil {
				rd.FinishedAt = &at
			}
			return true, nil
		},
	}

	h.templates = &templateRepoMock{
		GetActiveFunc: func(ctx context.Context) (*domain.ChecklistTemplate, error) {
			return nil, fmt.Errorf("active template: %w", domain.ErrNotFound)
		},
		GetActiveByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.ChecklistTemplate, error) {
			return nil, fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
		},
	}

	h.users = &userRepoMock{
		GetActiveAnalystFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return nil, fmt.Errorf("analyst %s: %w", id, domain.ErrNotFound)
		},
	}

	h.photos = &photoRepoMock{
		CreateFunc: func(ctx context.Context, p domain.Photo) (*domain.Photo, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			rd := h.stored[p.RoundID]
			if p.ItemAnswerID == nil {
				rd.GeneralPhotos = append(rd.GeneralPhotos, p)
			} else {
				a, _ := rd.Answer(*p.ItemAnswerID)
				a.Photos = append(a.Photos, p)
			}
			return &p, nil
		},
		GetFunc: func(ctx context.Context, roundID, photoID uuid.UUID) (*domain.Photo, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			rd, ok := h.stored[roundID]
			if !ok {
				return nil, domain.ErrPhotoNotFound
			}
			all := append([]domain.Photo{}, rd.GeneralPhotos...)
			for _, a := range rd.Answers {
				all = append(all, a.Photos...)
			}
			for _, p := range all {
				if p.ID == photoID {
					return &p, nil
				}
			}
			return nil, domain.ErrPhotoNotFound
		},
	}

	h.locations = &locationRepoMock{
		CreateFunc: func(ctx context.Context, p domain.LocationPing) (*domain.LocationPing, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			rd := h.stored[p.RoundID]
			rd.Pings = append(rd.Pings, p)
			return &p, nil
		},
	}

	h.blobs = &blobStoreMock{
		PutFunc: func(ctx context.Context, key string, data []byte, mime string) (string, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.blobData[key] = append([]byte(nil), data...)
			h.blobMime[key] = mime
			return key, nil
		},
		GetFunc: func(ctx context.Context, ref string) ([]byte, string, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			data, ok := h.blobData[ref]
			if !ok {
				return nil, "", domain.ErrPhotoNotFound
			}
			return data, h.blobMime[ref], nil
		},
	}

	h.audit = &auditLogMock{
		LogFunc: func(ctx context.Context, entry domain.AuditEntry) error {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.entries = append(h.entries, entry)
			return nil
		},
		ListByRoundFunc: func(ctx context.Context, roundID uuid.UUID) ([]domain.AuditEntry, error) {
			h.mu.Lock()
			defer h.mu.Unlock()
			out := make([]domain.AuditEntry, 0)
			for i := len(h.entries) - 1; i >= 0; i-- {
				if e := h.entries[i]; e.RoundID != nil && *e.RoundID == roundID {
					out = append(out, e)
				}
			}
			return out, nil
		},
	}

	h.tx = &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}

	h.metrics = &metricsMock{RoundEventFunc: func(event string) {}}

	return h
}

func (h *harness) service() *Service {
	return NewService(slog.Default(), h.rounds, h.templates, h.users, h.photos, h.locations,
		h.blobs, h.audit, h.tx, h.metrics, h.cfg)
}

func (h *harness) get(id uuid.UUID) (*domain.Round, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rd, ok := h.stored[id]
	if !ok {
		return nil, fmt.Errorf("round %s: %w", id, domain.ErrRoundNotFound)
	}
	return cloneRound(rd), nil
}

// withTemplate makes tpl the active template.
func (h *harness) withTemplate(tpl *domain.ChecklistTemplate) {
	h.templates.GetActiveFunc = func(ctx context.Context) (*domain.ChecklistTemplate, error) {
		return tpl, nil
	}
	h.templates.GetActiveByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.ChecklistTemplate, error) {
		if id != tpl.ID {
			return nil, fmt.Errorf("template %s: %w", id, domain.ErrNotFound)
		}
		return tpl, nil
	}
}

// seedOpen stores an open round for analyst with n pending answers.
func (h *harness) seedOpen(analyst domain.Actor, n int) *domain.Round {
	tpl := testTemplate(1, n)
	rd := &domain.Round{
		ID:              uuid.New(),
		TemplateID:      tpl.ID,
		TemplateName:    tpl.Name,
		TemplateVersion: tpl.Version,
		Status:          domain.RoundStatusOpen,
		AnalystID:       analyst.ID,
		AnalystName:     analyst.Name,
		StartedAt:       time.Now().UTC(),
	}
	rd.Answers = domain.NewRoundAnswers(rd.ID, tpl.Items)
	h.mu.Lock()
	h.stored[rd.ID] = rd
	h.mu.Unlock()
	return cloneRound(rd)
}

func (h *harness) auditActions() []domain.AuditAction {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]domain.AuditAction, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Action
	}
	return out
}

func cloneRound(rd *domain.Round) *domain.Round {
	c := *rd
	c.Answers = make([]domain.ItemAnswer, len(rd.Answers))
	for i, a := range rd.Answers {
		a.Photos = append([]domain.Photo{}, a.Photos...)
		c.Answers[i] = a
	}
	c.GeneralPhotos = append([]domain.Photo{}, rd.GeneralPhotos...)
	c.Pings = append([]domain.LocationPing{}, rd.Pings...)
	c.PlannedSectors = domain.DerivePlannedSectors(c.Answers)
	return &c
}

// testTemplate builds an active template with itemsPerSector items in each of
// sectors sectors.
func testTemplate(sectors, itemsPerSector int) *domain.ChecklistTemplate {
	tpl := &domain.ChecklistTemplate{
		ID:      uuid.New(),
		Name:    "Daily round",
		Version: 1,
		Active:  true,
	}
	order := 0
	for s := 1; s <= sectors; s++ {
		sectorID := uuid.New()
		for i := 0; i < itemsPerSector; i++ {
			order++
			tpl.Items = append(tpl.Items, domain.TemplateItem{
				ID:          uuid.New(),
				TemplateID:  tpl.ID,
				SectorID:    sectorID,
				SectorName:  fmt.Sprintf("Sector %d", s),
				SectorOrder: s,
				Title:       fmt.Sprintf("Item %d", order),
				Description: "Check it",
				Order:       order,
			})
		}
	}
	return tpl
}

func analystActor() domain.Actor {
	return domain.Actor{ID: uuid.New(), Name: "Ana", Role: domain.RoleAnalyst}
}

func managerActor() domain.Actor {
	return domain.Actor{ID: uuid.New(), Name: "Bruno", Role: domain.RoleManager}
}

func ctxAs(actor domain.Actor) context.Context {
	return ctxutil.WithActor(context.Background(), actor)
}

func ptr[T any](v T) *T { return &v }
