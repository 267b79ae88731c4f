package round

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
	"time"
)

var _ roundRepo = &roundRepoMock{}

type roundRepoMock struct {
	CreateOpenFunc        func(ctx context.Context, rd domain.Round) (bool, error)
	FindOpenByAnalystFunc func(ctx context.Context, analystID uuid.UUID) (*domain.Round, error)
	FinalizeFunc          func(ctx context.Context, roundID uuid.UUID, at time.Time) (bool, error)
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	InsertAnswersFunc     func(ctx context.Context, answers []domain.ItemAnswer) error
	ListFunc              func(ctx context.Context, f domain.RoundFilter) ([]domain.Round, error)
	LockForUpdateFunc     func(ctx context.Context, id uuid.UUID) (*domain.Round, error)
	SetGeneralNoteFunc    func(ctx context.Context, roundID uuid.UUID, note string) error
	UpdateAnswerFunc      func(ctx context.Context, roundID uuid.UUID, answerID uuid.UUID, status domain.AnswerStatus, observation *string, by uuid.UUID, at time.Time) error

	calls struct {
		CreateOpen []struct {
			Ctx context.Context
			Rd  domain.Round
		}
		FindOpenByAnalyst []struct {
			Ctx       context.Context
			AnalystID uuid.UUID
		}
		Finalize []struct {
			Ctx     context.Context
			RoundID uuid.UUID
			At      time.Time
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		InsertAnswers []struct {
			Ctx     context.Context
			Answers []domain.ItemAnswer
		}
		List []struct {
			Ctx context.Context
			F   domain.RoundFilter
		}
		LockForUpdate []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		SetGeneralNote []struct {
			Ctx     context.Context
			RoundID uuid.UUID
			Note    string
		}
		UpdateAnswer []struct {
			Ctx         context.Context
			RoundID     uuid.UUID
			AnswerID    uuid.UUID
			Status      domain.AnswerStatus
			Observation *string
			By          uuid.UUID
			At          time.Time
		}
	}
	lockCreateOpen        sync.RWMutex
	lockFindOpenByAnalyst sync.RWMutex
	lockFinalize          sync.RWMutex
	lockGetByID           sync.RWMutex
	lockInsertAnswers     sync.RWMutex
	lockList              sync.RWMutex
	lockLockForUpdate     sync.RWMutex
	lockSetGeneralNote    sync.RWMutex
	lockUpdateAnswer      sync.RWMutex
}

func (mock *roundRepoMock) CreateOpen(ctx context.Context, rd domain.Round) (bool, error) {
	if mock.CreateOpenFunc == nil {
		panic("roundRepoMock.CreateOpenFunc: method is nil but roundRepo.CreateOpen was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rd  domain.Round
	}{Ctx: ctx, Rd: rd}
	mock.lockCreateOpen.Lock()
	mock.calls.CreateOpen = append(mock.calls.CreateOpen, callInfo)
	mock.lockCreateOpen.Unlock()
	return mock.CreateOpenFunc(ctx, rd)
}

func (mock *roundRepoMock) CreateOpenCalls() []struct {
	Ctx context.Context
	Rd  domain.Round
} {
	mock.lockCreateOpen.RLock()
	calls := mock.calls.CreateOpen
	mock.lockCreateOpen.RUnlock()
	return calls
}

func (mock *roundRepoMock) FindOpenByAnalyst(ctx context.Context, analystID uuid.UUID) (*domain.Round, error) {
	if mock.FindOpenByAnalystFunc == nil {
		panic("roundRepoMock.FindOpenByAnalystFunc: method is nil but roundRepo.FindOpenByAnalyst was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AnalystID uuid.UUID
	}{Ctx: ctx, AnalystID: analystID}
	mock.lockFindOpenByAnalyst.Lock()
	mock.calls.FindOpenByAnalyst = append(mock.calls.FindOpenByAnalyst, callInfo)
	mock.lockFindOpenByAnalyst.Unlock()
	return mock.FindOpenByAnalystFunc(ctx, analystID)
}

func (mock *roundRepoMock) FindOpenByAnalystCalls() []struct {
	Ctx       context.Context
	AnalystID uuid.UUID
} {
	mock.lockFindOpenByAnalyst.RLock()
	calls := mock.calls.FindOpenByAnalyst
	mock.lockFindOpenByAnalyst.RUnlock()
	return calls
}

func (mock *roundRepoMock) Finalize(ctx context.Context, roundID uuid.UUID, at time.Time) (bool, error) {
	if mock.FinalizeFunc == nil {
		panic("roundRepoMock.FinalizeFunc: method is nil but roundRepo.Finalize was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoundID uuid.UUID
		At      time.Time
	}{Ctx: ctx, RoundID: roundID, At: at}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, callInfo)
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, roundID, at)
}

func (mock *roundRepoMock) FinalizeCalls() []struct {
	Ctx     context.Context
	RoundID uuid.UUID
	At      time.Time
} {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}

func (mock *roundRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	if mock.GetByIDFunc == nil {
		panic("roundRepoMock.GetByIDFunc: method is nil but roundRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *roundRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *roundRepoMock) InsertAnswers(ctx context.Context, answers []domain.ItemAnswer) error {
	if mock.InsertAnswersFunc == nil {
		panic("roundRepoMock.InsertAnswersFunc: method is nil but roundRepo.InsertAnswers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Answers []domain.ItemAnswer
	}{Ctx: ctx, Answers: answers}
	mock.lockInsertAnswers.Lock()
	mock.calls.InsertAnswers = append(mock.calls.InsertAnswers, callInfo)
	mock.lockInsertAnswers.Unlock()
	return mock.InsertAnswersFunc(ctx, answers)
}

func (mock *roundRepoMock) InsertAnswersCalls() []struct {
	Ctx     context.Context
	Answers []domain.ItemAnswer
} {
	mock.lockInsertAnswers.RLock()
	calls := mock.calls.InsertAnswers
	mock.lockInsertAnswers.RUnlock()
	return calls
}

func (mock *roundRepoMock) List(ctx context.Context, f domain.RoundFilter) ([]domain.Round, error) {
	if mock.ListFunc == nil {
		panic("roundRepoMock.ListFunc: method is nil but roundRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.RoundFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *roundRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.RoundFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *roundRepoMock) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.Round, error) {
	if mock.LockForUpdateFunc == nil {
		panic("roundRepoMock.LockForUpdateFunc: method is nil but roundRepo.LockForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockLockForUpdate.Lock()
	mock.calls.LockForUpdate = append(mock.calls.LockForUpdate, callInfo)
	mock.lockLockForUpdate.Unlock()
	return mock.LockForUpdateFunc(ctx, id)
}

func (mock *roundRepoMock) LockForUpdateCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockLockForUpdate.RLock()
	calls := mock.calls.LockForUpdate
	mock.lockLockForUpdate.RUnlock()
	return calls
}

func (mock *roundRepoMock) SetGeneralNote(ctx context.Context, roundID uuid.UUID, note string) error {
	if mock.SetGeneralNoteFunc == nil {
		panic("roundRepoMock.SetGeneralNoteFunc: method is nil but roundRepo.SetGeneralNote was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoundID uuid.UUID
		Note    string
	}{Ctx: ctx, RoundID: roundID, Note: note}
	mock.lockSetGeneralNote.Lock()
	mock.calls.SetGeneralNote = append(mock.calls.SetGeneralNote, callInfo)
	mock.lockSetGeneralNote.Unlock()
	return mock.SetGeneralNoteFunc(ctx, roundID, note)
}

func (mock *roundRepoMock) SetGeneralNoteCalls() []struct {
	Ctx     context.Context
	RoundID uuid.UUID
	Note    string
} {
	mock.lockSetGeneralNote.RLock()
	calls := mock.calls.SetGeneralNote
	mock.lockSetGeneralNote.RUnlock()
	return calls
}

func (mock *roundRepoMock) UpdateAnswer(ctx context.Context, roundID uuid.UUID, answerID uuid.UUID, status domain.AnswerStatus, observation *string, by uuid.UUID, at time.Time) error {
	if mock.UpdateAnswerFunc == nil {
		panic("roundRepoMock.UpdateAnswerFunc: method is nil but roundRepo.UpdateAnswer was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RoundID     uuid.UUID
		AnswerID    uuid.UUID
		Status      domain.AnswerStatus
		Observation *string
		By          uuid.UUID
		At          time.Time
	}{Ctx: ctx, RoundID: roundID, AnswerID: answerID, Status: status, Observation: observation, By: by, At: at}
	mock.lockUpdateAnswer.Lock()
	mock.calls.UpdateAnswer = append(mock.calls.UpdateAnswer, callInfo)
	mock.lockUpdateAnswer.Unlock()
	return mock.UpdateAnswerFunc(ctx, roundID, answerID, status, observation, by, at)
}

func (mock *roundRepoMock) UpdateAnswerCalls() []struct {
	Ctx         context.Context
	RoundID     uuid.UUID
	AnswerID    uuid.UUID
	Status      domain.AnswerStatus
	Observation *string
	By          uuid.UUID
	At          time.Time
} {
	mock.lockUpdateAnswer.RLock()
	calls := mock.calls.UpdateAnswer
	mock.lockUpdateAnswer.RUnlock()
	return calls
}
