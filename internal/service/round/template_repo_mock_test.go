package round

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ templateRepo = &templateRepoMock{}

type templateRepoMock struct {
	GetActiveFunc     func(ctx context.Context) (*domain.ChecklistTemplate, error)
	GetActiveByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.ChecklistTemplate, error)

	calls struct {
		GetActive []struct {
			Ctx context.Context
		}
		GetActiveByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetActive     sync.RWMutex
	lockGetActiveByID sync.RWMutex
}

func (mock *templateRepoMock) GetActive(ctx context.Context) (*domain.ChecklistTemplate, error) {
	if mock.GetActiveFunc == nil {
		panic("templateRepoMock.GetActiveFunc: method is nil but templateRepo.GetActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetActive.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, callInfo)
	mock.lockGetActive.Unlock()
	return mock.GetActiveFunc(ctx)
}

func (mock *templateRepoMock) GetActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetActive.RLock()
	calls := mock.calls.GetActive
	mock.lockGetActive.RUnlock()
	return calls
}

func (mock *templateRepoMock) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.ChecklistTemplate, error) {
	if mock.GetActiveByIDFunc == nil {
		panic("templateRepoMock.GetActiveByIDFunc: method is nil but templateRepo.GetActiveByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetActiveByID.Lock()
	mock.calls.GetActiveByID = append(mock.calls.GetActiveByID, callInfo)
	mock.lockGetActiveByID.Unlock()
	return mock.GetActiveByIDFunc(ctx, id)
}

func (mock *templateRepoMock) GetActiveByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetActiveByID.RLock()
	calls := mock.calls.GetActiveByID
	mock.lockGetActiveByID.RUnlock()
	return calls
}
