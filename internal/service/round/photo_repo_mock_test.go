package round

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ photoRepo = &photoRepoMock{}

type photoRepoMock struct {
	CreateFunc func(ctx context.Context, p domain.Photo) (*domain.Photo, error)
	GetFunc    func(ctx context.Context, roundID uuid.UUID, photoID uuid.UUID) (*domain.Photo, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   domain.Photo
		}
		Get []struct {
			Ctx     context.Context
			RoundID uuid.UUID
			PhotoID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockGet    sync.RWMutex
}

func (mock *photoRepoMock) Create(ctx context.Context, p domain.Photo) (*domain.Photo, error) {
	if mock.CreateFunc == nil {
		panic("photoRepoMock.CreateFunc: method is nil but photoRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Photo
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *photoRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   domain.Photo
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *photoRepoMock) Get(ctx context.Context, roundID uuid.UUID, photoID uuid.UUID) (*domain.Photo, error) {
	if mock.GetFunc == nil {
		panic("photoRepoMock.GetFunc: method is nil but photoRepo.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoundID uuid.UUID
		PhotoID uuid.UUID
	}{Ctx: ctx, RoundID: roundID, PhotoID: photoID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, roundID, photoID)
}

func (mock *photoRepoMock) GetCalls() []struct {
	Ctx     context.Context
	RoundID uuid.UUID
	PhotoID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
