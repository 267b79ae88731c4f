package seeder

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ UserRepo = &UserRepoMock{}

type UserRepoMock struct {
	CreateFunc func(ctx context.Context, u domain.User) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   domain.User
		}
	}
	lockCreate sync.RWMutex
}

func (mock *UserRepoMock) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("UserRepoMock.CreateFunc: method is nil but UserRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *UserRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
