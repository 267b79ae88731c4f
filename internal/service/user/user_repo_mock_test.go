package user

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListByRoleFunc func(ctx context.Context, role domain.Role) ([]domain.User, error)

	calls struct {
		ListByRole []struct {
			Ctx  context.Context
			Role domain.Role
		}
	}
	lockListByRole sync.RWMutex
}

func (mock *userRepoMock) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if mock.ListByRoleFunc == nil {
		panic("userRepoMock.ListByRoleFunc: method is nil but userRepo.ListByRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Role domain.Role
	}{Ctx: ctx, Role: role}
	mock.lockListByRole.Lock()
	mock.calls.ListByRole = append(mock.calls.ListByRole, callInfo)
	mock.lockListByRole.Unlock()
	return mock.ListByRoleFunc(ctx, role)
}

func (mock *userRepoMock) ListByRoleCalls() []struct {
	Ctx  context.Context
	Role domain.Role
} {
	mock.lockListByRole.RLock()
	calls := mock.calls.ListByRole
	mock.lockListByRole.RUnlock()
	return calls
}
