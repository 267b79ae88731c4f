package rest

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/service/user"
	"sync"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ListByRoleFunc func(ctx context.Context, input user.ListByRoleInput) ([]domain.User, error)

	calls struct {
		ListByRole []struct {
			Ctx   context.Context
			Input user.ListByRoleInput
		}
	}
	lockListByRole sync.RWMutex
}

func (mock *userServiceMock) ListByRole(ctx context.Context, input user.ListByRoleInput) ([]domain.User, error) {
	if mock.ListByRoleFunc == nil {
		panic("userServiceMock.ListByRoleFunc: method is nil but userService.ListByRole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ListByRoleInput
	}{Ctx: ctx, Input: input}
	mock.lockListByRole.Lock()
	mock.calls.ListByRole = append(mock.calls.ListByRole, callInfo)
	mock.lockListByRole.Unlock()
	return mock.ListByRoleFunc(ctx, input)
}

func (mock *userServiceMock) ListByRoleCalls() []struct {
	Ctx   context.Context
	Input user.ListByRoleInput
} {
	mock.lockListByRole.RLock()
	calls := mock.calls.ListByRole
	mock.lockListByRole.RUnlock()
	return calls
}
