package middleware

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ tokenResolver = &tokenResolverMock{}

type tokenResolverMock struct {
	ResolveActorFunc func(ctx context.Context, token string) (domain.Actor, error)

	calls struct {
		ResolveActor []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockResolveActor sync.RWMutex
}

func (mock *tokenResolverMock) ResolveActor(ctx context.Context, token string) (domain.Actor, error) {
	if mock.ResolveActorFunc == nil {
		panic("tokenResolverMock.ResolveActorFunc: method is nil but tokenResolver.ResolveActor was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockResolveActor.Lock()
	mock.calls.ResolveActor = append(mock.calls.ResolveActor, callInfo)
	mock.lockResolveActor.Unlock()
	return mock.ResolveActorFunc(ctx, token)
}

func (mock *tokenResolverMock) ResolveActorCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockResolveActor.RLock()
	calls := mock.calls.ResolveActor
	mock.lockResolveActor.RUnlock()
	return calls
}
