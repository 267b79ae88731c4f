package dashboard

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ roundLister = &roundListerMock{}

type roundListerMock struct {
	ListFunc func(ctx context.Context, f domain.RoundFilter) ([]domain.Round, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.RoundFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *roundListerMock) List(ctx context.Context, f domain.RoundFilter) ([]domain.Round, error) {
	if mock.ListFunc == nil {
		panic("roundListerMock.ListFunc: method is nil but roundLister.List was just called")
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

func (mock *roundListerMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.RoundFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
