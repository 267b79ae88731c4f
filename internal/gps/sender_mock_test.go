package gps

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ Sender = &SenderMock{}

type SenderMock struct {
	SendFunc func(ctx context.Context, r Reading, source domain.LocationSource) error

	calls struct {
		Send []struct {
			Ctx    context.Context
			R      Reading
			Source domain.LocationSource
		}
	}
	lockSend sync.RWMutex
}

func (mock *SenderMock) Send(ctx context.Context, r Reading, source domain.LocationSource) error {
	if mock.SendFunc == nil {
		panic("SenderMock.SendFunc: method is nil but Sender.Send was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		R      Reading
		Source domain.LocationSource
	}{Ctx: ctx, R: r, Source: source}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, r, source)
}

func (mock *SenderMock) SendCalls() []struct {
	Ctx    context.Context
	R      Reading
	Source domain.LocationSource
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
