package auth

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	DeleteFunc func(ctx context.Context, id string) error
	GetFunc    func(ctx context.Context, id string) (*domain.Session, error)
	SaveFunc   func(ctx context.Context, s domain.Session) error

	calls struct {
		Delete []struct {
			Ctx context.Context
			Id  string
		}
		Get []struct {
			Ctx context.Context
			Id  string
		}
		Save []struct {
			Ctx context.Context
			S   domain.Session
		}
	}
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockSave   sync.RWMutex
}

func (mock *sessionStoreMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("sessionStoreMock.DeleteFunc: method is nil but sessionStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sessionStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Get(ctx context.Context, id string) (*domain.Session, error) {
	if mock.GetFunc == nil {
		panic("sessionStoreMock.GetFunc: method is nil but sessionStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *sessionStoreMock) GetCalls() []struct {
	Ctx context.Context
	Id  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Save(ctx context.Context, s domain.Session) error {
	if mock.SaveFunc == nil {
		panic("sessionStoreMock.SaveFunc: method is nil but sessionStore.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Session
	}{Ctx: ctx, S: s}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, s)
}

func (mock *sessionStoreMock) SaveCalls() []struct {
	Ctx context.Context
	S   domain.Session
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
