package seeder

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ TemplateRepo = &TemplateRepoMock{}

type TemplateRepoMock struct {
	ListFunc   func(ctx context.Context) ([]domain.ChecklistTemplate, error)
	CreateFunc func(ctx context.Context, tpl domain.ChecklistTemplate) (*domain.ChecklistTemplate, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx context.Context
			Tpl domain.ChecklistTemplate
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
}

func (mock *TemplateRepoMock) List(ctx context.Context) ([]domain.ChecklistTemplate, error) {
	if mock.ListFunc == nil {
		panic("TemplateRepoMock.ListFunc: method is nil but TemplateRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *TemplateRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *TemplateRepoMock) Create(ctx context.Context, tpl domain.ChecklistTemplate) (*domain.ChecklistTemplate, error) {
	if mock.CreateFunc == nil {
		panic("TemplateRepoMock.CreateFunc: method is nil but TemplateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tpl domain.ChecklistTemplate
	}{Ctx: ctx, Tpl: tpl}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tpl)
}

func (mock *TemplateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Tpl domain.ChecklistTemplate
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
