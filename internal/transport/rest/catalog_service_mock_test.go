package rest

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"github.com/heartmarshall/rondaflow-backend/internal/service/catalog"
	"sync"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListSectorsFunc    func(ctx context.Context) ([]domain.Sector, error)
	CreateSectorFunc   func(ctx context.Context, input catalog.CreateSectorInput) (*domain.Sector, error)
	ListTemplatesFunc  func(ctx context.Context) ([]domain.ChecklistTemplate, error)
	CreateTemplateFunc func(ctx context.Context, input catalog.CreateTemplateInput) (*domain.ChecklistTemplate, error)

	calls struct {
		ListSectors []struct {
			Ctx context.Context
		}
		CreateSector []struct {
			Ctx   context.Context
			Input catalog.CreateSectorInput
		}
		ListTemplates []struct {
			Ctx context.Context
		}
		CreateTemplate []struct {
			Ctx   context.Context
			Input catalog.CreateTemplateInput
		}
	}
	lockListSectors    sync.RWMutex
	lockCreateSector   sync.RWMutex
	lockListTemplates  sync.RWMutex
	lockCreateTemplate sync.RWMutex
}

func (mock *catalogServiceMock) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	if mock.ListSectorsFunc == nil {
		panic("catalogServiceMock.ListSectorsFunc: method is nil but catalogService.ListSectors was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListSectors.Lock()
	mock.calls.ListSectors = append(mock.calls.ListSectors, callInfo)
	mock.lockListSectors.Unlock()
	return mock.ListSectorsFunc(ctx)
}

func (mock *catalogServiceMock) ListSectorsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSectors.RLock()
	calls := mock.calls.ListSectors
	mock.lockListSectors.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateSector(ctx context.Context, input catalog.CreateSectorInput) (*domain.Sector, error) {
	if mock.CreateSectorFunc == nil {
		panic("catalogServiceMock.CreateSectorFunc: method is nil but catalogService.CreateSector was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateSectorInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSector.Lock()
	mock.calls.CreateSector = append(mock.calls.CreateSector, callInfo)
	mock.lockCreateSector.Unlock()
	return mock.CreateSectorFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateSectorCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateSectorInput
} {
	mock.lockCreateSector.RLock()
	calls := mock.calls.CreateSector
	mock.lockCreateSector.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ListTemplates(ctx context.Context) ([]domain.ChecklistTemplate, error) {
	if mock.ListTemplatesFunc == nil {
		panic("catalogServiceMock.ListTemplatesFunc: method is nil but catalogService.ListTemplates was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTemplates.Lock()
	mock.calls.ListTemplates = append(mock.calls.ListTemplates, callInfo)
	mock.lockListTemplates.Unlock()
	return mock.ListTemplatesFunc(ctx)
}

func (mock *catalogServiceMock) ListTemplatesCalls() []struct {
	Ctx context.Context
} {
	mock.lockListTemplates.RLock()
	calls := mock.calls.ListTemplates
	mock.lockListTemplates.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateTemplate(ctx context.Context, input catalog.CreateTemplateInput) (*domain.ChecklistTemplate, error) {
	if mock.CreateTemplateFunc == nil {
		panic("catalogServiceMock.CreateTemplateFunc: method is nil but catalogService.CreateTemplate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateTemplateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTemplate.Lock()
	mock.calls.CreateTemplate = append(mock.calls.CreateTemplate, callInfo)
	mock.lockCreateTemplate.Unlock()
	return mock.CreateTemplateFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateTemplateCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateTemplateInput
} {
	mock.lockCreateTemplate.RLock()
	calls := mock.calls.CreateTemplate
	mock.lockCreateTemplate.RUnlock()
	return calls
}
