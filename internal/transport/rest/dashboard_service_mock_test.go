package rest

import (
	"context"
	"github.com/heartmarshall/rondaflow-backend/internal/service/dashboard"
	"sync"
)

var _ dashboardService = &dashboardServiceMock{}

type dashboardServiceMock struct {
	DashboardFunc  func(ctx context.Context, input dashboard.DashboardInput) (*dashboard.Snapshot, error)
	ExportXLSXFunc func(ctx context.Context, input dashboard.DashboardInput) ([]byte, error)

	calls struct {
		Dashboard []struct {
			Ctx   context.Context
			Input dashboard.DashboardInput
		}
		ExportXLSX []struct {
			Ctx   context.Context
			Input dashboard.DashboardInput
		}
	}
	lockDashboard  sync.RWMutex
	lockExportXLSX sync.RWMutex
}

func (mock *dashboardServiceMock) Dashboard(ctx context.Context, input dashboard.DashboardInput) (*dashboard.Snapshot, error) {
	if mock.DashboardFunc == nil {
		panic("dashboardServiceMock.DashboardFunc: method is nil but dashboardService.Dashboard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dashboard.DashboardInput
	}{Ctx: ctx, Input: input}
	mock.lockDashboard.Lock()
	mock.calls.Dashboard = append(mock.calls.Dashboard, callInfo)
	mock.lockDashboard.Unlock()
	return mock.DashboardFunc(ctx, input)
}

func (mock *dashboardServiceMock) DashboardCalls() []struct {
	Ctx   context.Context
	Input dashboard.DashboardInput
} {
	mock.lockDashboard.RLock()
	calls := mock.calls.Dashboard
	mock.lockDashboard.RUnlock()
	return calls
}

func (mock *dashboardServiceMock) ExportXLSX(ctx context.Context, input dashboard.DashboardInput) ([]byte, error) {
	if mock.ExportXLSXFunc == nil {
		panic("dashboardServiceMock.ExportXLSXFunc: method is nil but dashboardService.ExportXLSX was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dashboard.DashboardInput
	}{Ctx: ctx, Input: input}
	mock.lockExportXLSX.Lock()
	mock.calls.ExportXLSX = append(mock.calls.ExportXLSX, callInfo)
	mock.lockExportXLSX.Unlock()
	return mock.ExportXLSXFunc(ctx, input)
}

func (mock *dashboardServiceMock) ExportXLSXCalls() []struct {
	Ctx   context.Context
	Input dashboard.DashboardInput
} {
	mock.lockExportXLSX.RLock()
	calls := mock.calls.ExportXLSX
	mock.lockExportXLSX.RUnlock()
	return calls
}
