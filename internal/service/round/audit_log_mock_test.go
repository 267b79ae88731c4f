package round

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
)

var _ auditLog = &auditLogMock{}

type auditLogMock struct {
	ListByRoundFunc func(ctx context.Context, roundID uuid.UUID) ([]domain.AuditEntry, error)
	LogFunc         func(ctx context.Context, entry domain.AuditEntry) error

	calls struct {
		ListByRound []struct {
			Ctx     context.Context
			RoundID uuid.UUID
		}
		Log []struct {
			Ctx   context.Context
			Entry domain.AuditEntry
		}
	}
	lockListByRound sync.RWMutex
	lockLog         sync.RWMutex
}

func (mock *auditLogMock) ListByRound(ctx context.Context, roundID uuid.UUID) ([]domain.AuditEntry, error) {
	if mock.ListByRoundFunc == nil {
		panic("auditLogMock.ListByRoundFunc: method is nil but auditLog.ListByRound was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		RoundID uuid.UUID
	}{Ctx: ctx, RoundID: roundID}
	mock.lockListByRound.Lock()
	mock.calls.ListByRound = append(mock.calls.ListByRound, callInfo)
	mock.lockListByRound.Unlock()
	return mock.ListByRoundFunc(ctx, roundID)
}

func (mock *auditLogMock) ListByRoundCalls() []struct {
	Ctx     context.Context
	RoundID uuid.UUID
} {
	mock.lockListByRound.RLock()
	calls := mock.calls.ListByRound
	mock.lockListByRound.RUnlock()
	return calls
}

func (mock *auditLogMock) Log(ctx context.Context, entry domain.AuditEntry) error {
	if mock.LogFunc == nil {
		panic("auditLogMock.LogFunc: method is nil but auditLog.Log was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry domain.AuditEntry
	}{Ctx: ctx, Entry: entry}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, entry)
}

func (mock *auditLogMock) LogCalls() []struct {
	Ctx   context.Context
	Entry domain.AuditEntry
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
