package auth

import (
	"github.com/google/uuid"
	"github.com/heartmarshall/rondaflow-backend/internal/auth"
	"github.com/heartmarshall/rondaflow-backend/internal/domain"
	"sync"
	"time"
)

var _ sessionManager = &sessionManagerMock{}

type sessionManagerMock struct {
	IssueFunc    func(sessionID string, userID uuid.UUID, role domain.Role) (string, time.Time, error)
	ValidateFunc func(token string) (auth.Claims, error)

	calls struct {
		Issue []struct {
			SessionID string
			UserID    uuid.UUID
			Role      domain.Role
		}
		Validate []struct {
			Token string
		}
	}
	lockIssue    sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *sessionManagerMock) Issue(sessionID string, userID uuid.UUID, role domain.Role) (string, time.Time, error) {
	if mock.IssueFunc == nil {
		panic("sessionManagerMock.IssueFunc: method is nil but sessionManager.Issue was just called")
	}
	callInfo := struct {
		SessionID string
		UserID    uuid.UUID
		Role      domain.Role
	}{SessionID: sessionID, UserID: userID, Role: role}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(sessionID, userID, role)
}

func (mock *sessionManagerMock) IssueCalls() []struct {
	SessionID string
	UserID    uuid.UUID
	Role      domain.Role
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *sessionManagerMock) Validate(token string) (auth.Claims, error) {
	if mock.ValidateFunc == nil {
		panic("sessionManagerMock.ValidateFunc: method is nil but sessionManager.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *sessionManagerMock) ValidateCalls() []struct {
	Token string
} {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
