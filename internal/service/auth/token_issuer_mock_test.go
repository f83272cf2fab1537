package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	IssueFunc  func(userID uuid.UUID, role domain.UserRole) (string, time.Time, error)
	VerifyFunc func(token string) (domain.Caller, error)

	calls struct {
		Issue []struct {
			UserID uuid.UUID
			Role   domain.UserRole
		}
		Verify []struct {
			Token string
		}
	}
	lockIssue  sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *tokenIssuerMock) Issue(userID uuid.UUID, role domain.UserRole) (string, time.Time, error) {
	if mock.IssueFunc == nil {
		panic("tokenIssuerMock.IssueFunc: method is nil but tokenIssuer.Issue was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   domain.UserRole
	}{UserID: userID, Role: role}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc(userID, role)
}

func (mock *tokenIssuerMock) IssueCalls() []struct {
	UserID uuid.UUID
	Role   domain.UserRole
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) Verify(token string) (domain.Caller, error) {
	if mock.VerifyFunc == nil {
		panic("tokenIssuerMock.VerifyFunc: method is nil but tokenIssuer.Verify was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *tokenIssuerMock) VerifyCalls() []struct {
	Token string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
