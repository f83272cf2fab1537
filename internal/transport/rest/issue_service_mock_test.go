package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/service/issue"
)

var _ issueService = &issueServiceMock{}

type issueServiceMock struct {
	CreateFunc       func(ctx context.Context, input issue.CreateInput) (*domain.Issue, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	ListMineFunc     func(ctx context.Context, input issue.ListInput) ([]domain.Issue, int, error)
	ListAllFunc      func(ctx context.Context, input issue.ListInput) ([]domain.Issue, int, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.IssueStatus) (*domain.Issue, error)
	ReplyFunc        func(ctx context.Context, id uuid.UUID, message string) (*domain.Issue, error)
	ListRepliesFunc  func(ctx context.Context, id uuid.UUID) ([]domain.Reply, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input issue.CreateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListMine []struct {
			Ctx   context.Context
			Input issue.ListInput
		}
		ListAll []struct {
			Ctx   context.Context
			Input issue.ListInput
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.IssueStatus
		}
		Reply []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Message string
		}
		ListReplies []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockGet          sync.RWMutex
	lockListMine     sync.RWMutex
	lockListAll      sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockReply        sync.RWMutex
	lockListReplies  sync.RWMutex
}

func (mock *issueServiceMock) Create(ctx context.Context, input issue.CreateInput) (*domain.Issue, error) {
	if mock.CreateFunc == nil {
		panic("issueServiceMock.CreateFunc: method is nil but issueService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *issueServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input issue.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *issueServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Issue, error) {
	if mock.GetFunc == nil {
		panic("issueServiceMock.GetFunc: method is nil but issueService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *issueServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *issueServiceMock) ListMine(ctx context.Context, input issue.ListInput) ([]domain.Issue, int, error) {
	if mock.ListMineFunc == nil {
		panic("issueServiceMock.ListMineFunc: method is nil but issueService.ListMine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, input)
}

func (mock *issueServiceMock) ListMineCalls() []struct {
	Ctx   context.Context
	Input issue.ListInput
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *issueServiceMock) ListAll(ctx context.Context, input issue.ListInput) ([]domain.Issue, int, error) {
	if mock.ListAllFunc == nil {
		panic("issueServiceMock.ListAllFunc: method is nil but issueService.ListAll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input issue.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, input)
}

func (mock *issueServiceMock) ListAllCalls() []struct {
	Ctx   context.Context
	Input issue.ListInput
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *issueServiceMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.IssueStatus) (*domain.Issue, error) {
	if mock.UpdateStatusFunc == nil {
		panic("issueServiceMock.UpdateStatusFunc: method is nil but issueService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.IssueStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *issueServiceMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.IssueStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *issueServiceMock) Reply(ctx context.Context, id uuid.UUID, message string) (*domain.Issue, error) {
	if mock.ReplyFunc == nil {
		panic("issueServiceMock.ReplyFunc: method is nil but issueService.Reply was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Message string
	}{Ctx: ctx, ID: id, Message: message}
	mock.lockReply.Lock()
	mock.calls.Reply = append(mock.calls.Reply, callInfo)
	mock.lockReply.Unlock()
	return mock.ReplyFunc(ctx, id, message)
}

func (mock *issueServiceMock) ReplyCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Message string
} {
	mock.lockReply.RLock()
	calls := mock.calls.Reply
	mock.lockReply.RUnlock()
	return calls
}

func (mock *issueServiceMock) ListReplies(ctx context.Context, id uuid.UUID) ([]domain.Reply, error) {
	if mock.ListRepliesFunc == nil {
		panic("issueServiceMock.ListRepliesFunc: method is nil but issueService.ListReplies was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockListReplies.Lock()
	mock.calls.ListReplies = append(mock.calls.ListReplies, callInfo)
	mock.lockListReplies.Unlock()
	return mock.ListRepliesFunc(ctx, id)
}

func (mock *issueServiceMock) ListRepliesCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockListReplies.RLock()
	calls := mock.calls.ListReplies
	mock.lockListReplies.RUnlock()
	return calls
}
