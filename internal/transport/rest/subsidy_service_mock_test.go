package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
	"github.com/krishisathi/backend/internal/service/subsidy"
)

var _ subsidyService = &subsidyServiceMock{}

type subsidyServiceMock struct {
	ApplyFunc        func(ctx context.Context, input subsidy.ApplyInput) (*domain.Application, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListMineFunc     func(ctx context.Context, input subsidy.ListInput) ([]domain.Application, int, error)
	ListAllFunc      func(ctx context.Context, input subsidy.ListInput) ([]domain.Application, int, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error)
	ReplyFunc        func(ctx context.Context, id uuid.UUID, reply string) (*domain.Application, error)
	ListRepliesFunc  func(ctx context.Context, id uuid.UUID) ([]string, error)

	calls struct {
		Apply []struct {
			Ctx   context.Context
			Input subsidy.ApplyInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListMine []struct {
			Ctx   context.Context
			Input subsidy.ListInput
		}
		ListAll []struct {
			Ctx   context.Context
			Input subsidy.ListInput
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.ApplicationStatus
		}
		Reply []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Reply string
		}
		ListReplies []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockApply        sync.RWMutex
	lockGet          sync.RWMutex
	lockListMine     sync.RWMutex
	lockListAll      sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockReply        sync.RWMutex
	lockListReplies  sync.RWMutex
}

func (mock *subsidyServiceMock) Apply(ctx context.Context, input subsidy.ApplyInput) (*domain.Application, error) {
	if mock.ApplyFunc == nil {
		panic("subsidyServiceMock.ApplyFunc: method is nil but subsidyService.Apply was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subsidy.ApplyInput
	}{Ctx: ctx, Input: input}
	mock.lockApply.Lock()
	mock.calls.Apply = append(mock.calls.Apply, callInfo)
	mock.lockApply.Unlock()
	return mock.ApplyFunc(ctx, input)
}

func (mock *subsidyServiceMock) ApplyCalls() []struct {
	Ctx   context.Context
	Input subsidy.ApplyInput
} {
	mock.lockApply.RLock()
	calls := mock.calls.Apply
	mock.lockApply.RUnlock()
	return calls
}

func (mock *subsidyServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	if mock.GetFunc == nil {
		panic("subsidyServiceMock.GetFunc: method is nil but subsidyService.Get was just called")
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

func (mock *subsidyServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *subsidyServiceMock) ListMine(ctx context.Context, input subsidy.ListInput) ([]domain.Application, int, error) {
	if mock.ListMineFunc == nil {
		panic("subsidyServiceMock.ListMineFunc: method is nil but subsidyService.ListMine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subsidy.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListMine.Lock()
	mock.calls.ListMine = append(mock.calls.ListMine, callInfo)
	mock.lockListMine.Unlock()
	return mock.ListMineFunc(ctx, input)
}

func (mock *subsidyServiceMock) ListMineCalls() []struct {
	Ctx   context.Context
	Input subsidy.ListInput
} {
	mock.lockListMine.RLock()
	calls := mock.calls.ListMine
	mock.lockListMine.RUnlock()
	return calls
}

func (mock *subsidyServiceMock) ListAll(ctx context.Context, input subsidy.ListInput) ([]domain.Application, int, error) {
	if mock.ListAllFunc == nil {
		panic("subsidyServiceMock.ListAllFunc: method is nil but subsidyService.ListAll was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subsidy.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, input)
}

func (mock *subsidyServiceMock) ListAllCalls() []struct {
	Ctx   context.Context
	Input subsidy.ListInput
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *subsidyServiceMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (*domain.Application, error) {
	if mock.UpdateStatusFunc == nil {
		panic("subsidyServiceMock.UpdateStatusFunc: method is nil but subsidyService.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.ApplicationStatus
	}{Ctx: ctx, ID: id, Status: status}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *subsidyServiceMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.ApplicationStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *subsidyServiceMock) Reply(ctx context.Context, id uuid.UUID, reply string) (*domain.Application, error) {
	if mock.ReplyFunc == nil {
		panic("subsidyServiceMock.ReplyFunc: method is nil but subsidyService.Reply was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Reply string
	}{Ctx: ctx, ID: id, Reply: reply}
	mock.lockReply.Lock()
	mock.calls.Reply = append(mock.calls.Reply, callInfo)
	mock.lockReply.Unlock()
	return mock.ReplyFunc(ctx, id, reply)
}

func (mock *subsidyServiceMock) ReplyCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Reply string
} {
	mock.lockReply.RLock()
	calls := mock.calls.Reply
	mock.lockReply.RUnlock()
	return calls
}

func (mock *subsidyServiceMock) ListReplies(ctx context.Context, id uuid.UUID) ([]string, error) {
	if mock.ListRepliesFunc == nil {
		panic("subsidyServiceMock.ListRepliesFunc: method is nil but subsidyService.ListReplies was just called")
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

func (mock *subsidyServiceMock) ListRepliesCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockListReplies.RLock()
	calls := mock.calls.ListReplies
	mock.lockListReplies.RUnlock()
	return calls
}
