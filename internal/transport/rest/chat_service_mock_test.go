package rest

import (
	"context"
	"sync"

	"github.com/krishisathi/backend/internal/domain"
)

var _ chatService = &chatServiceMock{}

type chatServiceMock struct {
	AskFunc     func(ctx context.Context, message string) (*domain.ChatMessage, error)
	HistoryFunc func(ctx context.Context, limit int, offset int) ([]domain.ChatMessage, error)

	calls struct {
		Ask []struct {
			Ctx     context.Context
			Message string
		}
		History []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockAsk     sync.RWMutex
	lockHistory sync.RWMutex
}

func (mock *chatServiceMock) Ask(ctx context.Context, message string) (*domain.ChatMessage, error) {
	if mock.AskFunc == nil {
		panic("chatServiceMock.AskFunc: method is nil but chatService.Ask was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Message string
	}{Ctx: ctx, Message: message}
	mock.lockAsk.Lock()
	mock.calls.Ask = append(mock.calls.Ask, callInfo)
	mock.lockAsk.Unlock()
	return mock.AskFunc(ctx, message)
}

func (mock *chatServiceMock) AskCalls() []struct {
	Ctx     context.Context
	Message string
} {
	mock.lockAsk.RLock()
	calls := mock.calls.Ask
	mock.lockAsk.RUnlock()
	return calls
}

func (mock *chatServiceMock) History(ctx context.Context, limit int, offset int) ([]domain.ChatMessage, error) {
	if mock.HistoryFunc == nil {
		panic("chatServiceMock.HistoryFunc: method is nil but chatService.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, limit, offset)
}

func (mock *chatServiceMock) HistoryCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
