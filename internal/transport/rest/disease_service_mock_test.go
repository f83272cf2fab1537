package rest

import (
	"context"
	"sync"

	"github.com/krishisathi/backend/internal/domain"
)

var _ diseaseService = &diseaseServiceMock{}

type diseaseServiceMock struct {
	DetectFunc  func(ctx context.Context, image domain.Upload) (*domain.DiseaseDetection, error)
	HistoryFunc func(ctx context.Context, limit int, offset int) ([]domain.DiseaseDetection, error)

	calls struct {
		Detect []struct {
			Ctx   context.Context
			Image domain.Upload
		}
		History []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockDetect  sync.RWMutex
	lockHistory sync.RWMutex
}

func (mock *diseaseServiceMock) Detect(ctx context.Context, image domain.Upload) (*domain.DiseaseDetection, error) {
	if mock.DetectFunc == nil {
		panic("diseaseServiceMock.DetectFunc: method is nil but diseaseService.Detect was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Image domain.Upload
	}{Ctx: ctx, Image: image}
	mock.lockDetect.Lock()
	mock.calls.Detect = append(mock.calls.Detect, callInfo)
	mock.lockDetect.Unlock()
	return mock.DetectFunc(ctx, image)
}

func (mock *diseaseServiceMock) DetectCalls() []struct {
	Ctx   context.Context
	Image domain.Upload
} {
	mock.lockDetect.RLock()
	calls := mock.calls.Detect
	mock.lockDetect.RUnlock()
	return calls
}

func (mock *diseaseServiceMock) History(ctx context.Context, limit int, offset int) ([]domain.DiseaseDetection, error) {
	if mock.HistoryFunc == nil {
		panic("diseaseServiceMock.HistoryFunc: method is nil but diseaseService.History was just called")
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

func (mock *diseaseServiceMock) HistoryCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
