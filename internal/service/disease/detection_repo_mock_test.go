package disease

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

var _ detectionRepo = &detectionRepoMock{}

type detectionRepoMock struct {
	CreateFunc       func(ctx context.Context, d domain.DiseaseDetection) error
	ListByFarmerFunc func(ctx context.Context, farmerID uuid.UUID, limit int, offset int) ([]domain.DiseaseDetection, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			D   domain.DiseaseDetection
		}
		ListByFarmer []struct {
			Ctx      context.Context
			FarmerID uuid.UUID
			Limit    int
			Offset   int
		}
	}
	lockCreate       sync.RWMutex
	lockListByFarmer sync.RWMutex
}

func (mock *detectionRepoMock) Create(ctx context.Context, d domain.DiseaseDetection) error {
	if mock.CreateFunc == nil {
		panic("detectionRepoMock.CreateFunc: method is nil but detectionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   domain.DiseaseDetection
	}{Ctx: ctx, D: d}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, d)
}

func (mock *detectionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	D   domain.DiseaseDetection
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *detectionRepoMock) ListByFarmer(ctx context.Context, farmerID uuid.UUID, limit int, offset int) ([]domain.DiseaseDetection, error) {
	if mock.ListByFarmerFunc == nil {
		panic("detectionRepoMock.ListByFarmerFunc: method is nil but detectionRepo.ListByFarmer was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		FarmerID uuid.UUID
		Limit    int
		Offset   int
	}{Ctx: ctx, FarmerID: farmerID, Limit: limit, Offset: offset}
	mock.lockListByFarmer.Lock()
	mock.calls.ListByFarmer = append(mock.calls.ListByFarmer, callInfo)
	mock.lockListByFarmer.Unlock()
	return mock.ListByFarmerFunc(ctx, farmerID, limit, offset)
}

func (mock *detectionRepoMock) ListByFarmerCalls() []struct {
	Ctx      context.Context
	FarmerID uuid.UUID
	Limit    int
	Offset   int
} {
	mock.lockListByFarmer.RLock()
	calls := mock.calls.ListByFarmer
	mock.lockListByFarmer.RUnlock()
	return calls
}
