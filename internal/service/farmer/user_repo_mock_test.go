package farmer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/krishisathi/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, id uuid.UUID, p domain.UserProfileParams) (*domain.User, error)
	ListByRoleFunc    func(ctx context.Context, role domain.UserRole, limit int, offset int) ([]domain.User, int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateProfile []struct {
			Ctx context.Context
			ID  uuid.UUID
			P   domain.UserProfileParams
		}
		ListByRole []struct {
			Ctx    context.Context
			Role   domain.UserRole
			Limit  int
			Offset int
		}
	}
	lockGetByID       sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockListByRole    sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateProfile(ctx context.Context, id uuid.UUID, p domain.UserProfileParams) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userRepoMock.UpdateProfileFunc: method is nil but userRepo.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		P   domain.UserProfileParams
	}{Ctx: ctx, ID: id, P: p}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, id, p)
}

func (mock *userRepoMock) UpdateProfileCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	P   domain.UserProfileParams
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userRepoMock) ListByRole(ctx context.Context, role domain.UserRole, limit int, offset int) ([]domain.User, int, error) {
	if mock.ListByRoleFunc == nil {
		panic("userRepoMock.ListByRoleFunc: method is nil but userRepo.ListByRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Role   domain.UserRole
		Limit  int
		Offset int
	}{Ctx: ctx, Role: role, Limit: limit, Offset: offset}
	mock.lockListByRole.Lock()
	mock.calls.ListByRole = append(mock.calls.ListByRole, callInfo)
	mock.lockListByRole.Unlock()
	return mock.ListByRoleFunc(ctx, role, limit, offset)
}

func (mock *userRepoMock) ListByRoleCalls() []struct {
	Ctx    context.Context
	Role   domain.UserRole
	Limit  int
	Offset int
} {
	mock.lockListByRole.RLock()
	calls := mock.calls.ListByRole
	mock.lockListByRole.RUnlock()
	return calls
}
