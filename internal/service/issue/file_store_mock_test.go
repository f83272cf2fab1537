package issue

import (
	"context"
	"io"
	"sync"

	"github.com/krishisathi/backend/internal/domain"
)

var _ fileStore = &fileStoreMock{}

type fileStoreMock struct {
	SaveFunc   func(ctx context.Context, field string, kind domain.FileKind, r io.Reader) (string, error)
	DeleteFunc func(ctx context.Context, ref string) error

	calls struct {
		Save []struct {
			Ctx   context.Context
			Field string
			Kind  domain.FileKind
			R     io.Reader
		}
		Delete []struct {
			Ctx context.Context
			Ref string
		}
	}
	lockSave   sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *fileStoreMock) Save(ctx context.Context, field string, kind domain.FileKind, r io.Reader) (string, error) {
	if mock.SaveFunc == nil {
		panic("fileStoreMock.SaveFunc: method is nil but fileStore.Save was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Field string
		Kind  domain.FileKind
		R     io.Reader
	}{Ctx: ctx, Field: field, Kind: kind, R: r}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, field, kind, r)
}

func (mock *fileStoreMock) SaveCalls() []struct {
	Ctx   context.Context
	Field string
	Kind  domain.FileKind
	R     io.Reader
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *fileStoreMock) Delete(ctx context.Context, ref string) error {
	if mock.DeleteFunc == nil {
		panic("fileStoreMock.DeleteFunc: method is nil but fileStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref string
	}{Ctx: ctx, Ref: ref}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ref)
}

func (mock *fileStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Ref string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
