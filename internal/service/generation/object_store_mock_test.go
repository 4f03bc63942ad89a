package generation

import (
	"context"
	"sync"
)

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	StoreFunc  func(ctx context.Context, data []byte, name string, contentType string) (string, error)
	DeleteFunc func(ctx context.Context, url string) error

	calls struct {
		Store []struct {
			Ctx         context.Context
			Data        []byte
			Name        string
			ContentType string
		}
		Delete []struct {
			Ctx context.Context
			Url string
		}
	}
	lockStore  sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *objectStoreMock) Store(ctx context.Context, data []byte, name string, contentType string) (string, error) {
	if mock.StoreFunc == nil {
		panic("objectStoreMock.StoreFunc: method is nil but objectStore.Store was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Data        []byte
		Name        string
		ContentType string
	}{Ctx: ctx, Data: data, Name: name, ContentType: contentType}
	mock.lockStore.Lock()
	mock.calls.Store = append(mock.calls.Store, callInfo)
	mock.lockStore.Unlock()
	return mock.StoreFunc(ctx, data, name, contentType)
}

func (mock *objectStoreMock) StoreCalls() []struct {
	Ctx         context.Context
	Data        []byte
	Name        string
	ContentType string
} {
	var calls []struct {
		Ctx         context.Context
		Data        []byte
		Name        string
		ContentType string
	}
	mock.lockStore.RLock()
	calls = mock.calls.Store
	mock.lockStore.RUnlock()
	return calls
}

func (mock *objectStoreMock) Delete(ctx context.Context, url string) error {
	if mock.DeleteFunc == nil {
		panic("objectStoreMock.DeleteFunc: method is nil but objectStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Url string
	}{Ctx: ctx, Url: url}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, url)
}

func (mock *objectStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Url string
} {
	var calls []struct {
		Ctx context.Context
		Url string
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
