package keyword

import (
	"context"
	"sync"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/google/uuid"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	CreateFunc func(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	DeleteFunc func(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			I   *domain.Idea
		}
		Delete []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *ideaRepoMock) Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error) {
	if mock.CreateFunc == nil {
		panic("ideaRepoMock.CreateFunc: method is nil but ideaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		I   *domain.Idea
	}{Ctx: ctx, I: i}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, i)
}

func (mock *ideaRepoMock) CreateCalls() []struct {
	Ctx context.Context
	I   *domain.Idea
} {
	var calls []struct {
		Ctx context.Context
		I   *domain.Idea
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *ideaRepoMock) Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error) {
	if mock.DeleteFunc == nil {
		panic("ideaRepoMock.DeleteFunc: method is nil but ideaRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *ideaRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
