package keyword

import (
	"context"
	"sync"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/google/uuid"
)

var _ topicLinker = &topicLinkerMock{}

type topicLinkerMock struct {
	CreateFromSourceFunc      func(ctx context.Context, userID string, topicName string, description string, sourceKeywordID *uuid.UUID) (*domain.Topic, error)
	DeleteBySourceKeywordFunc func(ctx context.Context, userID string, keywordID uuid.UUID) (func(context.Context), error)

	calls struct {
		CreateFromSource []struct {
			Ctx             context.Context
			UserID          string
			TopicName       string
			Description     string
			SourceKeywordID *uuid.UUID
		}
		DeleteBySourceKeyword []struct {
			Ctx       context.Context
			UserID    string
			KeywordID uuid.UUID
		}
	}
	lockCreateFromSource      sync.RWMutex
	lockDeleteBySourceKeyword sync.RWMutex
}

func (mock *topicLinkerMock) CreateFromSource(ctx context.Context, userID string, topicName string, description string, sourceKeywordID *uuid.UUID) (*domain.Topic, error) {
	if mock.CreateFromSourceFunc == nil {
		panic("topicLinkerMock.CreateFromSourceFunc: method is nil but topicLinker.CreateFromSource was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		UserID          string
		TopicName       string
		Description     string
		SourceKeywordID *uuid.UUID
	}{Ctx: ctx, UserID: userID, TopicName: topicName, Description: description, SourceKeywordID: sourceKeywordID}
	mock.lockCreateFromSource.Lock()
	mock.calls.CreateFromSource = append(mock.calls.CreateFromSource, callInfo)
	mock.lockCreateFromSource.Unlock()
	return mock.CreateFromSourceFunc(ctx, userID, topicName, description, sourceKeywordID)
}

func (mock *topicLinkerMock) CreateFromSourceCalls() []struct {
	Ctx             context.Context
	UserID          string
	TopicName       string
	Description     string
	SourceKeywordID *uuid.UUID
} {
	var calls []struct {
		Ctx             context.Context
		UserID          string
		TopicName       string
		Description     string
		SourceKeywordID *uuid.UUID
	}
	mock.lockCreateFromSource.RLock()
	calls = mock.calls.CreateFromSource
	mock.lockCreateFromSource.RUnlock()
	return calls
}

func (mock *topicLinkerMock) DeleteBySourceKeyword(ctx context.Context, userID string, keywordID uuid.UUID) (func(context.Context), error) {
	if mock.DeleteBySourceKeywordFunc == nil {
		panic("topicLinkerMock.DeleteBySourceKeywordFunc: method is nil but topicLinker.DeleteBySourceKeyword was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    string
		KeywordID uuid.UUID
	}{Ctx: ctx, UserID: userID, KeywordID: keywordID}
	mock.lockDeleteBySourceKeyword.Lock()
	mock.calls.DeleteBySourceKeyword = append(mock.calls.DeleteBySourceKeyword, callInfo)
	mock.lockDeleteBySourceKeyword.Unlock()
	return mock.DeleteBySourceKeywordFunc(ctx, userID, keywordID)
}

func (mock *topicLinkerMock) DeleteBySourceKeywordCalls() []struct {
	Ctx       context.Context
	UserID    string
	KeywordID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		UserID    string
		KeywordID uuid.UUID
	}
	mock.lockDeleteBySourceKeyword.RLock()
	calls = mock.calls.DeleteBySourceKeyword
	mock.lockDeleteBySourceKeyword.RUnlock()
	return calls
}
