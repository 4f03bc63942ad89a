package rest

import (
	"context"
	"sync"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/internal/service/topic"
	"github.com/google/uuid"
)

var _ topicService = &topicServiceMock{}

type topicServiceMock struct {
	CreateTopicFunc         func(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopicFunc            func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopicsFunc          func(ctx context.Context) ([]*domain.Topic, error)
	StatsFunc               func(ctx context.Context) (domain.TopicStats, error)
	DeleteTopicFunc         func(ctx context.Context, topicID uuid.UUID) error
	RegenerateScriptFunc    func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	UpdateScriptFunc        func(ctx context.Context, input topic.UpdateScriptInput) (*domain.Topic, error)
	GenerateTitlesFunc      func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	SelectTitleFunc         func(ctx context.Context, input topic.TitleInput) (*domain.Topic, error)
	UpdateTitleFunc         func(ctx context.Context, input topic.TitleInput) (*domain.Topic, error)
	GenerateThumbnailsFunc  func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	SelectThumbnailFunc     func(ctx context.Context, input topic.SelectThumbnailInput) (*domain.Topic, error)
	GenerateExtraAssetsFunc func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	MarkAsEditingFunc       func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	MarkAsUploadedFunc      func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)

	calls struct {
		CreateTopic []struct {
			Ctx   context.Context
			Input topic.CreateTopicInput
		}
		GetTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		ListTopics []struct {
			Ctx context.Context
		}
		Stats []struct {
			Ctx context.Context
		}
		DeleteTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		RegenerateScript []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		UpdateScript []struct {
			Ctx   context.Context
			Input topic.UpdateScriptInput
		}
		GenerateTitles []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		SelectTitle []struct {
			Ctx   context.Context
			Input topic.TitleInput
		}
		UpdateTitle []struct {
			Ctx   context.Context
			Input topic.TitleInput
		}
		GenerateThumbnails []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		SelectThumbnail []struct {
			Ctx   context.Context
			Input topic.SelectThumbnailInput
		}
		GenerateExtraAssets []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		MarkAsEditing []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		MarkAsUploaded []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
	}
	lockCreateTopic         sync.RWMutex
	lockGetTopic            sync.RWMutex
	lockListTopics          sync.RWMutex
	lockStats               sync.RWMutex
	lockDeleteTopic         sync.RWMutex
	lockRegenerateScript    sync.RWMutex
	lockUpdateScript        sync.RWMutex
	lockGenerateTitles      sync.RWMutex
	lockSelectTitle         sync.RWMutex
	lockUpdateTitle         sync.RWMutex
	lockGenerateThumbnails  sync.RWMutex
	lockSelectThumbnail     sync.RWMutex
	lockGenerateExtraAssets sync.RWMutex
	lockMarkAsEditing       sync.RWMutex
	lockMarkAsUploaded      sync.RWMutex
}

func (mock *topicServiceMock) CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error) {
	if mock.CreateTopicFunc == nil {
		panic("topicServiceMock.CreateTopicFunc: method is nil but topicService.CreateTopic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input topic.CreateTopicInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTopic.Lock()
	mock.calls.CreateTopic = append(mock.calls.CreateTopic, callInfo)
	mock.lockCreateTopic.Unlock()
	return mock.CreateTopicFunc(ctx, input)
}

func (mock *topicServiceMock) CreateTopicCalls() []struct {
	Ctx   context.Context
	Input topic.CreateTopicInput
} {
	var calls []struct {
		Ctx   context.Context
		Input topic.CreateTopicInput
	}
	mock.lockCreateTopic.RLock()
	calls = mock.calls.CreateTopic
	mock.lockCreateTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetTopicFunc == nil {
		panic("topicServiceMock.GetTopicFunc: method is nil but topicService.GetTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGetTopic.Lock()
	mock.calls.GetTopic = append(mock.calls.GetTopic, callInfo)
	mock.lockGetTopic.Unlock()
	return mock.GetTopicFunc(ctx, topicID)
}

func (mock *topicServiceMock) GetTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}
	mock.lockGetTopic.RLock()
	calls = mock.calls.GetTopic
	mock.lockGetTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	if mock.ListTopicsFunc == nil {
		panic("topicServiceMock.ListTopicsFunc: method is nil but topicService.ListTopics was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListTopics.Lock()
	mock.calls.ListTopics = append(mock.calls.ListTopics, callInfo)
	mock.lockListTopics.Unlock()
	return mock.ListTopicsFunc(ctx)
}

func (mock *topicServiceMock) ListTopicsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListTopics.RLock()
	calls = mock.calls.ListTopics
	mock.lockListTopics.RUnlock()
	return calls
}

func (mock *topicServiceMock) Stats(ctx context.Context) (domain.TopicStats, error) {
	if mock.StatsFunc == nil {
		panic("topicServiceMock.StatsFunc: method is nil but topicService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *topicServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *topicServiceMock) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	if mock.DeleteTopicFunc == nil {
		panic("topicServiceMock.DeleteTopicFunc: method is nil but topicService.DeleteTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockDeleteTopic.Lock()
	mock.calls.DeleteTopic = append(mock.calls.DeleteTopic, callInfo)
	mock.lockDeleteTopic.Unlock()
	return mock.DeleteTopicFunc(ctx, topicID)
}

func (mock *topicServiceMock) DeleteTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}
	mock.lockDeleteTopic.RLock()
	calls = mock.calls.DeleteTopic
	mock.lockDeleteTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) RegenerateScript(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.RegenerateScriptFunc == nil {
		panic("topicServiceMock.RegenerateScriptFunc: method is nil but topicService.RegenerateScript was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockRegenerateScript.Lock()
	mock.calls.RegenerateScript = append(mock.calls.RegenerateScript, callInfo)
	mock.lockRegenerateScript.Unlock()
	return mock.RegenerateScriptFunc(ctx, topicID)
}

func (mock *topicServiceMock) RegenerateScriptCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}
	mock.lockRegenerateScript.RLock()
	calls = mock.calls.RegenerateScript
	mock.lockRegenerateScript.RUnlock()
	return calls
}

func (mock *topicServiceMock) UpdateScript(ctx context.Context, input topic.UpdateScriptInput) (*domain.Topic, error) {
	if mock.UpdateScriptFunc == nil {
		panic("topicServiceMock.UpdateScriptFunc: method is nil but topicService.UpdateScript was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input topic.UpdateScriptInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateScript.Lock()
	mock.calls.UpdateScript = append(mock.calls.UpdateScript, callInfo)
	mock.lockUpdateScript.Unlock()
	return mock.UpdateScriptFunc(ctx, input)
}

func (mock *topicServiceMock) UpdateScriptCalls() []struct {
	Ctx   context.Context
	Input topic.UpdateScriptInput
} {
	var calls []struct {
		Ctx   context.Context
		Input topic.UpdateScriptInput
	}
	mock.lockUpdateScript.RLock()
	calls = mock.calls.UpdateScript
	mock.lockUpdateScript.RUnlock()
	return calls
}

func (mock *topicServiceMock) GenerateTitles(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GenerateTitlesFunc == nil {
		panic("topicServiceMock.GenerateTitlesFunc: method is nil but topicService.GenerateTitles was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGenerateTitles.Lock()
	mock.calls.GenerateTitles = append(mock.calls.GenerateTitles, callInfo)
	mock.lockGenerateTitles.Unlock()
	return mock.GenerateTitlesFunc(ctx, topicID)
}

func (mock *topicServiceMock) GenerateTitlesCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}
	mock.lockGenerateTitles.RLock()
	calls = mock.calls.GenerateTitles
	mock.lockGenerateTitles.RUnlock()
	return calls
}

func (mock *topicServiceMock) SelectTitle(ctx context.Context, input topic.TitleInput) (*domain.Topic, error) {
	if mock.SelectTitleFunc == nil {
		panic("topicServiceMock.SelectTitleFunc: method is nil but topicService.SelectTitle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input topic.TitleInput
	}{Ctx: ctx, Input: input}
	mock.lockSelectTitle.Lock()
	mock.calls.SelectTitle = append(mock.calls.SelectTitle, callInfo)
	mock.lockSelectTitle.Unlock()
	return mock.SelectTitleFunc(ctx, input)
}

func (mock *topicServiceMock) SelectTitleCalls() []struct {
	Ctx   context.Context
	Input topic.TitleInput
} {
	var calls []struct {
		Ctx   context.Context
		Input topic.TitleInput
	}
	mock.lockSelectTitle.RLock()
	calls = mock.calls.SelectTitle
	mock.lockSelectTitle.RUnlock()
	return calls
}

func (mock *topicServiceMock) UpdateTitle(ctx context.Context, input topic.TitleInput) (*domain.Topic, error) {
	if mock.UpdateTitleFunc == nil {
		panic("topicServiceMock.UpdateTitleFunc: method is nil but topicService.UpdateTitle was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input topic.TitleInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateTitle.Lock()
	mock.calls.UpdateTitle = append(mock.calls.UpdateTitle, callInfo)
	mock.lockUpdateTitle.Unlock()
	return mock.UpdateTitleFunc(ctx, input)
}

func (mock *topicServiceMock) UpdateTitleCalls() []struct {
	Ctx   context.Context
	Input topic.TitleInput
} {
	var calls []struct {
		Ctx   context.Context
		Input topic.TitleInput
	}
	mock.lockUpdateTitle.RLock()
	calls = mock.calls.UpdateTitle
	mock.lockUpdateTitle.RUnlock()
	return calls
}

func (mock *topicServiceMock) GenerateThumbnails(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GenerateThumbnailsFunc == nil {
		panic("topicServiceMock.GenerateThumbnailsFunc: method is nil but topicService.GenerateThumbnails was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGenerateThumbnails.Lock()
	mock.calls.GenerateThumbnails = append(mock.calls.GenerateThumbnails, callInfo)
	mock.lockGenerateThumbnails.Unlock()
	return mock.GenerateThumbnailsFunc(ctx, topicID)
}

func (mock *topicServiceMock) GenerateThumbnailsCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}
	mock.lockGenerateThumbnails.RLock()
	calls = mock.calls.GenerateThumbnails
	mock.lockGenerateThumbnails.RUnlock()
	return calls
}

func (mock *topicServiceMock) SelectThumbnail(ctx context.Context, input topic.SelectThumbnailInput) (*domain.Topic, error) {
	if mock.SelectThumbnailFunc == nil {
		panic("topicServiceMock.SelectThumbnailFunc: method is nil but topicService.SelectThumbnail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input topic.SelectThumbnailInput
	}{Ctx: ctx, Input: input}
	mock.lockSelectThumbnail.Lock()
	mock.calls.SelectThumbnail = append(mock.calls.SelectThumbnail, callInfo)
	mock.lockSelectThumbnail.Unlock()
	return mock.SelectThumbnailFunc(ctx, input)
}

func (mock *topicServiceMock) SelectThumbnailCalls() []struct {
	Ctx   context.Context
	Input topic.SelectThumbnailInput
} {
	var calls []struct {
		Ctx   context.Context
		Input topic.SelectThumbnailInput
	}
	mock.lockSelectThumbnail.RLock()
	calls = mock.calls.SelectThumbnail
	mock.lockSelectThumbnail.RUnlock()
	return calls
}

func (mock *topicServiceMock) GenerateExtraAssets(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GenerateExtraAssetsFunc == nil {
		panic("topicServiceMock.GenerateExtraAssetsFunc: method is nil but topicService.GenerateExtraAssets was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGenerateExtraAssets.Lock()
	mock.calls.GenerateExtraAssets = append(mock.calls.GenerateExtraAssets, callInfo)
	mock.lockGenerateExtraAssets.Unlock()
	return mock.GenerateExtraAssetsFunc(ctx, topicID)
}

func (mock *topicServiceMock) GenerateExtraAssetsCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}
	mock.lockGenerateExtraAssets.RLock()
	calls = mock.calls.GenerateExtraAssets
	mock.lockGenerateExtraAssets.RUnlock()
	return calls
}

func (mock *topicServiceMock) MarkAsEditing(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.MarkAsEditingFunc == nil {
		panic("topicServiceMock.MarkAsEditingFunc: method is nil but topicService.MarkAsEditing was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockMarkAsEditing.Lock()
	mock.calls.MarkAsEditing = append(mock.calls.MarkAsEditing, callInfo)
	mock.lockMarkAsEditing.Unlock()
	return mock.MarkAsEditingFunc(ctx, topicID)
}

func (mock *topicServiceMock) MarkAsEditingCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}
	mock.lockMarkAsEditing.RLock()
	calls = mock.calls.MarkAsEditing
	mock.lockMarkAsEditing.RUnlock()
	return calls
}

func (mock *topicServiceMock) MarkAsUploaded(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.MarkAsUploadedFunc == nil {
		panic("topicServiceMock.MarkAsUploadedFunc: method is nil but topicService.MarkAsUploaded was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockMarkAsUploaded.Lock()
	mock.calls.MarkAsUploaded = append(mock.calls.MarkAsUploaded, callInfo)
	mock.lockMarkAsUploaded.Unlock()
	return mock.MarkAsUploadedFunc(ctx, topicID)
}

func (mock *topicServiceMock) MarkAsUploadedCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}
	mock.lockMarkAsUploaded.RLock()
	calls = mock.calls.MarkAsUploaded
	mock.lockMarkAsUploaded.RUnlock()
	return calls
}
