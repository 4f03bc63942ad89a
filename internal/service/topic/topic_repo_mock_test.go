package topic

import (
	"context"
	"sync"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/google/uuid"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc                func(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByIDFunc               func(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
	ListFunc                  func(ctx context.Context, userID string) ([]*domain.Topic, error)
	StatsFunc                 func(ctx context.Context, userID string) (domain.TopicStats, error)
	DeleteFunc                func(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
	DeleteBySourceKeywordFunc func(ctx context.Context, userID string, keywordID uuid.UUID) ([]*domain.Topic, error)
	ResetScriptFunc           func(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
	SetScriptFunc             func(ctx context.Context, userID string, id uuid.UUID, script string) (*domain.Topic, error)
	SaveTitlesFunc            func(ctx context.Context, userID string, id uuid.UUID, titles []string, v domain.Variation, limit int, stage domain.Stage) (*domain.Topic, error)
	SelectTitleFunc           func(ctx context.Context, userID string, id uuid.UUID, title string, stage domain.Stage) (*domain.Topic, error)
	UpdateTitleFunc           func(ctx context.Context, userID string, id uuid.UUID, title string) (*domain.Topic, error)
	SaveThumbnailsFunc        func(ctx context.Context, userID string, id uuid.UUID, thumbs []domain.Thumbnail, results []domain.ThumbnailResult, limit int, stage domain.Stage) (*domain.Topic, error)
	SelectThumbnailFunc       func(ctx context.Context, userID string, id uuid.UUID, url string, stage domain.Stage) (*domain.Topic, error)
	SaveExtraAssetsFunc       func(ctx context.Context, userID string, id uuid.UUID, a domain.ExtraAssets) (*domain.Topic, error)
	MarkEditingFunc           func(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
	MarkUploadedFunc          func(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Topic
		}
		GetByID []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID string
		}
		Stats []struct {
			Ctx    context.Context
			UserID string
		}
		Delete []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
		}
		DeleteBySourceKeyword []struct {
			Ctx       context.Context
			UserID    string
			KeywordID uuid.UUID
		}
		ResetScript []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
		}
		SetScript []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
			Script string
		}
		SaveTitles []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
			Titles []string
			V      domain.Variation
			Limit  int
			Stage  domain.Stage
		}
		SelectTitle []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
			Title  string
			Stage  domain.Stage
		}
		UpdateTitle []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
			Title  string
		}
		SaveThumbnails []struct {
			Ctx     context.Context
			UserID  string
			Id      uuid.UUID
			Thumbs  []domain.Thumbnail
			Results []domain.ThumbnailResult
			Limit   int
			Stage   domain.Stage
		}
		SelectThumbnail []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
			Url    string
			Stage  domain.Stage
		}
		SaveExtraAssets []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
			A      domain.ExtraAssets
		}
		MarkEditing []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
		}
		MarkUploaded []struct {
			Ctx    context.Context
			UserID string
			Id     uuid.UUID
		}
	}
	lockCreate                sync.RWMutex
	lockGetByID               sync.RWMutex
	lockList                  sync.RWMutex
	lockStats                 sync.RWMutex
	lockDelete                sync.RWMutex
	lockDeleteBySourceKeyword sync.RWMutex
	lockResetScript           sync.RWMutex
	lockSetScript             sync.RWMutex
	lockSaveTitles            sync.RWMutex
	lockSelectTitle           sync.RWMutex
	lockUpdateTitle           sync.RWMutex
	lockSaveThumbnails        sync.RWMutex
	lockSelectThumbnail       sync.RWMutex
	lockSaveExtraAssets       sync.RWMutex
	lockMarkEditing           sync.RWMutex
	lockMarkUploaded          sync.RWMutex
}

func (mock *topicRepoMock) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Topic
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Topic
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.Topic
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) List(ctx context.Context, userID string) ([]*domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *topicRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *topicRepoMock) Stats(ctx context.Context, userID string) (domain.TopicStats, error) {
	if mock.StatsFunc == nil {
		panic("topicRepoMock.StatsFunc: method is nil but topicRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, userID)
}

func (mock *topicRepoMock) StatsCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}

func (mock *topicRepoMock) Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
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

func (mock *topicRepoMock) DeleteCalls() []struct {
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

func (mock *topicRepoMock) DeleteBySourceKeyword(ctx context.Context, userID string, keywordID uuid.UUID) ([]*domain.Topic, error) {
	if mock.DeleteBySourceKeywordFunc == nil {
		panic("topicRepoMock.DeleteBySourceKeywordFunc: method is nil but topicRepo.DeleteBySourceKeyword was just called")
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

func (mock *topicRepoMock) DeleteBySourceKeywordCalls() []struct {
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

func (mock *topicRepoMock) ResetScript(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	if mock.ResetScriptFunc == nil {
		panic("topicRepoMock.ResetScriptFunc: method is nil but topicRepo.ResetScript was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockResetScript.Lock()
	mock.calls.ResetScript = append(mock.calls.ResetScript, callInfo)
	mock.lockResetScript.Unlock()
	return mock.ResetScriptFunc(ctx, userID, id)
}

func (mock *topicRepoMock) ResetScriptCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}
	mock.lockResetScript.RLock()
	calls = mock.calls.ResetScript
	mock.lockResetScript.RUnlock()
	return calls
}

func (mock *topicRepoMock) SetScript(ctx context.Context, userID string, id uuid.UUID, script string) (*domain.Topic, error) {
	if mock.SetScriptFunc == nil {
		panic("topicRepoMock.SetScriptFunc: method is nil but topicRepo.SetScript was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Script string
	}{Ctx: ctx, UserID: userID, Id: id, Script: script}
	mock.lockSetScript.Lock()
	mock.calls.SetScript = append(mock.calls.SetScript, callInfo)
	mock.lockSetScript.Unlock()
	return mock.SetScriptFunc(ctx, userID, id, script)
}

func (mock *topicRepoMock) SetScriptCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
	Script string
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Script string
	}
	mock.lockSetScript.RLock()
	calls = mock.calls.SetScript
	mock.lockSetScript.RUnlock()
	return calls
}

func (mock *topicRepoMock) SaveTitles(ctx context.Context, userID string, id uuid.UUID, titles []string, v domain.Variation, limit int, stage domain.Stage) (*domain.Topic, error) {
	if mock.SaveTitlesFunc == nil {
		panic("topicRepoMock.SaveTitlesFunc: method is nil but topicRepo.SaveTitles was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Titles []string
		V      domain.Variation
		Limit  int
		Stage  domain.Stage
	}{Ctx: ctx, UserID: userID, Id: id, Titles: titles, V: v, Limit: limit, Stage: stage}
	mock.lockSaveTitles.Lock()
	mock.calls.SaveTitles = append(mock.calls.SaveTitles, callInfo)
	mock.lockSaveTitles.Unlock()
	return mock.SaveTitlesFunc(ctx, userID, id, titles, v, limit, stage)
}

func (mock *topicRepoMock) SaveTitlesCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
	Titles []string
	V      domain.Variation
	Limit  int
	Stage  domain.Stage
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Titles []string
		V      domain.Variation
		Limit  int
		Stage  domain.Stage
	}
	mock.lockSaveTitles.RLock()
	calls = mock.calls.SaveTitles
	mock.lockSaveTitles.RUnlock()
	return calls
}

func (mock *topicRepoMock) SelectTitle(ctx context.Context, userID string, id uuid.UUID, title string, stage domain.Stage) (*domain.Topic, error) {
	if mock.SelectTitleFunc == nil {
		panic("topicRepoMock.SelectTitleFunc: method is nil but topicRepo.SelectTitle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Title  string
		Stage  domain.Stage
	}{Ctx: ctx, UserID: userID, Id: id, Title: title, Stage: stage}
	mock.lockSelectTitle.Lock()
	mock.calls.SelectTitle = append(mock.calls.SelectTitle, callInfo)
	mock.lockSelectTitle.Unlock()
	return mock.SelectTitleFunc(ctx, userID, id, title, stage)
}

func (mock *topicRepoMock) SelectTitleCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
	Title  string
	Stage  domain.Stage
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Title  string
		Stage  domain.Stage
	}
	mock.lockSelectTitle.RLock()
	calls = mock.calls.SelectTitle
	mock.lockSelectTitle.RUnlock()
	return calls
}

func (mock *topicRepoMock) UpdateTitle(ctx context.Context, userID string, id uuid.UUID, title string) (*domain.Topic, error) {
	if mock.UpdateTitleFunc == nil {
		panic("topicRepoMock.UpdateTitleFunc: method is nil but topicRepo.UpdateTitle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Title  string
	}{Ctx: ctx, UserID: userID, Id: id, Title: title}
	mock.lockUpdateTitle.Lock()
	mock.calls.UpdateTitle = append(mock.calls.UpdateTitle, callInfo)
	mock.lockUpdateTitle.Unlock()
	return mock.UpdateTitleFunc(ctx, userID, id, title)
}

func (mock *topicRepoMock) UpdateTitleCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
	Title  string
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Title  string
	}
	mock.lockUpdateTitle.RLock()
	calls = mock.calls.UpdateTitle
	mock.lockUpdateTitle.RUnlock()
	return calls
}

func (mock *topicRepoMock) SaveThumbnails(ctx context.Context, userID string, id uuid.UUID, thumbs []domain.Thumbnail, results []domain.ThumbnailResult, limit int, stage domain.Stage) (*domain.Topic, error) {
	if mock.SaveThumbnailsFunc == nil {
		panic("topicRepoMock.SaveThumbnailsFunc: method is nil but topicRepo.SaveThumbnails was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  string
		Id      uuid.UUID
		Thumbs  []domain.Thumbnail
		Results []domain.ThumbnailResult
		Limit   int
		Stage   domain.Stage
	}{Ctx: ctx, UserID: userID, Id: id, Thumbs: thumbs, Results: results, Limit: limit, Stage: stage}
	mock.lockSaveThumbnails.Lock()
	mock.calls.SaveThumbnails = append(mock.calls.SaveThumbnails, callInfo)
	mock.lockSaveThumbnails.Unlock()
	return mock.SaveThumbnailsFunc(ctx, userID, id, thumbs, results, limit, stage)
}

func (mock *topicRepoMock) SaveThumbnailsCalls() []struct {
	Ctx     context.Context
	UserID  string
	Id      uuid.UUID
	Thumbs  []domain.Thumbnail
	Results []domain.ThumbnailResult
	Limit   int
	Stage   domain.Stage
} {
	var calls []struct {
		Ctx     context.Context
		UserID  string
		Id      uuid.UUID
		Thumbs  []domain.Thumbnail
		Results []domain.ThumbnailResult
		Limit   int
		Stage   domain.Stage
	}
	mock.lockSaveThumbnails.RLock()
	calls = mock.calls.SaveThumbnails
	mock.lockSaveThumbnails.RUnlock()
	return calls
}

func (mock *topicRepoMock) SelectThumbnail(ctx context.Context, userID string, id uuid.UUID, url string, stage domain.Stage) (*domain.Topic, error) {
	if mock.SelectThumbnailFunc == nil {
		panic("topicRepoMock.SelectThumbnailFunc: method is nil but topicRepo.SelectThumbnail was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Url    string
		Stage  domain.Stage
	}{Ctx: ctx, UserID: userID, Id: id, Url: url, Stage: stage}
	mock.lockSelectThumbnail.Lock()
	mock.calls.SelectThumbnail = append(mock.calls.SelectThumbnail, callInfo)
	mock.lockSelectThumbnail.Unlock()
	return mock.SelectThumbnailFunc(ctx, userID, id, url, stage)
}

func (mock *topicRepoMock) SelectThumbnailCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
	Url    string
	Stage  domain.Stage
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		Url    string
		Stage  domain.Stage
	}
	mock.lockSelectThumbnail.RLock()
	calls = mock.calls.SelectThumbnail
	mock.lockSelectThumbnail.RUnlock()
	return calls
}

func (mock *topicRepoMock) SaveExtraAssets(ctx context.Context, userID string, id uuid.UUID, a domain.ExtraAssets) (*domain.Topic, error) {
	if mock.SaveExtraAssetsFunc == nil {
		panic("topicRepoMock.SaveExtraAssetsFunc: method is nil but topicRepo.SaveExtraAssets was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		A      domain.ExtraAssets
	}{Ctx: ctx, UserID: userID, Id: id, A: a}
	mock.lockSaveExtraAssets.Lock()
	mock.calls.SaveExtraAssets = append(mock.calls.SaveExtraAssets, callInfo)
	mock.lockSaveExtraAssets.Unlock()
	return mock.SaveExtraAssetsFunc(ctx, userID, id, a)
}

func (mock *topicRepoMock) SaveExtraAssetsCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
	A      domain.ExtraAssets
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
		A      domain.ExtraAssets
	}
	mock.lockSaveExtraAssets.RLock()
	calls = mock.calls.SaveExtraAssets
	mock.lockSaveExtraAssets.RUnlock()
	return calls
}

func (mock *topicRepoMock) MarkEditing(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	if mock.MarkEditingFunc == nil {
		panic("topicRepoMock.MarkEditingFunc: method is nil but topicRepo.MarkEditing was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockMarkEditing.Lock()
	mock.calls.MarkEditing = append(mock.calls.MarkEditing, callInfo)
	mock.lockMarkEditing.Unlock()
	return mock.MarkEditingFunc(ctx, userID, id)
}

func (mock *topicRepoMock) MarkEditingCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}
	mock.lockMarkEditing.RLock()
	calls = mock.calls.MarkEditing
	mock.lockMarkEditing.RUnlock()
	return calls
}

func (mock *topicRepoMock) MarkUploaded(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error) {
	if mock.MarkUploadedFunc == nil {
		panic("topicRepoMock.MarkUploadedFunc: method is nil but topicRepo.MarkUploaded was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockMarkUploaded.Lock()
	mock.calls.MarkUploaded = append(mock.calls.MarkUploaded, callInfo)
	mock.lockMarkUploaded.Unlock()
	return mock.MarkUploadedFunc(ctx, userID, id)
}

func (mock *topicRepoMock) MarkUploadedCalls() []struct {
	Ctx    context.Context
	UserID string
	Id     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID string
		Id     uuid.UUID
	}
	mock.lockMarkUploaded.RLock()
	calls = mock.calls.MarkUploaded
	mock.lockMarkUploaded.RUnlock()
	return calls
}
