package rest

import (
	"context"
	"sync"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/internal/service/keyword"
	"github.com/google/uuid"
)

var _ keywordService = &keywordServiceMock{}

type keywordServiceMock struct {
	ListKeywordsFunc    func(ctx context.Context, input keyword.ListKeywordsInput) ([]*domain.Keyword, domain.Pagination, error)
	StatsFunc           func(ctx context.Context) (domain.KeywordStats, error)
	GetKeywordFunc      func(ctx context.Context, id uuid.UUID) (*domain.Keyword, error)
	UpdateKeywordFunc   func(ctx context.Context, input keyword.UpdateKeywordInput) (*domain.Keyword, error)
	DeleteKeywordFunc   func(ctx context.Context, id uuid.UUID) error
	ImportFilesFunc     func(ctx context.Context, files []keyword.File) (keyword.ImportResult, error)
	ListLocalFilesFunc  func(ctx context.Context, dir string) (keyword.LocalListing, error)
	ImportDirectoryFunc func(ctx context.Context, dir string) (keyword.ImportResult, error)
	ImportFileFunc      func(ctx context.Context, path string) (keyword.FileResult, error)
	AddToTitleFunc      func(ctx context.Context, id uuid.UUID) (*domain.Topic, *domain.Keyword, error)
	RemoveFromTitleFunc func(ctx context.Context, id uuid.UUID) (*domain.Keyword, error)
	AddToIdeasFunc      func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	RemoveFromIdeasFunc func(ctx context.Context, ideaID uuid.UUID) (*domain.Keyword, error)

	calls struct {
		ListKeywords []struct {
			Ctx   context.Context
			Input keyword.ListKeywordsInput
		}
		Stats []struct {
			Ctx context.Context
		}
		GetKeyword []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UpdateKeyword []struct {
			Ctx   context.Context
			Input keyword.UpdateKeywordInput
		}
		DeleteKeyword []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ImportFiles []struct {
			Ctx   context.Context
			Files []keyword.File
		}
		ListLocalFiles []struct {
			Ctx context.Context
			Dir string
		}
		ImportDirectory []struct {
			Ctx context.Context
			Dir string
		}
		ImportFile []struct {
			Ctx  context.Context
			Path string
		}
		AddToTitle []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		RemoveFromTitle []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		AddToIdeas []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		RemoveFromIdeas []struct {
			Ctx    context.Context
			IdeaID uuid.UUID
		}
	}
	lockListKeywords    sync.RWMutex
	lockStats           sync.RWMutex
	lockGetKeyword      sync.RWMutex
	lockUpdateKeyword   sync.RWMutex
	lockDeleteKeyword   sync.RWMutex
	lockImportFiles     sync.RWMutex
	lockListLocalFiles  sync.RWMutex
	lockImportDirectory sync.RWMutex
	lockImportFile      sync.RWMutex
	lockAddToTitle      sync.RWMutex
	lockRemoveFromTitle sync.RWMutex
	lockAddToIdeas      sync.RWMutex
	lockRemoveFromIdeas sync.RWMutex
}

func (mock *keywordServiceMock) ListKeywords(ctx context.Context, input keyword.ListKeywordsInput) ([]*domain.Keyword, domain.Pagination, error) {
	if mock.ListKeywordsFunc == nil {
		panic("keywordServiceMock.ListKeywordsFunc: method is nil but keywordService.ListKeywords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input keyword.ListKeywordsInput
	}{Ctx: ctx, Input: input}
	mock.lockListKeywords.Lock()
	mock.calls.ListKeywords = append(mock.calls.ListKeywords, callInfo)
	mock.lockListKeywords.Unlock()
	return mock.ListKeywordsFunc(ctx, input)
}

func (mock *keywordServiceMock) ListKeywordsCalls() []struct {
	Ctx   context.Context
	Input keyword.ListKeywordsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input keyword.ListKeywordsInput
	}
	mock.lockListKeywords.RLock()
	calls = mock.calls.ListKeywords
	mock.lockListKeywords.RUnlock()
	return calls
}

func (mock *keywordServiceMock) Stats(ctx context.Context) (domain.KeywordStats, error) {
	if mock.StatsFunc == nil {
		panic("keywordServiceMock.StatsFunc: method is nil but keywordService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *keywordServiceMock) StatsCalls() []struct {
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

func (mock *keywordServiceMock) GetKeyword(ctx context.Context, id uuid.UUID) (*domain.Keyword, error) {
	if mock.GetKeywordFunc == nil {
		panic("keywordServiceMock.GetKeywordFunc: method is nil but keywordService.GetKeyword was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetKeyword.Lock()
	mock.calls.GetKeyword = append(mock.calls.GetKeyword, callInfo)
	mock.lockGetKeyword.Unlock()
	return mock.GetKeywordFunc(ctx, id)
}

func (mock *keywordServiceMock) GetKeywordCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetKeyword.RLock()
	calls = mock.calls.GetKeyword
	mock.lockGetKeyword.RUnlock()
	return calls
}

func (mock *keywordServiceMock) UpdateKeyword(ctx context.Context, input keyword.UpdateKeywordInput) (*domain.Keyword, error) {
	if mock.UpdateKeywordFunc == nil {
		panic("keywordServiceMock.UpdateKeywordFunc: method is nil but keywordService.UpdateKeyword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input keyword.UpdateKeywordInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateKeyword.Lock()
	mock.calls.UpdateKeyword = append(mock.calls.UpdateKeyword, callInfo)
	mock.lockUpdateKeyword.Unlock()
	return mock.UpdateKeywordFunc(ctx, input)
}

func (mock *keywordServiceMock) UpdateKeywordCalls() []struct {
	Ctx   context.Context
	Input keyword.UpdateKeywordInput
} {
	var calls []struct {
		Ctx   context.Context
		Input keyword.UpdateKeywordInput
	}
	mock.lockUpdateKeyword.RLock()
	calls = mock.calls.UpdateKeyword
	mock.lockUpdateKeyword.RUnlock()
	return calls
}

func (mock *keywordServiceMock) DeleteKeyword(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteKeywordFunc == nil {
		panic("keywordServiceMock.DeleteKeywordFunc: method is nil but keywordService.DeleteKeyword was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteKeyword.Lock()
	mock.calls.DeleteKeyword = append(mock.calls.DeleteKeyword, callInfo)
	mock.lockDeleteKeyword.Unlock()
	return mock.DeleteKeywordFunc(ctx, id)
}

func (mock *keywordServiceMock) DeleteKeywordCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDeleteKeyword.RLock()
	calls = mock.calls.DeleteKeyword
	mock.lockDeleteKeyword.RUnlock()
	return calls
}

func (mock *keywordServiceMock) ImportFiles(ctx context.Context, files []keyword.File) (keyword.ImportResult, error) {
	if mock.ImportFilesFunc == nil {
		panic("keywordServiceMock.ImportFilesFunc: method is nil but keywordService.ImportFiles was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Files []keyword.File
	}{Ctx: ctx, Files: files}
	mock.lockImportFiles.Lock()
	mock.calls.ImportFiles = append(mock.calls.ImportFiles, callInfo)
	mock.lockImportFiles.Unlock()
	return mock.ImportFilesFunc(ctx, files)
}

func (mock *keywordServiceMock) ImportFilesCalls() []struct {
	Ctx   context.Context
	Files []keyword.File
} {
	var calls []struct {
		Ctx   context.Context
		Files []keyword.File
	}
	mock.lockImportFiles.RLock()
	calls = mock.calls.ImportFiles
	mock.lockImportFiles.RUnlock()
	return calls
}

func (mock *keywordServiceMock) ListLocalFiles(ctx context.Context, dir string) (keyword.LocalListing, error) {
	if mock.ListLocalFilesFunc == nil {
		panic("keywordServiceMock.ListLocalFilesFunc: method is nil but keywordService.ListLocalFiles was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Dir string
	}{Ctx: ctx, Dir: dir}
	mock.lockListLocalFiles.Lock()
	mock.calls.ListLocalFiles = append(mock.calls.ListLocalFiles, callInfo)
	mock.lockListLocalFiles.Unlock()
	return mock.ListLocalFilesFunc(ctx, dir)
}

func (mock *keywordServiceMock) ListLocalFilesCalls() []struct {
	Ctx context.Context
	Dir string
} {
	var calls []struct {
		Ctx context.Context
		Dir string
	}
	mock.lockListLocalFiles.RLock()
	calls = mock.calls.ListLocalFiles
	mock.lockListLocalFiles.RUnlock()
	return calls
}

func (mock *keywordServiceMock) ImportDirectory(ctx context.Context, dir string) (keyword.ImportResult, error) {
	if mock.ImportDirectoryFunc == nil {
		panic("keywordServiceMock.ImportDirectoryFunc: method is nil but keywordService.ImportDirectory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Dir string
	}{Ctx: ctx, Dir: dir}
	mock.lockImportDirectory.Lock()
	mock.calls.ImportDirectory = append(mock.calls.ImportDirectory, callInfo)
	mock.lockImportDirectory.Unlock()
	return mock.ImportDirectoryFunc(ctx, dir)
}

func (mock *keywordServiceMock) ImportDirectoryCalls() []struct {
	Ctx context.Context
	Dir string
} {
	var calls []struct {
		Ctx context.Context
		Dir string
	}
	mock.lockImportDirectory.RLock()
	calls = mock.calls.ImportDirectory
	mock.lockImportDirectory.RUnlock()
	return calls
}

func (mock *keywordServiceMock) ImportFile(ctx context.Context, path string) (keyword.FileResult, error) {
	if mock.ImportFileFunc == nil {
		panic("keywordServiceMock.ImportFileFunc: method is nil but keywordService.ImportFile was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Path string
	}{Ctx: ctx, Path: path}
	mock.lockImportFile.Lock()
	mock.calls.ImportFile = append(mock.calls.ImportFile, callInfo)
	mock.lockImportFile.Unlock()
	return mock.ImportFileFunc(ctx, path)
}

func (mock *keywordServiceMock) ImportFileCalls() []struct {
	Ctx  context.Context
	Path string
} {
	var calls []struct {
		Ctx  context.Context
		Path string
	}
	mock.lockImportFile.RLock()
	calls = mock.calls.ImportFile
	mock.lockImportFile.RUnlock()
	return calls
}

func (mock *keywordServiceMock) AddToTitle(ctx context.Context, id uuid.UUID) (*domain.Topic, *domain.Keyword, error) {
	if mock.AddToTitleFunc == nil {
		panic("keywordServiceMock.AddToTitleFunc: method is nil but keywordService.AddToTitle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockAddToTitle.Lock()
	mock.calls.AddToTitle = append(mock.calls.AddToTitle, callInfo)
	mock.lockAddToTitle.Unlock()
	return mock.AddToTitleFunc(ctx, id)
}

func (mock *keywordServiceMock) AddToTitleCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockAddToTitle.RLock()
	calls = mock.calls.AddToTitle
	mock.lockAddToTitle.RUnlock()
	return calls
}

func (mock *keywordServiceMock) RemoveFromTitle(ctx context.Context, id uuid.UUID) (*domain.Keyword, error) {
	if mock.RemoveFromTitleFunc == nil {
		panic("keywordServiceMock.RemoveFromTitleFunc: method is nil but keywordService.RemoveFromTitle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockRemoveFromTitle.Lock()
	mock.calls.RemoveFromTitle = append(mock.calls.RemoveFromTitle, callInfo)
	mock.lockRemoveFromTitle.Unlock()
	return mock.RemoveFromTitleFunc(ctx, id)
}

func (mock *keywordServiceMock) RemoveFromTitleCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockRemoveFromTitle.RLock()
	calls = mock.calls.RemoveFromTitle
	mock.lockRemoveFromTitle.RUnlock()
	return calls
}

func (mock *keywordServiceMock) AddToIdeas(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if mock.AddToIdeasFunc == nil {
		panic("keywordServiceMock.AddToIdeasFunc: method is nil but keywordService.AddToIdeas was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockAddToIdeas.Lock()
	mock.calls.AddToIdeas = append(mock.calls.AddToIdeas, callInfo)
	mock.lockAddToIdeas.Unlock()
	return mock.AddToIdeasFunc(ctx, id)
}

func (mock *keywordServiceMock) AddToIdeasCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockAddToIdeas.RLock()
	calls = mock.calls.AddToIdeas
	mock.lockAddToIdeas.RUnlock()
	return calls
}

func (mock *keywordServiceMock) RemoveFromIdeas(ctx context.Context, ideaID uuid.UUID) (*domain.Keyword, error) {
	if mock.RemoveFromIdeasFunc == nil {
		panic("keywordServiceMock.RemoveFromIdeasFunc: method is nil but keywordService.RemoveFromIdeas was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID uuid.UUID
	}{Ctx: ctx, IdeaID: ideaID}
	mock.lockRemoveFromIdeas.Lock()
	mock.calls.RemoveFromIdeas = append(mock.calls.RemoveFromIdeas, callInfo)
	mock.lockRemoveFromIdeas.Unlock()
	return mock.RemoveFromIdeasFunc(ctx, ideaID)
}

func (mock *keywordServiceMock) RemoveFromIdeasCalls() []struct {
	Ctx    context.Context
	IdeaID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		IdeaID uuid.UUID
	}
	mock.lockRemoveFromIdeas.RLock()
	calls = mock.calls.RemoveFromIdeas
	mock.lockRemoveFromIdeas.RUnlock()
	return calls
}
