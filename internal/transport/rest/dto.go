package rest

import (
	"time"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/internal/service/keyword"
	"github.com/Jeetch8/softfix-helper/internal/service/poller"
)

type topicDTO struct {
	ID                        string                   `json:"id"`
	UserID                    string                   `json:"userId"`
	TopicName                 string                   `json:"topicName"`
	Description               string                   `json:"description"`
	Status                    string                   `json:"status"`
	Level                     string                   `json:"level"`
	NarrationScript           *string                  `json:"narrationScript"`
	NarrationScriptVariations []domain.Variation       `json:"narrationScriptVariations"`
	GeneratedTitles           []string                 `json:"generatedTitles"`
	TitlePromptVariations     []domain.Variation       `json:"titlePromptVariations"`
	SelectedTitle             *string                  `json:"selectedTitle"`
	GeneratedThumbnails       []domain.Thumbnail       `json:"generatedThumbnails"`
	ThumbnailPromptResults    []domain.ThumbnailResult `json:"thumbnailPromptResults"`
	SelectedThumbnail         *string                  `json:"selectedThumbnail"`
	SEODescription            *string                  `json:"seoDescription"`
	Tags                      []string                 `json:"tags"`
	Timestamps                []domain.Timestamp       `json:"timestamps"`
	AudioURL                  *string                  `json:"audioUrl"`
	ErrorMessage              *string                  `json:"errorMessage"`
	ProcessedAt               *time.Time               `json:"processedAt"`
	SourceKeywordID           *string                  `json:"sourceKeywordId"`
	CreatedAt                 time.Time                `json:"createdAt"`
	UpdatedAt                 time.Time                `json:"updatedAt"`
}

func toTopicDTO(t *domain.Topic) topicDTO {
	dto := topicDTO{
		ID:                        t.ID.String(),
		UserID:                    t.UserID,
		TopicName:                 t.TopicName,
		Description:               t.Description,
		Status:                    string(t.Stage.Status()),
		Level:                     string(t.Stage.Level()),
		NarrationScript:           t.NarrationScript,
		NarrationScriptVariations: nonNil(t.NarrationScriptVariations),
		GeneratedTitles:           nonNil(t.GeneratedTitles),
		TitlePromptVariations:     nonNil(t.TitlePromptVariations),
		SelectedTitle:             t.SelectedTitle,
		GeneratedThumbnails:       nonNil(t.GeneratedThumbnails),
		ThumbnailPromptResults:    nonNil(t.ThumbnailPromptResults),
		SelectedThumbnail:         t.SelectedThumbnail,
		SEODescription:            t.SEODescription,
		Tags:                      nonNil(t.Tags),
		Timestamps:                nonNil(t.Timestamps),
		AudioURL:                  t.AudioURL,
		ErrorMessage:              t.ErrorMessage,
		ProcessedAt:               t.ProcessedAt,
		CreatedAt:                 t.CreatedAt,
		UpdatedAt:                 t.UpdatedAt,
	}
	if t.SourceKeywordID != nil {
		id := t.SourceKeywordID.String()
		dto.SourceKeywordID = &id
	}
	return dto
}

func toTopicDTOs(ts []*domain.Topic) []topicDTO {
	out := make([]topicDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTopicDTO(t))
	}
	return out
}

type topicStatsDTO struct {
	Pending    int            `json:"pending"`
	Processing int            `json:"processing"`
	Completed  int            `json:"completed"`
	Failed     int            `json:"failed"`
	Total      int            `json:"total"`
	ByLevel    map[string]int `json:"byLevel"`
}

func toTopicStatsDTO(s domain.TopicStats) topicStatsDTO {
	byLevel := make(map[string]int, len(s.ByLevel))
	for l, n := range s.ByLevel {
		byLevel[string(l)] = n
	}
	return topicStatsDTO{
		Pending:    s.Pending,
		Processing: s.Processing,
		Completed:  s.Completed,
		Failed:     s.Failed,
		Total:      s.Total,
		ByLevel:    byLevel,
	}
}

type processResultDTO struct {
	Released  int `json:"released"`
	Claimed   int `json:"claimed"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Lost      int `json:"lost"`
}

func toProcessResultDTO(r poller.Result) processResultDTO {
	return processResultDTO{
		Released:  r.Released,
		Claimed:   r.Claimed,
		Completed: r.Completed,
		Failed:    r.Failed,
		Lost:      r.Lost + r.Interrupted,
	}
}

type keywordDTO struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	Keyword              string    `json:"keyword"`
	Competition          float64   `json:"competition"`
	Overall              float64   `json:"overall"`
	SearchVolume         int64     `json:"searchVolume"`
	ThirtyDayAgoSearches int64     `json:"thirtyDayAgoSearches"`
	NumberOfWords        int       `json:"numberOfWords"`
	Timestamp            *int64    `json:"timestamp"`
	AddedToTitle         bool      `json:"addedToTitle"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func toKeywordDTO(k *domain.Keyword) keywordDTO {
	return keywordDTO{
		ID:                   k.ID.String(),
		UserID:               k.UserID,
		Keyword:              k.Keyword,
		Competition:          k.Competition,
		Overall:              k.Overall,
		SearchVolume:         k.SearchVolume,
		ThirtyDayAgoSearches: k.ThirtyDayAgoSearches,
		NumberOfWords:        k.NumberOfWords,
		Timestamp:            k.Timestamp,
		AddedToTitle:         k.AddedToTitle,
		CreatedAt:            k.CreatedAt,
		UpdatedAt:            k.UpdatedAt,
	}
}

func toKeywordDTOs(ks []*domain.Keyword) []keywordDTO {
	out := make([]keywordDTO, 0, len(ks))
	for _, k := range ks {
		out = append(out, toKeywordDTO(k))
	}
	return out
}

type keywordStatsDTO struct {
	TotalKeywords       int     `json:"totalKeywords"`
	AvgOverall          float64 `json:"avgOverall"`
	AvgCompetition      float64 `json:"avgCompetition"`
	AvgSearchVolume     int64   `json:"avgSearchVolume"`
	HighScoreCount      int     `json:"highScoreCount"`
	LowCompetitionCount int     `json:"lowCompetitionCount"`
}

type rowErrorDTO struct {
	Row     int    `json:"row"`
	Keyword string `json:"keyword,omitempty"`
	Message string `json:"message"`
}

type fileResultDTO struct {
	FileName        string        `json:"fileName"`
	Skipped         bool          `json:"skipped"`
	SkipReason      string        `json:"skipReason,omitempty"`
	TotalKeywords   int           `json:"totalKeywords"`
	StoredKeywords  int           `json:"storedKeywords"`
	UpdatedKeywords int           `json:"updatedKeywords"`
	SkippedKeywords int           `json:"skippedKeywords"`
	Errors          []rowErrorDTO `json:"errors"`
}

func toFileResultDTO(f keyword.FileResult) fileResultDTO {
	errs := make([]rowErrorDTO, 0, len(f.Errors))
	for _, e := range f.Errors {
		errs = append(errs, rowErrorDTO{Row: e.Row, Keyword: e.Keyword, Message: e.Message})
	}
	return fileResultDTO{
		FileName:        f.FileName,
		Skipped:         f.Skipped,
		SkipReason:      f.SkipReason,
		TotalKeywords:   f.TotalKeywords,
		StoredKeywords:  f.StoredKeywords,
		UpdatedKeywords: f.UpdatedKeywords,
		SkippedKeywords: f.SkippedKeywords,
		Errors:          errs,
	}
}

type importResultDTO struct {
	FilesProcessed  int             `json:"filesProcessed"`
	FilesSkipped    int             `json:"filesSkipped"`
	TotalKeywords   int             `json:"totalKeywords"`
	StoredKeywords  int             `json:"storedKeywords"`
	UpdatedKeywords int             `json:"updatedKeywords"`
	SkippedKeywords int             `json:"skippedKeywords"`
	Results         []fileResultDTO `json:"results"`
}

func toImportResultDTO(r keyword.ImportResult) importResultDTO {
	files := make([]fileResultDTO, 0, len(r.Files))
	for _, f := range r.Files {
		files = append(files, toFileResultDTO(f))
	}
	return importResultDTO{
		FilesProcessed:  r.FilesProcessed,
		FilesSkipped:    r.FilesSkipped,
		TotalKeywords:   r.TotalKeywords,
		StoredKeywords:  r.StoredKeywords,
		UpdatedKeywords: r.UpdatedKeywords,
		SkippedKeywords: r.SkippedKeywords,
		Results:         files,
	}
}

type localFileDTO struct {
	FileName   string    `json:"fileName"`
	Path       string    `json:"path"`
	SizeBytes  int64     `json:"sizeBytes"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

type localListingDTO struct {
	Directory string         `json:"directory"`
	Files     []localFileDTO `json:"files"`
}

func toLocalListingDTO(l keyword.LocalListing) localListingDTO {
	files := make([]localFileDTO, 0, len(l.Files))
	for _, f := range l.Files {
		files = append(files, localFileDTO{FileName: f.FileName, Path: f.Path, SizeBytes: f.SizeBytes, ModifiedAt: f.ModifiedAt})
	}
	return localListingDTO{Directory: l.Directory, Files: files}
}

type ideaDTO struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Competition          float64   `json:"competition"`
	Overall              float64   `json:"overall"`
	SearchVolume         int64     `json:"searchVolume"`
	ThirtyDayAgoSearches int64     `json:"thirtyDayAgoSearches"`
	NumberOfWords        int       `json:"numberOfWords"`
	ConvertedToTopic     bool      `json:"convertedToTopic"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func toIdeaDTO(i *domain.Idea) ideaDTO {
	return ideaDTO{
		ID:                   i.ID.String(),
		UserID:               i.UserID,
		Title:                i.Title,
		Description:          i.Description,
		Competition:          i.Competition,
		Overall:              i.Overall,
		SearchVolume:         i.SearchVolume,
		ThirtyDayAgoSearches: i.ThirtyDayAgoSearches,
		NumberOfWords:        i.NumberOfWords,
		ConvertedToTopic:     i.ConvertedToTopic,
		CreatedAt:            i.CreatedAt,
		UpdatedAt:            i.UpdatedAt,
	}
}

func toIdeaDTOs(is []*domain.Idea) []ideaDTO {
	out := make([]ideaDTO, 0, len(is))
	for _, i := range is {
		out = append(out, toIdeaDTO(i))
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
