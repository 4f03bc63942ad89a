package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MinOverall is the exclusive lower bound for a stored overall score.
const MinOverall = 50

// Metrics are the keyword quality numbers shared by keywords and ideas.
type Metrics struct {
	Competition          float64
	Overall              float64
	SearchVolume         int64
	ThirtyDayAgoSearches int64
	NumberOfWords        int
}

// Keyword is an imported, scored candidate phrase.
type Keyword struct {
	ID      uuid.UUID
	UserID  string
	Keyword string
	Metrics
	Timestamp    *int64
	AddedToTitle bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// KeywordSortField names a sortable keyword column.
type KeywordSortField string

const (
	KeywordSortOverall              KeywordSortField = "overall"
	KeywordSortSearchVolume         KeywordSortField = "searchVolume"
	KeywordSortCompetition          KeywordSortField = "competition"
	KeywordSortThirtyDayAgoSearches KeywordSortField = "thirtyDayAgoSearches"
	KeywordSortNumberOfWords        KeywordSortField = "numberOfWords"
	KeywordSortKeyword              KeywordSortField = "keyword"
	KeywordSortCreatedAt            KeywordSortField = "createdAt"
)

func (f KeywordSortField) IsValid() bool {
	switch f {
	case KeywordSortOverall, KeywordSortSearchVolume, KeywordSortCompetition,
		KeywordSortThirtyDayAgoSearches, KeywordSortNumberOfWords,
		KeywordSortKeyword, KeywordSortCreatedAt:
		return true
	}
	return false
}

// KeywordFilter contains filtering, sorting and pagination parameters for keyword lists.
type KeywordFilter struct {
	Search          string
	MinOverall      *float64
	MaxOverall      *float64
	MinSearchVolume *int64
	MaxSearchVolume *int64
	MinCompetition  *float64
	MaxCompetition  *float64
	AddedToTitle    *bool
	SortBy          KeywordSortField
	SortOrder       SortOrder
	Page            int
	Limit           int
}

// KeywordStats holds aggregate keyword metrics for one user.
type KeywordStats struct {
	TotalKeywords       int
	AvgOverall          float64
	AvgCompetition      float64
	AvgSearchVolume     int64
	HighScoreCount      int
	LowCompetitionCount int
}

// Pagination describes one page of a list result.
type Pagination struct {
	Total int
	Page  int
	Limit int
	Pages int
}

// NewPagination computes the page count for total items split into pages of limit.
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// KeywordPatch lists the keyword fields to change; nil fields are left as is.
type KeywordPatch struct {
	Keyword              *string
	Competition          *float64
	Overall              *float64
	SearchVolume         *int64
	ThirtyDayAgoSearches *int64
	NumberOfWords        *int
	Timestamp            *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p KeywordPatch) IsEmpty() bool {
	return p.Keyword == nil && p.Competition == nil && p.Overall == nil && p.SearchVolume == nil &&
		p.ThirtyDayAgoSearches == nil && p.NumberOfWords == nil && p.Timestamp == nil
}
