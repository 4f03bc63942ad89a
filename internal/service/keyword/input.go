package keyword

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// ListKeywordsInput holds the filter, sort and pagination parameters of a keyword list.
type ListKeywordsInput struct {
	Search          string
	MinOverall      *float64
	MaxOverall      *float64
	MinSearchVolume *int64
	MaxSearchVolume *int64
	MinCompetition  *float64
	MaxCompetition  *float64
	AddedToTitle    *bool
	SortBy          string
	SortOrder       string
	Page            int
	Limit           int
}

// Validate checks all fields and collects all errors.
func (i ListKeywordsInput) Validate() error {
	var errs []domain.FieldError

	if i.SortBy != "" && !domain.KeywordSortField(i.SortBy).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "unsupported sort field"})
	}
	if i.SortOrder != "" && !domain.SortOrder(i.SortOrder).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortOrder", Message: "must be asc or desc"})
	}
	if i.Page < 0 || i.Page > MaxPage {
		errs = append(errs, domain.FieldError{Field: "page", Message: fmt.Sprintf("must be between 1 and %d", MaxPage)})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxLimit)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListKeywordsInput) filter() domain.KeywordFilter {
	f := domain.KeywordFilter{
		Search:          strings.TrimSpace(i.Search),
		MinOverall:      i.MinOverall,
		MaxOverall:      i.MaxOverall,
		MinSearchVolume: i.MinSearchVolume,
		MaxSearchVolume: i.MaxSearchVolume,
		MinCompetition:  i.MinCompetition,
		MaxCompetition:  i.MaxCompetition,
		AddedToTitle:    i.AddedToTitle,
		SortBy:          domain.KeywordSortField(i.SortBy),
		SortOrder:       domain.SortOrder(i.SortOrder),
		Page:            i.Page,
		Limit:           i.Limit,
	}
	if f.SortBy == "" {
		f.SortBy = domain.KeywordSortOverall
	}
	if f.SortOrder == "" {
		f.SortOrder = domain.SortDesc
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	return f
}

// UpdateKeywordInput holds a partial keyword edit.
type UpdateKeywordInput struct {
	ID                   uuid.UUID
	Keyword              *string
	Competition          *float64
	Overall              *float64
	SearchVolume         *int64
	ThirtyDayAgoSearches *int64
	NumberOfWords        *int
	Timestamp            *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateKeywordInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Keyword != nil && strings.TrimSpace(*i.Keyword) == "" {
		errs = append(errs, domain.FieldError{Field: "keyword", Message: "must not be empty"})
	}
	if i.Overall != nil && (math.IsNaN(*i.Overall) || *i.Overall <= domain.MinOverall) {
		errs = append(errs, domain.FieldError{Field: "overall", Message: "must be greater than 50"})
	}
	if i.Competition != nil && (math.IsNaN(*i.Competition) || *i.Competition < 0 || *i.Competition > 100) {
		errs = append(errs, domain.FieldError{Field: "competition", Message: "must be between 0 and 100"})
	}
	if i.SearchVolume != nil && *i.SearchVolume < 0 {
		errs = append(errs, domain.FieldError{Field: "searchVolume", Message: "must not be negative"})
	}
	if i.ThirtyDayAgoSearches != nil && *i.ThirtyDayAgoSearches < 0 {
		errs = append(errs, domain.FieldError{Field: "thirtyDayAgoSearches", Message: "must not be negative"})
	}
	if i.NumberOfWords != nil && *i.NumberOfWords < 1 {
		errs = append(errs, domain.FieldError{Field: "numberOfWords", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateKeywordInput) patch() domain.KeywordPatch {
	p := domain.KeywordPatch{
		Competition:          i.Competition,
		Overall:              i.Overall,
		SearchVolume:         i.SearchVolume,
		ThirtyDayAgoSearches: i.ThirtyDayAgoSearches,
		NumberOfWords:        i.NumberOfWords,
		Timestamp:            i.Timestamp,
	}
	if i.Keyword != nil {
		kw := strings.TrimSpace(*i.Keyword)
		p.Keyword = &kw
	}
	return p
}
