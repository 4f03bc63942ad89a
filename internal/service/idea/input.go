package idea

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

const (
	maxTitleLen       = 300
	maxDescriptionLen = 5000
)

// CreateIdeaInput holds the parameters for a hand-written idea.
type CreateIdeaInput struct {
	Title       string
	Description string
	Metrics     domain.Metrics
}

// Validate checks all fields and collects all errors.
func (i CreateIdeaInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	errs = append(errs, validateMetrics(i.Metrics)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateMetrics(m domain.Metrics) []domain.FieldError {
	var errs []domain.FieldError
	if math.IsNaN(m.Competition) || m.Competition < 0 || m.Competition > 100 {
		errs = append(errs, domain.FieldError{Field: "competition", Message: "must be between 0 and 100"})
	}
	if math.IsNaN(m.Overall) || m.Overall < 0 {
		errs = append(errs, domain.FieldError{Field: "overall", Message: "must not be negative"})
	}
	if m.SearchVolume < 0 {
		errs = append(errs, domain.FieldError{Field: "searchVolume", Message: "must not be negative"})
	}
	if m.ThirtyDayAgoSearches < 0 {
		errs = append(errs, domain.FieldError{Field: "thirtyDayAgoSearches", Message: "must not be negative"})
	}
	if m.NumberOfWords < 0 {
		errs = append(errs, domain.FieldError{Field: "numberOfWords", Message: "must not be negative"})
	}
	return errs
}

// ListIdeasInput holds the search, sort and pagination parameters of an idea list.
type ListIdeasInput struct {
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Validate checks all fields and collects all errors.
func (i ListIdeasInput) Validate() error {
	var errs []domain.FieldError

	if i.SortBy != "" && !domain.IdeaSortField(i.SortBy).IsValid() {
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

func (i ListIdeasInput) filter() domain.IdeaFilter {
	f := domain.IdeaFilter{
		Search:    strings.TrimSpace(i.Search),
		SortBy:    domain.IdeaSortField(i.SortBy),
		SortOrder: domain.SortOrder(i.SortOrder),
		Page:      i.Page,
		Limit:     i.Limit,
	}
	if f.SortBy == "" {
		f.SortBy = domain.IdeaSortCreatedAt
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

// UpdateIdeaInput holds a partial idea edit.
type UpdateIdeaInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateIdeaInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "must not be empty"})
		}
		if utf8.RuneCountInString(title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
		}
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateIdeaInput) patch() domain.IdeaPatch {
	var p domain.IdeaPatch
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		p.Title = &t
	}
	if i.Description != nil {
		d := strings.TrimSpace(*i.Description)
		p.Description = &d
	}
	return p
}

// ConvertInput overrides the topic name and description taken from the idea.
type ConvertInput struct {
	ID          uuid.UUID
	TopicName   *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i ConvertInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.TopicName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.TopicName)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "topicName", Message: "max 300 characters"})
	}
	if i.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
