package topic

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

const (
	maxTopicNameLen   = 300
	maxDescriptionLen = 5000
	maxTitleLen       = 300
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	TopicName   string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.TopicName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "topicName", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxTopicNameLen {
		errs = append(errs, domain.FieldError{Field: "topicName", Message: "max 300 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateScriptInput holds a manually written narration script.
type UpdateScriptInput struct {
	TopicID uuid.UUID
	Script  string
}

// Validate checks all fields and collects all errors.
func (i UpdateScriptInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if strings.TrimSpace(i.Script) == "" {
		errs = append(errs, domain.FieldError{Field: "narrationScript", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TitleInput selects or edits the title of a topic.
type TitleInput struct {
	TopicID uuid.UUID
	Title   string
}

// Validate checks all fields and collects all errors.
func (i TitleInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SelectThumbnailInput picks one of the generated thumbnails.
type SelectThumbnailInput struct {
	TopicID      uuid.UUID
	ThumbnailURL string
}

// Validate checks all fields and collects all errors.
func (i SelectThumbnailInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if strings.TrimSpace(i.ThumbnailURL) == "" {
		errs = append(errs, domain.FieldError{Field: "thumbnailUrl", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
