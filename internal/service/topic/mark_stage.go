package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// MarkAsEditing moves a finished topic whose extra assets exist to editing.
func (s *Service) MarkAsEditing(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, t, err := s.load(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("mark editing: %w", err)
	}

	if t.Stage.Level() != domain.TopicLevelFinished {
		return nil, domain.NewPreconditionError("mark editing", "a thumbnail must be selected first")
	}
	if !t.HasExtraAssets() {
		return nil, domain.NewPreconditionError("mark editing", "SEO description and audio are required")
	}

	updated, err := s.topics.MarkEditing(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic moved to editing", slog.String("topic_id", topicID.String()))
	return updated, nil
}

// MarkAsUploaded records that the edited video was uploaded.
func (s *Service) MarkAsUploaded(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, t, err := s.load(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("mark uploaded: %w", err)
	}

	if t.Stage.Level() != domain.TopicLevelEditing {
		return nil, domain.NewPreconditionError("mark uploaded", "topic is not in editing")
	}

	updated, err := s.topics.MarkUploaded(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic marked uploaded", slog.String("topic_id", topicID.String()))
	return updated, nil
}
