package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// CreateTopic creates a topic in scripting/pending for the authenticated user.
// The poller picks it up on its next pass.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		UserID:      userID,
		TopicName:   strings.TrimSpace(input.TopicName),
		Description: strings.TrimSpace(input.Description),
		Stage:       domain.PendingStage(),
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID),
		slog.String("topic_id", topic.ID.String()),
		slog.String("topic_name", topic.TopicName),
	)

	return topic, nil
}

// CreateFromSource creates a pending topic inside the caller's transaction.
// Keyword and idea conversions use it so the new topic commits together
// with the change to its source record.
func (s *Service) CreateFromSource(ctx context.Context, userID, topicName, description string, sourceKeywordID *uuid.UUID) (*domain.Topic, error) {
	input := CreateTopicInput{TopicName: topicName, Description: description}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		UserID:          userID,
		TopicName:       strings.TrimSpace(topicName),
		Description:     strings.TrimSpace(description),
		Stage:           domain.PendingStage(),
		SourceKeywordID: sourceKeywordID,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return topic, nil
}
