package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// ListTopics returns the caller's topics, newest first.
func (s *Service) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	topics, err := s.topics.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// GetTopic returns one of the caller's topics.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	_, t, err := s.load(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return t, nil
}

// Stats returns per-status and per-level topic counts for the caller.
func (s *Service) Stats(ctx context.Context) (domain.TopicStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.TopicStats{}, domain.ErrUnauthorized
	}

	stats, err := s.topics.Stats(ctx, userID)
	if err != nil {
		return domain.TopicStats{}, fmt.Errorf("topic stats: %w", err)
	}
	return stats, nil
}
