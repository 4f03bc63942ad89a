package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// DeleteTopic hard-deletes a topic, then removes its thumbnail and audio
// objects from the object store. Object cleanup failures are only logged.
func (s *Service) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if topicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}

	deleted, err := s.topics.Delete(ctx, userID, topicID)
	if err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	s.gen.DeleteObjects(context.WithoutCancel(ctx), deleted.StoredObjectURLs()...)

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", userID),
		slog.String("topic_id", topicID.String()),
		slog.String("topic_name", deleted.TopicName),
	)

	return nil
}

// DeleteBySourceKeyword removes the topics spun off from a keyword inside the
// caller's transaction. Stored objects are cleaned up by the returned func,
// which the caller runs after commit.
func (s *Service) DeleteBySourceKeyword(ctx context.Context, userID string, keywordID uuid.UUID) (func(context.Context), error) {
	deleted, err := s.topics.DeleteBySourceKeyword(ctx, userID, keywordID)
	if err != nil {
		return nil, fmt.Errorf("delete topics by source keyword: %w", err)
	}

	var urls []string
	for _, t := range deleted {
		urls = append(urls, t.StoredObjectURLs()...)
	}
	return func(ctx context.Context) { s.gen.DeleteObjects(ctx, urls...) }, nil
}
