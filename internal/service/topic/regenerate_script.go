package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// RegenerateScript moves the topic back to scripting/pending, clearing its
// script and error, and immediately runs one poller pass. Title, thumbnail and
// extra-asset selections are kept so they can be reselected after the new
// script lands.
func (s *Service) RegenerateScript(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, _, err := s.load(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("regenerate script: %w", err)
	}

	topic, err := s.topics.ResetScript(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("reset script: %w", err)
	}

	s.log.InfoContext(ctx, "script regeneration requested",
		slog.String("user_id", userID),
		slog.String("topic_id", topicID.String()),
	)

	// The pass must finish even if the caller goes away, otherwise the
	// claimed topic stays in processing until the stale sweep.
	res, err := s.processor.ProcessNow(context.WithoutCancel(ctx))
	if err != nil {
		s.log.WarnContext(ctx, "immediate processing skipped; topic left for the next tick",
			slog.String("topic_id", topicID.String()),
			slog.String("error", err.Error()),
		)
		return topic, nil
	}
	s.log.DebugContext(ctx, "immediate processing finished",
		slog.Int("claimed", res.Claimed),
		slog.Int("completed", res.Completed),
		slog.Int("failed", res.Failed),
	)

	fresh, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return fresh, nil
}
