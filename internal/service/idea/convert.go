package idea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// ConvertToTopic creates a pending topic from the idea and latches the idea
// as converted. The idea itself is kept. Converting the same idea twice is a
// conflict and never creates a second topic.
func (s *Service) ConvertToTopic(ctx context.Context, input ConvertInput) (*domain.Topic, *domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, nil, err
	}

	var (
		topic *domain.Topic
		idea  *domain.Idea
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		// The latch runs first so a concurrent second call blocks on the row
		// and then fails without inserting.
		idea, err = s.ideas.MarkConverted(txCtx, userID, input.ID)
		if err != nil {
			return fmt.Errorf("convert idea: %w", err)
		}

		name, description := idea.Title, idea.Description
		if input.TopicName != nil && strings.TrimSpace(*input.TopicName) != "" {
			name = strings.TrimSpace(*input.TopicName)
		}
		if input.Description != nil {
			description = strings.TrimSpace(*input.Description)
		}

		topic, err = s.topics.CreateFromSource(txCtx, userID, name, description, nil)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.InfoContext(ctx, "idea converted to topic",
		slog.String("user_id", userID),
		slog.String("idea_id", input.ID.String()),
		slog.String("topic_id", topic.ID.String()),
	)
	return topic, idea, nil
}
