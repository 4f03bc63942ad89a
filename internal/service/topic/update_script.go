package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// UpdateScript stores a manually written narration script and marks it completed.
// Any outstanding poller claim on the topic is dropped, so a late generation
// result cannot overwrite the manual text.
func (s *Service) UpdateScript(ctx context.Context, input UpdateScriptInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topic, err := s.topics.SetScript(ctx, userID, input.TopicID, strings.TrimSpace(input.Script))
	if err != nil {
		return nil, fmt.Errorf("update script: %w", err)
	}

	s.log.InfoContext(ctx, "script updated manually",
		slog.String("user_id", userID),
		slog.String("topic_id", input.TopicID.String()),
	)

	return topic, nil
}
