package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// GenerateThumbnails renders thumbnail candidates for the selected title,
// overwrites the generated thumbnails and advances the topic to the thumbnail level.
func (s *Service) GenerateThumbnails(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, t, err := s.load(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("generate thumbnails: %w", err)
	}

	if !t.HasScript() || !t.HasSelectedTitle() {
		return nil, domain.NewPreconditionError("generate thumbnails", "narration script and selected title are required")
	}
	next, err := t.Stage.Advance(domain.TopicLevelThumbnail)
	if err != nil {
		return nil, err
	}

	thumbs, results, err := s.gen.Thumbnails(ctx, t.TopicName, *t.SelectedTitle)
	if err != nil {
		return nil, err
	}

	updated, err := s.topics.SaveThumbnails(ctx, userID, topicID, thumbs, results, s.cfg.VariationCap, next)
	if err != nil {
		urls := make([]string, 0, len(thumbs))
		for _, th := range thumbs {
			urls = append(urls, th.URL)
		}
		s.gen.DeleteObjects(context.WithoutCancel(ctx), urls...)
		return nil, err
	}

	s.log.InfoContext(ctx, "thumbnails generated",
		slog.String("topic_id", topicID.String()),
		slog.Int("count", len(thumbs)),
	)
	return updated, nil
}

// SelectThumbnail stores the chosen thumbnail URL and advances the topic to finished.
func (s *Service) SelectThumbnail(ctx context.Context, input SelectThumbnailInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, t, err := s.load(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("select thumbnail: %w", err)
	}

	if !t.HasSelectedTitle() {
		return nil, domain.NewPreconditionError("select thumbnail", "no title has been selected")
	}
	next, err := t.Stage.Advance(domain.TopicLevelFinished)
	if err != nil {
		return nil, err
	}

	return s.topics.SelectThumbnail(ctx, userID, input.TopicID, strings.TrimSpace(input.ThumbnailURL), next)
}
