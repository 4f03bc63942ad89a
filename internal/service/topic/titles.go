package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// GenerateTitles asks the generator for title candidates, overwrites the
// generated titles and advances the topic to the title level. The topic must
// have a completed narration script.
func (s *Service) GenerateTitles(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, t, err := s.load(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("generate titles: %w", err)
	}

	if !t.HasScript() {
		return nil, domain.NewPreconditionError("generate titles", "narration script is missing")
	}
	next, err := t.Stage.Advance(domain.TopicLevelTitle)
	if err != nil {
		return nil, err
	}

	titles, variation, err := s.gen.Titles(ctx, t.TopicName, t.Description, *t.NarrationScript)
	if err != nil {
		return nil, err
	}

	updated, err := s.topics.SaveTitles(ctx, userID, topicID, titles, variation, s.cfg.VariationCap, next)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "titles generated",
		slog.String("topic_id", topicID.String()),
		slog.Int("count", len(titles)),
	)
	return updated, nil
}

// SelectTitle stores the chosen title and advances the topic to the thumbnail level.
func (s *Service) SelectTitle(ctx context.Context, input TitleInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, t, err := s.load(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("select title: %w", err)
	}

	next, err := t.Stage.Advance(domain.TopicLevelThumbnail)
	if err != nil {
		return nil, err
	}

	return s.topics.SelectTitle(ctx, userID, input.TopicID, strings.TrimSpace(input.Title), next)
}

// UpdateTitle edits an already selected title. The level is unchanged.
func (s *Service) UpdateTitle(ctx context.Context, input TitleInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, t, err := s.load(ctx, input.TopicID)
	if err != nil {
		return nil, fmt.Errorf("update title: %w", err)
	}
	if !t.HasSelectedTitle() {
		return nil, domain.NewPreconditionError("update title", "no title has been selected")
	}

	return s.topics.UpdateTitle(ctx, userID, input.TopicID, strings.TrimSpace(input.Title))
}
