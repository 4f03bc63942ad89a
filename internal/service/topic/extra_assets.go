package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

// GenerateExtraAssets produces the SEO description, tags, timestamps and
// narration audio concurrently and commits them in one update. If any of the
// four fails nothing is persisted and an already uploaded audio object is
// deleted.
func (s *Service) GenerateExtraAssets(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, t, err := s.load(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("generate extra assets: %w", err)
	}

	if !t.HasScript() || !t.HasSelectedTitle() {
		return nil, domain.NewPreconditionError("generate extra assets", "narration script and selected title are required")
	}
	script, title := *t.NarrationScript, *t.SelectedTitle

	gctx, cancel := context.WithTimeout(ctx, s.cfg.ExtraAssetsTimeout)
	defer cancel()

	var assets domain.ExtraAssets
	g, gctx := errgroup.WithContext(gctx)
	g.Go(func() (err error) {
		assets.SEODescription, err = s.gen.SEODescription(gctx, t.TopicName, script)
		return err
	})
	g.Go(func() (err error) {
		assets.Tags, err = s.gen.Tags(gctx, t.TopicName, title, script)
		return err
	})
	g.Go(func() (err error) {
		assets.Timestamps, err = s.gen.Timestamps(gctx, script)
		return err
	})
	g.Go(func() (err error) {
		assets.AudioURL, err = s.gen.Audio(gctx, topicID, script)
		return err
	})

	if err := g.Wait(); err != nil {
		s.discardAudio(ctx, assets.AudioURL)
		return nil, err
	}

	updated, err := s.topics.SaveExtraAssets(ctx, userID, topicID, assets)
	if err != nil {
		s.discardAudio(ctx, assets.AudioURL)
		return nil, err
	}

	// The previous audio object is no longer referenced.
	if t.AudioURL != nil && *t.AudioURL != assets.AudioURL {
		s.gen.DeleteObjects(context.WithoutCancel(ctx), *t.AudioURL)
	}

	s.log.InfoContext(ctx, "extra assets generated",
		slog.String("topic_id", topicID.String()),
		slog.Int("tags", len(assets.Tags)),
		slog.Int("timestamps", len(assets.Timestamps)),
	)
	return updated, nil
}

func (s *Service) discardAudio(ctx context.Context, url string) {
	if url == "" {
		return
	}
	s.gen.DeleteObjects(context.WithoutCancel(ctx), url)
}
