// Package generation is the facade over the external text, image, speech and
// object storage backends used by the topic lifecycle.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/internal/provider"
)

type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type imageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type speechGenerator interface {
	GenerateSpeech(ctx context.Context, text string) ([]byte, error)
}

type transcoder interface {
	PCMToMP3(ctx context.Context, pcm []byte) ([]byte, error)
}

type objectStore interface {
	Store(ctx context.Context, data []byte, name, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// Config bounds each external call and shapes thumbnail generation.
type Config struct {
	ThumbnailCount int
	ThumbnailDelay time.Duration
	TextTimeout    time.Duration
	ScriptTimeout  time.Duration
	ImageTimeout   time.Duration
	SpeechTimeout  time.Duration
}

// Service generates topic assets.
type Service struct {
	text    textGenerator
	images  imageGenerator
	speech  speechGenerator
	audio   transcoder
	store   objectStore
	prompts *Prompts
	cfg     Config
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new generation service.
func NewService(
	log *slog.Logger,
	cfg Config,
	prompts *Prompts,
	text textGenerator,
	images imageGenerator,
	speech speechGenerator,
	audio transcoder,
	store objectStore,
) *Service {
	return &Service{
		text:    text,
		images:  images,
		speech:  speech,
		audio:   audio,
		store:   store,
		prompts: prompts,
		cfg:     cfg,
		log:     log.With("service", "generation"),
		now:     time.Now,
	}
}

// Script generates a narration script for a topic.
func (s *Service) Script(ctx context.Context, topicName, description string) (domain.Variation, error) {
	prompt, err := render(s.prompts.script, promptData{Topic: topicName, Description: description})
	if err != nil {
		return domain.Variation{}, err
	}

	text, err := s.generateText(ctx, s.cfg.ScriptTimeout, prompt)
	if err != nil {
		return domain.Variation{}, domain.NewGenerationError("script", err)
	}
	return domain.Variation{Prompt: prompt, Result: text, GeneratedAt: s.now().UTC()}, nil
}

// Titles generates up to ten title candidates from a script.
func (s *Service) Titles(ctx context.Context, topicName, description, script string) ([]string, domain.Variation, error) {
	prompt, err := render(s.prompts.titles, promptData{Topic: topicName, Description: description, Script: script})
	if err != nil {
		return nil, domain.Variation{}, err
	}

	text, err := s.generateText(ctx, s.cfg.TextTimeout, prompt)
	if err != nil {
		return nil, domain.Variation{}, domain.NewGenerationError("titles", err)
	}

	titles := parseTitles(text)
	if len(titles) == 0 {
		return nil, domain.Variation{}, domain.NewGenerationError("titles", fmt.Errorf("no titles in response: %w", provider.ErrEmptyResponse))
	}
	return titles, domain.Variation{Prompt: prompt, Result: text, GeneratedAt: s.now().UTC()}, nil
}

// Thumbnails renders the configured number of thumbnail designs one after
// another and stores each image. Individual failures are skipped; it fails
// only when no thumbnail was produced.
func (s *Service) Thumbnails(ctx context.Context, topicName, title string) ([]domain.Thumbnail, []domain.ThumbnailResult, error) {
	count := s.cfg.ThumbnailCount
	thumbs := make([]domain.Thumbnail, 0, count)
	results := make([]domain.ThumbnailResult, 0, count)

	for i := 1; i <= count; i++ {
		if i > 1 && s.cfg.ThumbnailDelay > 0 {
			if err := sleep(ctx, s.cfg.ThumbnailDelay); err != nil {
				break
			}
		}

		prompt, err := render(s.prompts.thumbnail, promptData{Topic: topicName, Title: title, Index: i, Count: count})
		if err != nil {
			return nil, nil, err
		}

		url, err := s.thumbnail(ctx, prompt, i)
		if err != nil {
			s.log.WarnContext(ctx, "thumbnail skipped",
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}

		thumbs = append(thumbs, domain.Thumbnail{Index: i, URL: url})
		results = append(results, domain.ThumbnailResult{Prompt: prompt, URL: url, GeneratedAt: s.now().UTC()})
	}

	if len(thumbs) == 0 {
		cause := fmt.Errorf("none of %d thumbnails could be generated", count)
		if err := ctx.Err(); err != nil {
			cause = fmt.Errorf("%w: %w", cause, err)
		}
		return nil, nil, domain.NewGenerationError("thumbnails", cause)
	}

	s.log.InfoContext(ctx, "thumbnails generated", slog.Int("count", len(thumbs)), slog.Int("requested", count))
	return thumbs, results, nil
}

func (s *Service) thumbnail(ctx context.Context, prompt string, index int) (string, error) {
	imgCtx, cancel := context.WithTimeout(ctx, s.cfg.ImageTimeout)
	img, err := s.images.GenerateImage(imgCtx, prompt)
	cancel()
	if err != nil {
		return "", err
	}

	url, err := s.store.Store(ctx, img, fmt.Sprintf("thumbnail_%d.png", index), provider.ContentTypePNG)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return url, nil
}

// SEODescription generates the video description.
func (s *Service) SEODescription(ctx context.Context, topicName, script string) (string, error) {
	prompt, err := render(s.prompts.seoDescription, promptData{Topic: topicName, Script: script})
	if err != nil {
		return "", err
	}

	text, err := s.generateText(ctx, s.cfg.TextTimeout, prompt)
	if err != nil {
		return "", domain.NewGenerationError("seo description", err)
	}
	return text, nil
}

// Tags generates up to fifteen tags.
func (s *Service) Tags(ctx context.Context, topicName, title, script string) ([]string, error) {
	prompt, err := render(s.prompts.tags, promptData{Topic: topicName, Title: title, Script: script})
	if err != nil {
		return nil, err
	}

	text, err := s.generateText(ctx, s.cfg.TextTimeout, prompt)
	if err != nil {
		return nil, domain.NewGenerationError("tags", err)
	}
	return parseTags(text), nil
}

// Timestamps generates chapter markers for a script.
func (s *Service) Timestamps(ctx context.Context, script string) ([]domain.Timestamp, error) {
	prompt, err := render(s.prompts.timestamps, promptData{Script: script})
	if err != nil {
		return nil, err
	}

	text, err := s.generateText(ctx, s.cfg.TextTimeout, prompt)
	if err != nil {
		return nil, domain.NewGenerationError("timestamps", err)
	}
	return parseTimestamps(text), nil
}

// Audio narrates script, encodes it as MP3 and stores it. It returns the public URL.
func (s *Service) Audio(ctx context.Context, topicID uuid.UUID, script string) (string, error) {
	text, err := render(s.prompts.speech, promptData{Script: script})
	if err != nil {
		return "", err
	}

	speechCtx, cancel := context.WithTimeout(ctx, s.cfg.SpeechTimeout)
	pcm, err := s.speech.GenerateSpeech(speechCtx, text)
	cancel()
	if err != nil {
		return "", domain.NewGenerationError("audio", err)
	}

	mp3, err := s.audio.PCMToMP3(ctx, pcm)
	if err != nil {
		return "", domain.NewGenerationError("audio", err)
	}

	name := fmt.Sprintf("audio_%s_%d.mp3", topicID, s.now().UnixMilli())
	url, err := s.store.Store(ctx, mp3, name, provider.ContentTypeMP3)
	if err != nil {
		return "", fmt.Errorf("store audio: %w: %w", domain.ErrStorage, err)
	}

	s.log.InfoContext(ctx, "audio stored", slog.String("topic_id", topicID.String()), slog.Int("bytes", len(mp3)))
	return url, nil
}

// DeleteObjects removes stored assets. Failures are logged and never returned.
func (s *Service) DeleteObjects(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := s.store.Delete(ctx, url); err != nil {
			s.log.WarnContext(ctx, "delete stored object",
				slog.String("url", url),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Service) generateText(ctx context.Context, timeout time.Duration, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.text.GenerateText(ctx, prompt)
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
