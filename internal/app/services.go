package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Jeetch8/softfix-helper/internal/adapter/postgres"
	idearepo "github.com/Jeetch8/softfix-helper/internal/adapter/postgres/idea"
	keywordrepo "github.com/Jeetch8/softfix-helper/internal/adapter/postgres/keyword"
	topicrepo "github.com/Jeetch8/softfix-helper/internal/adapter/postgres/topic"
	"github.com/Jeetch8/softfix-helper/internal/adapter/provider/anthropic"
	"github.com/Jeetch8/softfix-helper/internal/adapter/provider/audio"
	"github.com/Jeetch8/softfix-helper/internal/adapter/provider/gemini"
	"github.com/Jeetch8/softfix-helper/internal/adapter/provider/openai"
	"github.com/Jeetch8/softfix-helper/internal/adapter/provider/storage"
	"github.com/Jeetch8/softfix-helper/internal/adapter/redislock"
	"github.com/Jeetch8/softfix-helper/internal/config"
	"github.com/Jeetch8/softfix-helper/internal/service/generation"
	"github.com/Jeetch8/softfix-helper/internal/service/idea"
	"github.com/Jeetch8/softfix-helper/internal/service/keyword"
	"github.com/Jeetch8/softfix-helper/internal/service/poller"
	"github.com/Jeetch8/softfix-helper/internal/service/topic"
	"github.com/Jeetch8/softfix-helper/migrations"
)

type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type objectStore interface {
	Store(ctx context.Context, data []byte, name, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

type tickLocker interface {
	TryLock(ctx context.Context, key string) (release func(), ok bool, err error)
}

// Services is the wired service graph shared by the server and the commands.
type Services struct {
	Pool     *pgxpool.Pool
	Lock     *redislock.Locker // nil when no redis address is configured
	Topics   *topic.Service
	Keywords *keyword.Service
	Ideas    *idea.Service
	Poller   *poller.Service

	// UploadsDir is set when objects are stored on local disk.
	UploadsDir string

	closers []io.Closer
}

// NewServices connects the database and the external backends and builds
// every service. Callers must Close the result.
func NewServices(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *Services, err error) {
	s := &Services{}
	defer func() {
		if err != nil {
			s.Close()
		}
	}()

	s.Pool, err = postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if !cfg.Database.SkipMigrations {
		applied, err := postgres.Migrate(ctx, s.Pool, migrations.FS)
		if err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	text, err := newTextGenerator(ctx, cfg.AI, logger)
	if err != nil {
		return nil, err
	}
	if c, ok := text.(io.Closer); ok {
		s.closers = append(s.closers, c)
	}

	store, err := s.newObjectStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	lock := s.newTickLocker(cfg.Redis, logger)

	oai := openai.New(openai.Config{
		APIKey:      cfg.AI.OpenAIAPIKey,
		TextModel:   cfg.AI.OpenAIModel,
		ImageModel:  cfg.AI.OpenAIImageModel,
		ImageSize:   cfg.AI.OpenAIImageSize,
		SpeechModel: cfg.AI.OpenAISpeechModel,
		Voice:       cfg.AI.OpenAIVoice,
		MaxTokens:   cfg.AI.MaxTokens,
	}, logger)

	transcoder := audio.NewTranscoder(audio.Config{
		FFmpegPath: cfg.Audio.FFmpegPath,
		Bitrate:    cfg.Audio.Bitrate,
		SampleRate: cfg.Audio.SampleRate,
		TempDir:    cfg.Audio.TempDir,
		Timeout:    cfg.Audio.TranscodeTimeout,
	}, logger)

	prompts, err := generation.LoadPrompts(cfg.Generation.PromptsPath)
	if err != nil {
		return nil, err
	}

	gen := generation.NewService(logger, generation.Config{
		ThumbnailCount: cfg.Generation.ThumbnailCount,
		ThumbnailDelay: cfg.Generation.ThumbnailDelay,
		TextTimeout:    cfg.AI.TextTimeout,
		ScriptTimeout:  cfg.AI.ScriptTimeout,
		ImageTimeout:   cfg.AI.ImageTimeout,
		SpeechTimeout:  cfg.AI.SpeechTimeout,
	}, prompts, text, oai, oai, transcoder, store)

	tx := postgres.NewTxManager(s.Pool)
	topics := topicrepo.New(s.Pool)
	keywords := keywordrepo.New(s.Pool)
	ideas := idearepo.New(s.Pool)

	s.Poller = poller.NewService(logger, poller.Config{
		Interval:     cfg.Poller.Interval,
		BatchSize:    cfg.Poller.BatchSize,
		StaleAfter:   cfg.Poller.StaleAfter,
		ItemTimeout:  cfg.AI.ScriptTimeout,
		VariationCap: cfg.Generation.VariationCap,
		WorkerID:     cfg.Poller.WorkerID,
	}, topics, gen, lock)

	s.Topics = topic.NewService(logger, topic.Config{
		VariationCap:       cfg.Generation.VariationCap,
		ExtraAssetsTimeout: cfg.AI.SpeechTimeout + cfg.Audio.TranscodeTimeout + cfg.Storage.UploadTimeout,
	}, topics, gen, s.Poller)

	s.Keywords = keyword.NewService(logger, cfg.Keywords.ImportRoot, keywords, ideas, s.Topics, tx)
	s.Ideas = idea.NewService(logger, ideas, s.Topics, tx)

	return s, nil
}

// Close releases the backends in reverse order of acquisition.
func (s *Services) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i].Close() //nolint:errcheck
	}
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func newTextGenerator(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (textGenerator, error) {
	switch cfg.TextProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, errors.New("ai: ANTHROPIC_API_KEY is required for the anthropic text provider")
		}
		return anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.MaxTokens, logger), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("ai: GEMINI_API_KEY is required for the gemini text provider")
		}
		c, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("ai: gemini: %w", err)
		}
		return c, nil
	case "openai":
		return openai.New(openai.Config{
			APIKey:    cfg.OpenAIAPIKey,
			TextModel: cfg.OpenAIModel,
			MaxTokens: cfg.MaxTokens,
		}, logger), nil
	default:
		return nil, fmt.Errorf("ai: unknown text provider %q", cfg.TextProvider)
	}
}

func (s *Services) newObjectStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (objectStore, error) {
	if cfg.Driver == "gcs" {
		g, err := storage.NewGCS(ctx, storage.GCSConfig{
			Bucket:          cfg.Bucket,
			CredentialsFile: cfg.CredentialsFile,
			UploadTimeout:   cfg.UploadTimeout,
			DeleteTimeout:   cfg.DeleteTimeout,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
		s.closers = append(s.closers, g)
		return g, nil
	}

	l, err := storage.NewLocal(cfg.LocalDir, cfg.PublicBaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	s.UploadsDir = l.Dir()
	return l, nil
}

func (s *Services) newTickLocker(cfg config.RedisConfig, logger *slog.Logger) tickLocker {
	if cfg.Addr == "" {
		return redislock.Noop{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	s.closers = append(s.closers, client)
	s.Lock = redislock.New(client, cfg.LockTTL, logger)
	return s.Lock
}
