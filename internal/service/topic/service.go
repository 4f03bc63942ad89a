package topic

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/internal/service/poller"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

type topicRepo interface {
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context, userID string) ([]*domain.Topic, error)
	Stats(ctx context.Context, userID string) (domain.TopicStats, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
	DeleteBySourceKeyword(ctx context.Context, userID string, keywordID uuid.UUID) ([]*domain.Topic, error)

	ResetScript(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
	SetScript(ctx context.Context, userID string, id uuid.UUID, script string) (*domain.Topic, error)
	SaveTitles(ctx context.Context, userID string, id uuid.UUID, titles []string, v domain.Variation, limit int, stage domain.Stage) (*domain.Topic, error)
	SelectTitle(ctx context.Context, userID string, id uuid.UUID, title string, stage domain.Stage) (*domain.Topic, error)
	UpdateTitle(ctx context.Context, userID string, id uuid.UUID, title string) (*domain.Topic, error)
	SaveThumbnails(ctx context.Context, userID string, id uuid.UUID, thumbs []domain.Thumbnail, results []domain.ThumbnailResult, limit int, stage domain.Stage) (*domain.Topic, error)
	SelectThumbnail(ctx context.Context, userID string, id uuid.UUID, url string, stage domain.Stage) (*domain.Topic, error)
	SaveExtraAssets(ctx context.Context, userID string, id uuid.UUID, a domain.ExtraAssets) (*domain.Topic, error)
	MarkEditing(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
	MarkUploaded(ctx context.Context, userID string, id uuid.UUID) (*domain.Topic, error)
}

type generator interface {
	Titles(ctx context.Context, topicName, description, script string) ([]string, domain.Variation, error)
	Thumbnails(ctx context.Context, topicName, title string) ([]domain.Thumbnail, []domain.ThumbnailResult, error)
	SEODescription(ctx context.Context, topicName, script string) (string, error)
	Tags(ctx context.Context, topicName, title, script string) ([]string, error)
	Timestamps(ctx context.Context, script string) ([]domain.Timestamp, error)
	Audio(ctx context.Context, topicID uuid.UUID, script string) (string, error)
	DeleteObjects(ctx context.Context, urls ...string)
}

type processor interface {
	ProcessNow(ctx context.Context) (poller.Result, error)
}

// Config holds lifecycle settings.
type Config struct {
	// VariationCap is the number of generation attempts kept per topic.
	VariationCap int
	// ExtraAssetsTimeout bounds the four-way extra asset fan-out.
	ExtraAssetsTimeout time.Duration
}

// Service drives topics through the production lifecycle.
type Service struct {
	topics    topicRepo
	gen       generator
	processor processor
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new topic lifecycle service.
func NewService(
	log *slog.Logger,
	cfg Config,
	topics topicRepo,
	gen generator,
	processor processor,
) *Service {
	if cfg.VariationCap <= 0 {
		cfg.VariationCap = 20
	}
	if cfg.ExtraAssetsTimeout <= 0 {
		cfg.ExtraAssetsTimeout = 10 * time.Minute
	}
	return &Service{
		topics:    topics,
		gen:       gen,
		processor: processor,
		cfg:       cfg,
		log:       log.With("service", "topic"),
	}
}

// load resolves the caller and fetches the topic they own.
func (s *Service) load(ctx context.Context, topicID uuid.UUID) (string, *domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", nil, domain.ErrUnauthorized
	}
	if topicID == uuid.Nil {
		return "", nil, domain.NewValidationError("topic_id", "required")
	}

	t, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return "", nil, err
	}
	return userID, t, nil
}
