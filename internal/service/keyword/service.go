package keyword

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

type keywordRepo interface {
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Keyword, error)
	GetForUpdate(ctx context.Context, userID string, id uuid.UUID) (*domain.Keyword, error)
	List(ctx context.Context, userID string, f domain.KeywordFilter) ([]*domain.Keyword, int, error)
	Stats(ctx context.Context, userID string) (domain.KeywordStats, error)
	Upsert(ctx context.Context, k *domain.Keyword) (*domain.Keyword, bool, error)
	Update(ctx context.Context, userID string, id uuid.UUID, p domain.KeywordPatch) (*domain.Keyword, error)
	SetAddedToTitle(ctx context.Context, userID string, id uuid.UUID, added bool) (*domain.Keyword, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Keyword, error)
}

type ideaRepo interface {
	Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error)
}

// topicLinker creates and removes the topics spun off from keywords.
// Both calls run inside the caller's transaction.
type topicLinker interface {
	CreateFromSource(ctx context.Context, userID, topicName, description string, sourceKeywordID *uuid.UUID) (*domain.Topic, error)
	DeleteBySourceKeyword(ctx context.Context, userID string, keywordID uuid.UUID) (func(context.Context), error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
	// MaxPage keeps (page-1)*limit far below the int64 offset range.
	MaxPage = 1_000_000
)

// Service provides keyword store operations, spreadsheet import and the
// keyword conversions to topics and ideas.
type Service struct {
	keywords   keywordRepo
	ideas      ideaRepo
	topics     topicLinker
	tx         txManager
	importRoot string
	log        *slog.Logger
}

// NewService creates a keyword service. Local imports are confined to importRoot.
func NewService(
	log *slog.Logger,
	importRoot string,
	keywords keywordRepo,
	ideas ideaRepo,
	topics topicLinker,
	tx txManager,
) *Service {
	root, err := filepath.Abs(importRoot)
	if err != nil {
		root = filepath.Clean(importRoot)
	}
	return &Service{
		keywords:   keywords,
		ideas:      ideas,
		topics:     topics,
		tx:         tx,
		importRoot: root,
		log:        log.With("service", "keyword"),
	}
}
