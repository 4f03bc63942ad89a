package idea

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

type ideaRepo interface {
	Create(ctx context.Context, i *domain.Idea) (*domain.Idea, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error)
	List(ctx context.Context, userID string, f domain.IdeaFilter) ([]*domain.Idea, int, error)
	Stats(ctx context.Context, userID string) (domain.IdeaStats, error)
	Update(ctx context.Context, userID string, id uuid.UUID, p domain.IdeaPatch) (*domain.Idea, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error)
	MarkConverted(ctx context.Context, userID string, id uuid.UUID) (*domain.Idea, error)
}

type topicCreator interface {
	CreateFromSource(ctx context.Context, userID, topicName, description string, sourceKeywordID *uuid.UUID) (*domain.Topic, error)
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

// Service provides idea store operations and the one-way conversion of an idea into a topic.
type Service struct {
	ideas  ideaRepo
	topics topicCreator
	tx     txManager
	log    *slog.Logger
}

// NewService creates an idea service.
func NewService(log *slog.Logger, ideas ideaRepo, topics topicCreator, tx txManager) *Service {
	return &Service{
		ideas:  ideas,
		topics: topics,
		tx:     tx,
		log:    log.With("service", "idea"),
	}
}
