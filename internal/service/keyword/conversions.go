package keyword

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// recreatedOverall is the score given to a keyword restored from an idea
// whose own score would not be accepted by the keyword store.
const recreatedOverall = domain.MinOverall + 1

// AddToTitle spins a pending topic off the keyword and flags the keyword as
// added. Both writes commit together. A keyword that is already added is a conflict.
func (s *Service) AddToTitle(ctx context.Context, id uuid.UUID) (*domain.Topic, *domain.Keyword, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, nil, domain.NewValidationError("id", "required")
	}

	var (
		topic   *domain.Topic
		updated *domain.Keyword
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		k, err := s.keywords.GetForUpdate(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("get keyword: %w", err)
		}
		if k.AddedToTitle {
			return fmt.Errorf("keyword %q: already added to the title queue: %w", k.Keyword, domain.ErrConflict)
		}

		topic, err = s.topics.CreateFromSource(txCtx, userID, k.Keyword, "", &k.ID)
		if err != nil {
			return err
		}
		updated, err = s.keywords.SetAddedToTitle(txCtx, userID, id, true)
		if err != nil {
			return fmt.Errorf("flag keyword: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.InfoContext(ctx, "keyword added to title queue",
		slog.String("user_id", userID),
		slog.String("keyword_id", id.String()),
		slog.String("topic_id", topic.ID.String()),
	)
	return topic, updated, nil
}

// RemoveFromTitle deletes the topics spun off from the keyword and clears its
// flag. Clearing succeeds even when no topic is linked any more.
func (s *Service) RemoveFromTitle(ctx context.Context, id uuid.UUID) (*domain.Keyword, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var (
		updated *domain.Keyword
		cleanup func(context.Context)
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.keywords.GetForUpdate(txCtx, userID, id); err != nil {
			return fmt.Errorf("get keyword: %w", err)
		}

		var err error
		cleanup, err = s.topics.DeleteBySourceKeyword(txCtx, userID, id)
		if err != nil {
			return err
		}
		updated, err = s.keywords.SetAddedToTitle(txCtx, userID, id, false)
		if err != nil {
			return fmt.Errorf("unflag keyword: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cleanup(context.WithoutCancel(ctx))

	s.log.InfoContext(ctx, "keyword removed from title queue",
		slog.String("user_id", userID),
		slog.String("keyword_id", id.String()),
	)
	return updated, nil
}

// AddToIdeas copies the keyword into a new idea and deletes the keyword.
func (s *Service) AddToIdeas(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	var idea *domain.Idea
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		k, err := s.keywords.Delete(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("delete keyword: %w", err)
		}

		idea, err = s.ideas.Create(txCtx, &domain.Idea{
			UserID:  userID,
			Title:   k.Keyword,
			Metrics: k.Metrics,
		})
		if err != nil {
			return fmt.Errorf("create idea: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "keyword moved to ideas",
		slog.String("user_id", userID),
		slog.String("keyword_id", id.String()),
		slog.String("idea_id", idea.ID.String()),
	)
	return idea, nil
}

// RemoveFromIdeas recreates a keyword from the idea's title and metrics and
// deletes the idea. The source timestamp and added-to-title history are not
// restored. If the keyword already exists its metrics are overwritten, so a
// retried call converges on the same state.
func (s *Service) RemoveFromIdeas(ctx context.Context, ideaID uuid.UUID) (*domain.Keyword, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if ideaID == uuid.Nil {
		return nil, domain.NewValidationError("ideaId", "required")
	}

	var k *domain.Keyword
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		idea, err := s.ideas.Delete(txCtx, userID, ideaID)
		if err != nil {
			return fmt.Errorf("delete idea: %w", err)
		}

		metrics := idea.Metrics
		if metrics.Overall <= domain.MinOverall {
			metrics.Overall = recreatedOverall
		}
		if metrics.NumberOfWords < 1 {
			metrics.NumberOfWords = 1
		}

		k, _, err = s.keywords.Upsert(txCtx, &domain.Keyword{
			UserID:  userID,
			Keyword: idea.Title,
			Metrics: metrics,
		})
		if err != nil {
			return fmt.Errorf("recreate keyword: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "idea moved back to keywords",
		slog.String("user_id", userID),
		slog.String("idea_id", ideaID.String()),
		slog.String("keyword_id", k.ID.String()),
	)
	return k, nil
}
