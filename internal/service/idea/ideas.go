package idea

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// CreateIdea stores a hand-written idea.
func (s *Service) CreateIdea(ctx context.Context, input CreateIdeaInput) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	i, err := s.ideas.Create(ctx, &domain.Idea{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Metrics:     input.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}

	s.log.InfoContext(ctx, "idea created",
		slog.String("user_id", userID),
		slog.String("idea_id", i.ID.String()),
	)
	return i, nil
}

// ListIdeas returns one page of the caller's ideas.
func (s *Service) ListIdeas(ctx context.Context, input ListIdeasInput) ([]*domain.Idea, domain.Pagination, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.Pagination{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, domain.Pagination{}, err
	}

	f := input.filter()
	items, total, err := s.ideas.List(ctx, userID, f)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list ideas: %w", err)
	}
	return items, domain.NewPagination(total, f.Page, f.Limit), nil
}

// Stats returns the idea counts for the caller.
func (s *Service) Stats(ctx context.Context) (domain.IdeaStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.IdeaStats{}, domain.ErrUnauthorized
	}

	stats, err := s.ideas.Stats(ctx, userID)
	if err != nil {
		return domain.IdeaStats{}, fmt.Errorf("idea stats: %w", err)
	}
	return stats, nil
}

// GetIdea returns a single idea.
func (s *Service) GetIdea(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	i, err := s.ideas.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get idea: %w", err)
	}
	return i, nil
}

func (s *Service) UpdateIdea(ctx context.Context, input UpdateIdeaInput) (*domain.Idea, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	i, err := s.ideas.Update(ctx, userID, input.ID, input.patch())
	if err != nil {
		return nil, fmt.Errorf("update idea: %w", err)
	}
	return i, nil
}

// DeleteIdea removes an idea. A topic converted from it is kept.
func (s *Service) DeleteIdea(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if _, err := s.ideas.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete idea: %w", err)
	}

	s.log.InfoContext(ctx, "idea deleted",
		slog.String("user_id", userID),
		slog.String("idea_id", id.String()),
	)
	return nil
}
