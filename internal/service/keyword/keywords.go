package keyword

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

// ListKeywords returns one page of the caller's keywords.
func (s *Service) ListKeywords(ctx context.Context, input ListKeywordsInput) ([]*domain.Keyword, domain.Pagination, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.Pagination{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, domain.Pagination{}, err
	}

	f := input.filter()
	items, total, err := s.keywords.List(ctx, userID, f)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("list keywords: %w", err)
	}
	return items, domain.NewPagination(total, f.Page, f.Limit), nil
}

// Stats returns aggregate keyword metrics for the caller.
func (s *Service) Stats(ctx context.Context) (domain.KeywordStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.KeywordStats{}, domain.ErrUnauthorized
	}

	stats, err := s.keywords.Stats(ctx, userID)
	if err != nil {
		return domain.KeywordStats{}, fmt.Errorf("keyword stats: %w", err)
	}
	return stats, nil
}

// GetKeyword returns a single keyword.
func (s *Service) GetKeyword(ctx context.Context, id uuid.UUID) (*domain.Keyword, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	k, err := s.keywords.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get keyword: %w", err)
	}
	return k, nil
}

// UpdateKeyword applies a partial edit. An overall score of 50 or less is
// rejected and leaves the stored keyword unchanged.
func (s *Service) UpdateKeyword(ctx context.Context, input UpdateKeywordInput) (*domain.Keyword, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	k, err := s.keywords.Update(ctx, userID, input.ID, input.patch())
	if err != nil {
		return nil, fmt.Errorf("update keyword: %w", err)
	}

	s.log.InfoContext(ctx, "keyword updated",
		slog.String("user_id", userID),
		slog.String("keyword_id", input.ID.String()),
	)
	return k, nil
}

// DeleteKeyword removes a keyword. Topics spun off from it keep existing
// and lose their source link.
func (s *Service) DeleteKeyword(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	k, err := s.keywords.Delete(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("delete keyword: %w", err)
	}

	s.log.InfoContext(ctx, "keyword deleted",
		slog.String("user_id", userID),
		slog.String("keyword_id", id.String()),
		slog.String("keyword", k.Keyword),
	)
	return nil
}
