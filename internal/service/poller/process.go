package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

type outcome int

const (
	outcomeCompleted outcome = iota
	outcomeFailed
	outcomeLost
	outcomeInterrupted
)

// ProcessNow runs one full pass synchronously. It is safe to call while the
// timer is running: claims are exclusive, so no topic is processed twice.
// Per-topic generation failures are recorded on the topic and never returned.
func (s *Service) ProcessNow(ctx context.Context) (Result, error) {
	var res Result

	released, err := s.topics.ReleaseStale(ctx, s.now().Add(-s.cfg.StaleAfter))
	if err != nil {
		return res, fmt.Errorf("release stale claims: %w", err)
	}
	res.Released = released
	if released > 0 {
		s.log.WarnContext(ctx, "released stale claims", slog.Int("count", released))
	}

	claimID := uuid.New()
	claimed, err := s.topics.ClaimPending(ctx, claimID, s.cfg.BatchSize)
	if err != nil {
		return res, fmt.Errorf("claim pending topics: %w", err)
	}
	res.Claimed = len(claimed)
	if len(claimed) == 0 {
		return res, nil
	}

	s.log.InfoContext(ctx, "processing pending topics",
		slog.String("claim_id", claimID.String()),
		slog.Int("count", len(claimed)),
	)

	for i, t := range claimed {
		if ctx.Err() != nil {
			res.Interrupted += s.releaseClaims(ctx, claimID, claimed[i:])
			break
		}

		// Topics wait in the batch while earlier ones generate; the lease
		// clock restarts here so the stale sweep only sees abandoned claims.
		held, err := s.topics.RenewClaims(ctx, claimID)
		if err != nil {
			res.Interrupted += s.releaseClaims(ctx, claimID, claimed[i:])
			return res, fmt.Errorf("renew claims: %w", err)
		}
		if !slices.Contains(held, t.ID) {
			s.log.WarnContext(ctx, "claim lost before generation, skipping topic",
				slog.String("topic_id", t.ID.String()),
			)
			res.Lost++
			continue
		}

		switch s.process(ctx, claimID, t) {
		case outcomeCompleted:
			res.Completed++
		case outcomeFailed:
			res.Failed++
		case outcomeLost:
			res.Lost++
		case outcomeInterrupted:
			res.Interrupted++
		}
	}

	s.log.InfoContext(ctx, "poller pass finished",
		slog.Int("claimed", res.Claimed),
		slog.Int("completed", res.Completed),
		slog.Int("failed", res.Failed),
		slog.Int("lost", res.Lost),
		slog.Int("interrupted", res.Interrupted),
	)
	return res, nil
}

// process generates the script of one claimed topic and records the outcome.
// Outcome writes outlive ctx so a cancelled pass does not strand the topic
// in processing.
func (s *Service) process(ctx context.Context, claimID uuid.UUID, t *domain.Topic) outcome {
	log := s.log.With(slog.String("topic_id", t.ID.String()))
	wctx := context.WithoutCancel(ctx)

	v, genErr := s.generate(ctx, t)
	if genErr != nil {
		if ctx.Err() != nil {
			log.WarnContext(wctx, "pass cancelled during generation, returning topic to pending")
			s.releaseClaims(wctx, claimID, []*domain.Topic{t})
			return outcomeInterrupted
		}

		log.WarnContext(ctx, "script generation failed", slog.String("error", genErr.Error()))

		held, err := s.topics.FailClaim(wctx, t.ID, claimID, genErr.Error())
		switch {
		case err != nil:
			log.ErrorContext(wctx, "record script failure", slog.String("error", err.Error()))
			return outcomeFailed
		case !held:
			log.WarnContext(wctx, "claim lost before failure was recorded")
			return outcomeLost
		}
		return outcomeFailed
	}

	held, err := s.topics.CompleteClaim(wctx, t.ID, claimID, v.Result, v, s.cfg.VariationCap)
	if err != nil {
		log.ErrorContext(wctx, "store generated script", slog.String("error", err.Error()))
		return outcomeFailed
	}
	if !held {
		log.WarnContext(wctx, "claim lost, discarding generated script")
		return outcomeLost
	}

	log.InfoContext(ctx, "script generated", slog.Int("length", len(v.Result)))
	return outcomeCompleted
}

// releaseClaims returns claimed topics that were not processed to pending.
// It reports how many were still held.
func (s *Service) releaseClaims(ctx context.Context, claimID uuid.UUID, topics []*domain.Topic) int {
	wctx := context.WithoutCancel(ctx)

	var n int
	for _, t := range topics {
		held, err := s.topics.ReleaseClaim(wctx, t.ID, claimID)
		if err != nil {
			s.log.ErrorContext(wctx, "release claim, leaving topic for the stale sweep",
				slog.String("topic_id", t.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if held {
			n++
		}
	}
	if n > 0 {
		s.log.WarnContext(wctx, "pass interrupted, topics returned to pending", slog.Int("count", n))
	}
	return n
}

// generate runs the script generator under the per-item timeout. A panic is
// converted into an error so one topic cannot take down the pass.
func (s *Service) generate(ctx context.Context, t *domain.Topic) (v domain.Variation, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script generation panicked: %v", r)
		}
	}()

	ictx, cancel := context.WithTimeout(ctx, s.cfg.ItemTimeout)
	defer cancel()

	v, err = s.gen.Script(ictx, t.TopicName, t.Description)
	if err != nil {
		return v, err
	}
	if v.Result == "" {
		return v, domain.NewGenerationError("script", errors.New("empty script"))
	}
	return v, nil
}
