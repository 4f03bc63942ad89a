// Package poller advances topics waiting for a narration script.
//
// Each pass first returns topics whose claim went stale to pending, then
// atomically claims a batch of pending topics and generates their scripts one
// at a time, renewing the batch's claims before each generation starts. Results
// are written only while the claim is still held, so a regenerate or a manual
// script edit that happens mid-generation wins.
package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Jeetch8/softfix-helper/internal/domain"
)

const tickLockKey = "softfix:poller:tick"

type topicRepo interface {
	ClaimPending(ctx context.Context, claimID uuid.UUID, limit int) ([]*domain.Topic, error)
	CompleteClaim(ctx context.Context, id, claimID uuid.UUID, script string, v domain.Variation, limit int) (bool, error)
	FailClaim(ctx context.Context, id, claimID uuid.UUID, errMsg string) (bool, error)
	RenewClaims(ctx context.Context, claimID uuid.UUID) ([]uuid.UUID, error)
	ReleaseClaim(ctx context.Context, id, claimID uuid.UUID) (bool, error)
	ReleaseStale(ctx context.Context, cutoff time.Time) (int, error)
}

type scriptGenerator interface {
	Script(ctx context.Context, topicName, description string) (domain.Variation, error)
}

type tickLocker interface {
	TryLock(ctx context.Context, key string) (release func(), ok bool, err error)
}

// Config holds poller settings.
type Config struct {
	Interval     time.Duration
	BatchSize    int
	StaleAfter   time.Duration
	ItemTimeout  time.Duration
	VariationCap int
	WorkerID     string
}

// Result summarises one pass. Lost counts topics whose claim was taken over
// (regenerate, manual script, sweep) before their outcome was written;
// Interrupted counts topics returned to pending because the pass was cancelled.
type Result struct {
	Released    int
	Claimed     int
	Completed   int
	Failed      int
	Lost        int
	Interrupted int
}

// Service is the narration-generation poller.
type Service struct {
	topics topicRepo
	gen    scriptGenerator
	lock   tickLocker
	cfg    Config
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a poller. lock guards timer ticks across replicas;
// pass redislock.Noop{} for a single instance.
func NewService(log *slog.Logger, cfg Config, topics topicRepo, gen scriptGenerator, lock tickLocker) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 5
	}
	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = 15 * time.Minute
	}
	if cfg.ItemTimeout <= 0 {
		cfg.ItemTimeout = 5 * time.Minute
	}
	if cfg.VariationCap <= 0 {
		cfg.VariationCap = 20
	}
	return &Service{
		topics: topics,
		gen:    gen,
		lock:   lock,
		cfg:    cfg,
		log:    log.With("service", "poller", "worker_id", cfg.WorkerID),
		now:    time.Now,
	}
}

// Start runs a pass every interval until ctx is cancelled. A tick that cannot
// take the tick lock is skipped.
func (s *Service) Start(ctx context.Context) {
	s.log.InfoContext(ctx, "poller started",
		slog.Duration("interval", s.cfg.Interval),
		slog.Int("batch_size", s.cfg.BatchSize),
	)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("poller stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Service) tick(ctx context.Context) {
	release, ok, err := s.lock.TryLock(ctx, tickLockKey)
	if err != nil {
		s.log.WarnContext(ctx, "tick lock unavailable, skipping tick", slog.String("error", err.Error()))
		return
	}
	if !ok {
		s.log.DebugContext(ctx, "another worker holds the tick lock, skipping tick")
		return
	}
	defer release()

	if _, err := s.ProcessNow(ctx); err != nil {
		s.log.ErrorContext(ctx, "poller pass failed", slog.String("error", err.Error()))
	}
}
