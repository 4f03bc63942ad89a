// Command process-topics runs a single narration-generation pass: it releases
// stale claims, claims a batch of pending topics and generates their scripts.
// It is intended for cron-driven deployments that disable the in-process poller.
//
// Exit codes: 0 = the pass finished without failures, 1 = error, failed or
// interrupted topics.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Jeetch8/softfix-helper/internal/app"
	"github.com/Jeetch8/softfix-helper/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// Every topic of the batch may run up to the script timeout; the extra
	// minute covers start-up and the stale sweep.
	deadline := time.Duration(cfg.Poller.BatchSize)*cfg.AI.ScriptTimeout + time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()

	svc, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("init services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer svc.Close()

	res, err := svc.Poller.ProcessNow(ctx)
	if err != nil {
		logger.Error("process failed", slog.String("error", err.Error()))
		svc.Close()
		os.Exit(1)
	}

	logger.Info("process completed",
		slog.Int("released", res.Released),
		slog.Int("claimed", res.Claimed),
		slog.Int("completed", res.Completed),
		slog.Int("failed", res.Failed),
		slog.Int("lost", res.Lost),
		slog.Int("interrupted", res.Interrupted),
	)
	if res.Failed > 0 || res.Interrupted > 0 {
		svc.Close()
		os.Exit(1)
	}
}
