// Command keyword-import imports every keyword spreadsheet in a directory
// under the configured import root.
//
// Usage:
//
//	keyword-import --dir=2026-10 [--user=default-user]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Jeetch8/softfix-helper/internal/adapter/postgres"
	"github.com/Jeetch8/softfix-helper/internal/adapter/postgres/idea"
	"github.com/Jeetch8/softfix-helper/internal/adapter/postgres/keyword"
	"github.com/Jeetch8/softfix-helper/internal/app"
	"github.com/Jeetch8/softfix-helper/internal/config"
	keywordsvc "github.com/Jeetch8/softfix-helper/internal/service/keyword"
	"github.com/Jeetch8/softfix-helper/pkg/ctxutil"
)

func main() {
	dir := flag.String("dir", ".", "directory to import, relative to the import root")
	user := flag.String("user", "", "owner of the imported keywords (default: auth.default_user_id)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	owner := *user
	if owner == "" {
		owner = cfg.Auth.DefaultUserID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Imports never convert keywords, so no topic linker is wired.
	svc := keywordsvc.NewService(logger, cfg.Keywords.ImportRoot,
		keyword.New(pool), idea.New(pool), nil, postgres.NewTxManager(pool))

	res, err := svc.ImportDirectory(ctxutil.WithUserID(ctx, owner), *dir)
	if err != nil {
		logger.Error("import failed", slog.String("dir", *dir), slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, f := range res.Files {
		fmt.Println(f.String())
	}
	logger.Info("import completed",
		slog.String("user_id", owner),
		slog.Int("files_processed", res.FilesProcessed),
		slog.Int("files_skipped", res.FilesSkipped),
		slog.Int("stored", res.StoredKeywords),
		slog.Int("updated", res.UpdatedKeywords),
		slog.Int("skipped", res.SkippedKeywords),
	)
}
