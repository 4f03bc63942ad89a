package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/Jeetch8/softfix-helper/internal/auth"
	"github.com/Jeetch8/softfix-helper/internal/config"
	"github.com/Jeetch8/softfix-helper/internal/transport/middleware"
	"github.com/Jeetch8/softfix-helper/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the services,
// starts the narration poller and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("text_provider", cfg.AI.TextProvider),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.Bool("auth_enabled", cfg.Auth.Enabled()),
	)

	svc, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, svc, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	pollCtx, stopPoller := context.WithCancel(ctx)
	defer stopPoller()

	var wg sync.WaitGroup
	if !cfg.Poller.Disabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Poller.Start(pollCtx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			stopPoller()
			wg.Wait()
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	stopPoller()
	wg.Wait()

	logger.Info("application stopped")
	return nil
}

// NewHandler builds the HTTP handler with the cross-cutting middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, svc *Services, limiter *middleware.RateLimiter) http.Handler {
	checks := []rest.Check{{Name: "database", Pinger: svc.Pool}}
	if svc.Lock != nil {
		checks = append(checks, rest.Check{Name: "redis", Pinger: svc.Lock})
	}

	router := rest.NewRouter(rest.RouterDeps{
		Health:     rest.NewHealthHandler(BuildVersion(), checks...),
		Topics:     rest.NewTopicHandler(svc.Topics, svc.Poller, logger),
		Keywords:   rest.NewKeywordHandler(svc.Keywords, rest.UploadLimits{MaxFiles: cfg.Keywords.MaxUploadFiles, MaxBytes: cfg.Keywords.MaxUploadBytes}, logger),
		Ideas:      rest.NewIdeaHandler(svc.Ideas, logger),
		Auth:       authMiddleware(cfg.Auth),
		UploadsDir: svc.UploadsDir,
	})

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.PerMinute),
	)
	return chain(router)
}

func authMiddleware(cfg config.AuthConfig) middleware.Middleware {
	if !cfg.Enabled() {
		return middleware.DefaultUser(cfg.DefaultUserID)
	}
	return middleware.Auth(auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL))
}
