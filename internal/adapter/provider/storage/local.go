package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Local stores objects on disk under a base directory served at a public base URL.
type Local struct {
	dir     string
	baseURL string
	log     *slog.Logger
	now     func() time.Time
}

// NewLocal creates dir if needed.
func NewLocal(dir, publicBaseURL string, logger *slog.Logger) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("local storage: resolve %q: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("local storage: create %q: %w", abs, err)
	}
	return &Local{
		dir:     abs,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		log:     logger.With("adapter", "local_storage"),
		now:     time.Now,
	}, nil
}

// Dir returns the absolute base directory.
func (l *Local) Dir() string { return l.dir }

// Store writes data to disk and returns its public URL.
func (l *Local) Store(ctx context.Context, data []byte, name, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := objectKey(name, contentType, l.now())
	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("local storage: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("local storage: write %s: %w", key, err)
	}

	l.log.InfoContext(ctx, "object stored", slog.String("key", key), slog.Int("bytes", len(data)))
	return l.baseURL + "/" + key, nil
}

// Delete removes the file behind url. A missing file is not an error.
func (l *Local) Delete(_ context.Context, url string) error {
	key, err := keyFromURL(l.baseURL, url)
	if err != nil {
		return fmt.Errorf("local storage: %w", err)
	}

	path := filepath.Join(l.dir, filepath.FromSlash(key))
	if rel, err := filepath.Rel(l.dir, path); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("local storage: key %q escapes base dir", key)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("local storage: delete %s: %w", key, err)
	}
	return nil
}
