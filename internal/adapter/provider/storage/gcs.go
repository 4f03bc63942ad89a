package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const gcsPublicBase = "https://storage.googleapis.com"

// GCSConfig configures a Google Cloud Storage bucket.
type GCSConfig struct {
	Bucket          string
	CredentialsFile string // empty means application default credentials
	UploadTimeout   time.Duration
	DeleteTimeout   time.Duration
}

// GCS stores objects in a Google Cloud Storage bucket.
type GCS struct {
	client  *storage.Client
	bucket  *storage.BucketHandle
	baseURL string
	cfg     GCSConfig
	log     *slog.Logger
	now     func() time.Time
}

// NewGCS connects to the bucket and checks that it exists.
func NewGCS(ctx context.Context, cfg GCSConfig, logger *slog.Logger) (*GCS, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs: new client: %w", err)
	}

	bucket := client.Bucket(cfg.Bucket)
	if _, err := bucket.Attrs(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("gcs: bucket %q: %w", cfg.Bucket, err)
	}

	return &GCS{
		client:  client,
		bucket:  bucket,
		baseURL: gcsPublicBase + "/" + cfg.Bucket,
		cfg:     cfg,
		log:     logger.With("adapter", "gcs"),
		now:     time.Now,
	}, nil
}

// Store uploads data and returns its public URL.
func (g *GCS) Store(ctx context.Context, data []byte, name, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.UploadTimeout)
	defer cancel()

	key := objectKey(name, contentType, g.now())
	w := g.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs: upload %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs: upload %s: %w", key, err)
	}

	g.log.InfoContext(ctx, "object stored", slog.String("key", key), slog.Int("bytes", len(data)))
	return g.baseURL + "/" + key, nil
}

// Delete removes the object behind url. A missing object is not an error.
func (g *GCS) Delete(ctx context.Context, url string) error {
	key, err := keyFromURL(g.baseURL, url)
	if err != nil {
		return fmt.Errorf("gcs: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.DeleteTimeout)
	defer cancel()

	if err := g.bucket.Object(key).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs: delete %s: %w", key, err)
	}
	return nil
}

// Close closes the storage client.
func (g *GCS) Close() error {
	return g.client.Close()
}
