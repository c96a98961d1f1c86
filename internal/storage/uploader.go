// Package storage uploads rendered PDFs to the object store behind the
// share flow. The store is write-only from this application's point of
// view: a successful upload yields a public URL and nothing is ever read
// back or deleted.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/qualipharm/qualipharm/internal/config"
)

// Uploader is an HTTP client for the object store's upload endpoint.
type Uploader struct {
	endpoint  string
	bucket    string
	tenant    string
	directory string
	apiKey    string
	client    *http.Client
	logger    *zap.Logger
	now       func() time.Time
}

// NewUploader builds an uploader from the storage configuration.
func NewUploader(cfg *config.Configuration, logger *zap.Logger) *Uploader {
	return &Uploader{
		endpoint:  cfg.Storage.Endpoint,
		bucket:    cfg.Storage.Bucket,
		tenant:    cfg.Storage.Tenant,
		directory: cfg.Storage.Directory,
		apiKey:    cfg.Storage.APIKey,
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger.With(zap.String("component", "storage")),
		now:       time.Now,
	}
}

// Key builds the object key for a filename:
// {tenant}/{directory}/{timestamp}_{filename}. The timestamp prefix keeps
// repeated uploads of the same document from colliding; no dedup or
// conflict resolution beyond that.
func (u *Uploader) Key(filename string) string {
	return fmt.Sprintf("%s/%s/%d_%s", u.tenant, u.directory, u.now().UnixMilli(), filename)
}

// Upload writes the blob and returns its public URL. Any failure aborts
// the caller's share action; there is no retry.
func (u *Uploader) Upload(ctx context.Context, filename string, blob []byte) (string, error) {
	key := u.Key(filename)

	endpoint := fmt.Sprintf("%s/object/%s/%s", u.endpoint, url.PathEscape(u.bucket), key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(blob))
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	if u.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+u.apiKey)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("uploading %s: status %d: %s", key, resp.StatusCode, body)
	}

	publicURL := u.PublicURL(key)
	u.logger.Info("document uploaded",
		zap.String("key", key),
		zap.Int("size", len(blob)))
	return publicURL, nil
}

// PublicURL returns the public address of an uploaded object.
func (u *Uploader) PublicURL(key string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", u.endpoint, url.PathEscape(u.bucket), key)
}
