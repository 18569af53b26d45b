package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"studylink/internal/config"
	"studylink/internal/domain"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSFileStore implements domain.FileStore on a Google Cloud Storage
// bucket. Objects are addressed by key and served either through a CDN
// domain or the bucket's public URL.
type GCSFileStore struct {
	client    *gcs.Client
	bucket    string
	cdnDomain string
}

// NewGCSFileStore creates a file store backed by the configured bucket.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS when set, the
// ambient environment otherwise.
func NewGCSFileStore(ctx context.Context, cfg config.StorageConfig) (domain.FileStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage configuration is missing or bucket is empty")
	}

	opts := []option.ClientOption{option.WithScopes(gcs.ScopeReadWrite)}
	if creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &GCSFileStore{
		client:    client,
		bucket:    cfg.Bucket,
		cdnDomain: cfg.CDNDomain,
	}, nil
}

// Upload writes data under key and returns the object's public URL.
func (s *GCSFileStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *GCSFileStore) publicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, key)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key)
}
