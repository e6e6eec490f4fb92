package objectstore

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"kenshi-webspace/internal/config"
)

type minioStore struct {
	client  *minio.Client
	bucket  string
	timeout time.Duration
	cfg     *config.Config
}

func NewMinIOStore(client *minio.Client, cfg *config.Config) Store {
	return &minioStore{
		client:  client,
		bucket:  cfg.MinIOBucket,
		timeout: cfg.ObjectStoreTimeout,
		cfg:     cfg,
	}
}

func (s *minioStore) Upload(ctx context.Context, folder string, reader io.Reader, size int64, contentType string) (*Object, error) {
	publicID := fmt.Sprintf("%s/%s", folder, uuid.New().String())

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, s.bucket, publicID, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return &Object{
		PublicID: publicID,
		URL:      s.publicURL(publicID),
	}, nil
}

func (s *minioStore) Delete(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// RemoveObject succeeds on missing keys, so stat first to report
	// the not-found case distinctly.
	_, err := s.client.StatObject(ctx, s.bucket, publicID, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return ErrObjectNotFound
		}
		return err
	}

	return s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{})
}

func (s *minioStore) publicURL(publicID string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	// Keys are folder segments plus a UUID, nothing that needs escaping.
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.bucket, publicID)
}
