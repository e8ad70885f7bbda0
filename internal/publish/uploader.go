// Package publish uploads a pre-rendered site to S3-compatible storage.
// When no bucket is configured the NoopUploader is used and publishing is
// skipped, leaving the build on local disk only.
package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hyperengineering/folio/internal/config"
)

// ErrNotConfigured is returned when publishing is requested without a bucket.
var ErrNotConfigured = errors.New("publish bucket not configured")

// Object describes one file to upload.
type Object struct {
	Key          string
	Path         string
	ContentType  string
	CacheControl string
}

// Uploader puts files into the site bucket.
type Uploader interface {
	Upload(ctx context.Context, obj Object) error
}

// s3Client defines the minimal minio.Client operations used by S3Uploader.
type s3Client interface {
	FPutObject(ctx context.Context, bucket string, obj Object) error
}

// minioClientWrapper adapts *minio.Client to s3Client.
type minioClientWrapper struct {
	client *minio.Client
}

func (w *minioClientWrapper) FPutObject(ctx context.Context, bucket string, obj Object) error {
	_, err := w.client.FPutObject(ctx, bucket, obj.Key, obj.Path, minio.PutObjectOptions{
		ContentType:  obj.ContentType,
		CacheControl: obj.CacheControl,
	})
	return err
}

// S3Uploader uploads files to S3-compatible storage.
type S3Uploader struct {
	client s3Client
	bucket string
}

// Upload puts obj into the bucket.
func (u *S3Uploader) Upload(ctx context.Context, obj Object) error {
	if err := u.client.FPutObject(ctx, u.bucket, obj); err != nil {
		return fmt.Errorf("upload %s to S3: %w", obj.Key, err)
	}
	return nil
}

// Bucket returns the target bucket name.
func (u *S3Uploader) Bucket() string {
	return u.bucket
}

// NoopUploader is used when no bucket is configured.
type NoopUploader struct{}

// Upload is a no-op when S3 is not configured.
func (u *NoopUploader) Upload(ctx context.Context, obj Object) error {
	return nil
}

// NewUploader creates the appropriate Uploader based on configuration.
// Returns NoopUploader when bucket is empty, S3Uploader otherwise.
func NewUploader(cfg config.PublishConfig) (Uploader, error) {
	if cfg.Bucket == "" {
		return &NoopUploader{}, nil
	}

	useSSL := true
	if cfg.UseSSL != nil {
		useSSL = *cfg.UseSSL
	}
	endpoint := stripScheme(cfg.Endpoint, &useSSL)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create S3 client: %w", err)
	}

	return &S3Uploader{
		client: &minioClientWrapper{client: client},
		bucket: cfg.Bucket,
	}, nil
}

// stripScheme removes an http:// or https:// prefix from endpoint, which
// minio.New rejects, and lets the scheme decide ssl.
func stripScheme(endpoint string, ssl *bool) string {
	switch {
	case strings.HasPrefix(endpoint, "https://"):
		*ssl = true
		return strings.TrimPrefix(endpoint, "https://")
	case strings.HasPrefix(endpoint, "http://"):
		*ssl = false
		return strings.TrimPrefix(endpoint, "http://")
	default:
		return endpoint
	}
}
