// Package upload forwards image files to the remote image host, an
// S3-compatible object store, and hands back publicly dereferenceable URLs.
package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	pkgconfig "github.com/ecomshop/catalog/pkg/config"
	"github.com/google/uuid"
)

// Product images live under one fixed folder in the bucket.
const imageFolder = "products"

// Uploader accepts exactly one file per call and returns the public URL of the
// stored copy.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// S3Uploader implements Uploader against an S3-compatible endpoint.
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
	logger  *slog.Logger
}

// NewS3Uploader creates an uploader from the storage configuration. Static
// credentials and path-style addressing keep it compatible with non-AWS hosts
// (MinIO, Ceph RGW and the like).
func NewS3Uploader(cfg pkgconfig.StorageConfig, logger *slog.Logger) *S3Uploader {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.Endpoint),
		Region:       region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.AccessSecret, ""),
		UsePathStyle: true,
	})
	return &S3Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(cfg.Endpoint, "/"),
		logger:  logger.With("component", "upload"),
	}
}

// Upload stores one image under the products folder and returns its public
// URL. The object key is a fresh UUID plus the original file extension; the
// original name is never trusted.
func (u *S3Uploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", imageFolder, uuid.NewString(), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		u.logger.Error("image upload failed", "key", key, "error", err)
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	url := fmt.Sprintf("%s/%s/%s", u.baseURL, u.bucket, key)
	u.logger.Info("image uploaded", "key", key, "url", url)
	return url, nil
}
