package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"masgolf/config"
)

type S3Storage struct {
	client *minio.Client
	cfg    config.S3Config
	logger *zap.Logger
}

func NewS3Storage(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{
			Region: cfg.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		logger.Info("s3 bucket created", zap.String("bucket", cfg.Bucket))
	}

	return &S3Storage{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (s *S3Storage) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty object")
	}

	key = strings.TrimPrefix(key, "/")

	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=60",
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return ObjectURL(s.cfg, key), nil
}

func (s *S3Storage) GetObject(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimPrefix(key, "/")

	object, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	return data, nil
}

// ObjectURL is the public address of key: virtual-hosted AWS style for amazonaws.com
// endpoints, path style for everything else (MinIO, R2, local).
func ObjectURL(cfg config.S3Config, key string) string {
	scheme := "https"
	if !cfg.UseSSL {
		scheme = "http"
	}

	if strings.HasSuffix(cfg.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("%s://%s.s3.%s.amazonaws.com/%s", scheme, cfg.Bucket, cfg.Region, key)
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, cfg.Bucket, key)
}
