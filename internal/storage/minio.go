package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ignatzorin/creative-network/internal/config"
	"github.com/ignatzorin/creative-network/internal/logger"
)

// MinioStorage кладёт изображения в S3-совместимый бакет.
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioStorage(ctx context.Context, cfg config.StorageConfig) (*MinioStorage, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: не удалось подключиться к minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("storage: не удалось проверить бакет %s: %w", cfg.MinioBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: не удалось создать бакет %s: %w", cfg.MinioBucket, err)
		}
		logger.Log.WithField("bucket", cfg.MinioBucket).Info("создан бакет для загрузок")
	}

	return &MinioStorage{
		client:    client,
		bucket:    cfg.MinioBucket,
		publicURL: minioPublicURL(cfg),
	}, nil
}

func (s *MinioStorage) Save(ctx context.Context, userID uuid.UUID, img Image) (string, error) {
	name := objectName(userID, img.Extension)
	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(img.Data), int64(len(img.Data)), minio.PutObjectOptions{
		ContentType: img.MIME,
	})
	if err != nil {
		return "", fmt.Errorf("storage: не удалось загрузить объект в minio: %w", err)
	}
	return s.publicURL + "/" + name, nil
}

// minioPublicURL по умолчанию строит адрес бакета из endpoint.
func minioPublicURL(cfg config.StorageConfig) string {
	if cfg.MinioPublicURL != "" {
		return strings.TrimRight(cfg.MinioPublicURL, "/")
	}
	scheme := "http"
	if cfg.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.MinioEndpoint, cfg.MinioBucket)
}
