// Package storage хранит иконки услуг в MinIO.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"marketplace-admin/internal/app/config"
)

// Максимальный размер иконки
const MaxIconSize = 2 << 20

type IconStorage struct {
	client     *minio.Client
	bucketName string
}

// NewIconStorage создает клиент MinIO и бакет, если его еще нет
func NewIconStorage(ctx context.Context, cfg config.MinIOConfig) (*IconStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", cfg.Bucket)
	}

	return &IconStorage{
		client:     client,
		bucketName: cfg.Bucket,
	}, nil
}

// ObjectName - уникальное латинское имя объекта для иконки услуги
func ObjectName(serviceID uint, originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	return fmt.Sprintf("service_%d_%s_%d%s", serviceID, uuid.New().String()[:8], time.Now().Unix(), ext)
}

// ContentType по расширению; иконкой может быть только картинка
func ContentType(filename string) (string, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", true
	case ".png":
		return "image/png", true
	case ".gif":
		return "image/gif", true
	case ".webp":
		return "image/webp", true
	case ".svg":
		return "image/svg+xml", true
	}
	return "", false
}

// UploadIcon загружает иконку и возвращает имя объекта
func (s *IconStorage) UploadIcon(ctx context.Context, serviceID uint, data []byte, originalFilename string) (string, error) {
	contentType, ok := ContentType(originalFilename)
	if !ok {
		return "", fmt.Errorf("unsupported icon type %q", filepath.Ext(originalFilename))
	}

	name := ObjectName(serviceID, originalFilename)
	_, err := s.client.PutObject(ctx, s.bucketName, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logrus.Infof("Icon %s uploaded for service %d", name, serviceID)
	return name, nil
}

// DeleteIcon удаляет старую иконку
func (s *IconStorage) DeleteIcon(ctx context.Context, name string) error {
	err := s.client.RemoveObject(ctx, s.bucketName, name, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logrus.Infof("Icon %s deleted", name)
	return nil
}

// IconURL возвращает временный URL для доступа к иконке (1 час)
func (s *IconStorage) IconURL(ctx context.Context, name string) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucketName, name, time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}
