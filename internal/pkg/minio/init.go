package minio

import (
	"IdeaVerse/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// Bucket 封面图存储桶
	Bucket string
)

// Init 初始化 MinIO 客户端。未配置 endpoint 时跳过，
// 此时上传接口会返回存储不可用。
func Init() error {
	cfg := config.Cfg.MinIO

	if cfg.Endpoint == "" {
		log.Warn("MinIO endpoint not configured, media upload disabled")
		return nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	if _, err = client.ListBuckets(ctx); err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}

	Client = client
	Bucket = cfg.Bucket

	log.Info("MinIO initialized successfully", "bucket", Bucket)
	return nil
}
