package storage

import (
	"TrendRadar/internal/api/config"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileStore 上传文件的落盘位置
type FileStore interface {
	// Save 写入文件并返回可回填到 image_url 的位置
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}

// New 按 storage.driver 选择实现, 默认本地磁盘
func New(ctx context.Context, cfg *config.Config) (FileStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)) {
	case "", "local":
		return NewLocalStore(filepath.Join(cfg.DataDir, "uploads"))
	case "minio":
		return NewMinIOStore(ctx, cfg.MinIO)
	default:
		return nil, errors.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
}
