package service

import (
	"TrendRadar/internal/pkg/preview"
	"context"
	"regexp"
	"strings"
)

var httpURLPattern = regexp.MustCompile(`^https?://`)

type PreviewService interface {
	Preview(ctx context.Context, rawURL string) (*preview.Metadata, error)
}

type PreviewServiceImpl struct {
	fetcher *preview.Fetcher
}

func NewPreviewService(fetcher *preview.Fetcher) PreviewService {
	return &PreviewServiceImpl{fetcher: fetcher}
}

// Preview 只在 URL 不合法时返回错误, 抓取失败体现在 Metadata.Error 中
func (s *PreviewServiceImpl) Preview(ctx context.Context, rawURL string) (*preview.Metadata, error) {
	url := strings.TrimSpace(rawURL)
	if !httpURLPattern.MatchString(url) {
		return nil, ErrInvalidURL
	}
	return s.fetcher.Fetch(ctx, url), nil
}
