package preview

import (
	"bytes"
	"context"
	"fmt"
	log "log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Metadata 链接预览结果. 抓取失败时四个字段均为 null 并附带 Error
type Metadata struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Site        *string `json:"site"`
	Error       *string `json:"error,omitempty"`
}

// Fetcher 抓取页面并提取 Open Graph / meta 信息
type Fetcher struct {
	httpClient *resty.Client
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))

	return &Fetcher{httpClient: client}
}

// Fetch 从不返回错误, 失败信息写入 Metadata.Error
func (f *Fetcher) Fetch(ctx context.Context, url string) *Metadata {
	resp, err := f.httpClient.R().SetContext(ctx).Get(url)
	if err != nil {
		log.WarnContext(ctx, "preview fetch failed", "url", url, "err", err)
		return failed(err)
	}
	if resp.IsError() {
		err = fmt.Errorf("%d %s for url: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()), url)
		log.WarnContext(ctx, "preview fetch returned error status", "url", url, "status", resp.StatusCode())
		return failed(err)
	}

	meta, err := Extract(bytes.NewReader(resp.Body()), resp.Header().Get("Content-Type"))
	if err != nil {
		log.WarnContext(ctx, "preview parse failed", "url", url, "err", err)
		return failed(err)
	}
	return meta
}

func failed(err error) *Metadata {
	msg := err.Error()
	return &Metadata{Error: &msg}
}
