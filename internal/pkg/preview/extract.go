package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// Extract 解析 HTML, title 缺少 og:title 时回退到 <title>
func Extract(r io.Reader, contentType string) (*Metadata, error) {
	utf8Reader, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to detect charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	title := metaContent(doc, "og:title")
	if title == nil {
		if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
			title = &t
		}
	}

	description := metaContent(doc, "og:description")
	if description == nil {
		description = metaContent(doc, "description")
	}

	return &Metadata{
		Title:       title,
		Description: description,
		Image:       metaContent(doc, "og:image"),
		Site:        metaContent(doc, "og:site_name"),
	}, nil
}

// metaContent 先按 property 再按 name 查找第一个 meta 标签, 空内容视为缺失
func metaContent(doc *goquery.Document, name string) *string {
	sel := doc.Find(fmt.Sprintf("meta[property=%q]", name)).First()
	if sel.Length() == 0 {
		sel = doc.Find(fmt.Sprintf("meta[name=%q]", name)).First()
	}
	content, ok := sel.Attr("content")
	if !ok || content == "" {
		return nil
	}
	return &content
}
