package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const ogPage = `<!DOCTYPE html>
<html>
<head>
	<title>Fallback Title</title>
	<meta property="og:title" content="Open Graph Title">
	<meta property="og:description" content="OG description">
	<meta name="description" content="Plain description">
	<meta property="og:image" content="https://cdn.example.com/cover.png">
	<meta property="og:site_name" content="Example">
</head>
<body><p>hello</p></body>
</html>`

const plainPage = `<html><head>
	<title>  Plain Page  </title>
	<meta name="description" content="Only a plain description">
</head><body></body></html>`

func strOrNil(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestExtractPrefersOpenGraph(t *testing.T) {
	meta, err := Extract(strings.NewReader(ogPage), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := strOrNil(meta.Title); got != "Open Graph Title" {
		t.Errorf("Title = %q", got)
	}
	if got := strOrNil(meta.Description); got != "OG description" {
		t.Errorf("Description = %q", got)
	}
	if got := strOrNil(meta.Image); got != "https://cdn.example.com/cover.png" {
		t.Errorf("Image = %q", got)
	}
	if got := strOrNil(meta.Site); got != "Example" {
		t.Errorf("Site = %q", got)
	}
	if meta.Error != nil {
		t.Errorf("Error = %q, want nil", *meta.Error)
	}
}

func TestExtractFallsBackToTitleAndMetaName(t *testing.T) {
	meta, err := Extract(strings.NewReader(plainPage), "text/html")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := strOrNil(meta.Title); got != "Plain Page" {
		t.Errorf("Title = %q", got)
	}
	if got := strOrNil(meta.Description); got != "Only a plain description" {
		t.Errorf("Description = %q", got)
	}
	if meta.Image != nil || meta.Site != nil {
		t.Errorf("expected nil image/site, got %q %q", strOrNil(meta.Image), strOrNil(meta.Site))
	}
}

func TestFetchSendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(ogPage))
	}))
	defer srv.Close()

	meta := NewFetcher(time.Second, "Mozilla/5.0 (compatible; REI/1.0)").Fetch(context.Background(), srv.URL)
	if meta.Error != nil {
		t.Fatalf("unexpected error: %s", *meta.Error)
	}
	if gotUA != "Mozilla/5.0 (compatible; REI/1.0)" {
		t.Fatalf("User-Agent = %q", gotUA)
	}
	if strOrNil(meta.Title) != "Open Graph Title" {
		t.Fatalf("Title = %q", strOrNil(meta.Title))
	}
}

func TestFetchAbsorbsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	meta := NewFetcher(time.Second, "test").Fetch(context.Background(), srv.URL)
	if meta.Error == nil || !strings.Contains(*meta.Error, "404") {
		t.Fatalf("expected 404 error, got %+v", meta)
	}
	if meta.Title != nil || meta.Description != nil || meta.Image != nil || meta.Site != nil {
		t.Fatalf("expected all-null fields, got %+v", meta)
	}
}

func TestFetchTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	meta := NewFetcher(50*time.Millisecond, "test").Fetch(context.Background(), srv.URL)
	if meta.Error == nil {
		t.Fatal("expected timeout error")
	}
}
