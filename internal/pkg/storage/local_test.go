package storage

import (
	"TrendRadar/internal/api/config"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	path, err := store.Save(context.Background(), "report.pdf", strings.NewReader("hello"), 5, "application/pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path, got %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("content = %q", data)
	}
}

func TestLocalStoreOverwrites(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if _, err = store.Save(ctx, "a.txt", strings.NewReader("first"), 5, ""); err != nil {
		t.Fatal(err)
	}
	path, err := store.Save(ctx, "a.txt", strings.NewReader("second"), 6, "")
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Fatalf("content = %q", data)
	}
}

func TestLocalStoreRejectsPaths(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"../evil.txt", "sub/evil.txt", ".."} {
		if _, err = store.Save(context.Background(), name, strings.NewReader("x"), 1, ""); err == nil {
			t.Errorf("Save(%q) succeeded, want error", name)
		}
	}
}

func TestNewSelectsDriver(t *testing.T) {
	cfg := &config.Config{DataDir: t.TempDir()}
	store, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	local, ok := store.(*LocalStore)
	if !ok {
		t.Fatalf("expected *LocalStore, got %T", store)
	}
	if local.Dir() != filepath.Join(cfg.DataDir, "uploads") {
		t.Fatalf("dir = %s", local.Dir())
	}

	cfg.Storage.Driver = "s3"
	if _, err = New(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
