package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"strings"
	"testing"
)

func TestContextHandlerAddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-123")
	l.InfoContext(ctx, "hello")

	if !strings.Contains(buf.String(), `"trace_id":"trace-123"`) {
		t.Fatalf("missing trace id: %s", buf.String())
	}
}

func TestTeeHandlerRemoteOnlyReceivesTracedRecords(t *testing.T) {
	var local, remote bytes.Buffer
	tee := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&local, nil),
		&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)},
	}}
	l := log.New(&ContextHandler{tee})

	l.Info("untraced")
	if local.Len() == 0 {
		t.Fatal("local handler received nothing")
	}
	if remote.Len() != 0 {
		t.Fatalf("remote received untraced record: %s", remote.String())
	}

	l.InfoContext(context.WithValue(context.Background(), TraceIDKey, "abc"), "traced")
	if !strings.Contains(remote.String(), "traced") {
		t.Fatalf("remote missing traced record: %s", remote.String())
	}
}
