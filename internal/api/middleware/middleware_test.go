package middleware

import (
	"TrendRadar/internal/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSAllowsAnyOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORSMiddleware())
	r.POST("/api/contents", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for _, origin := range []string{"http://localhost:5173", "https://trends.example.com"} {
		t.Run(origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/contents", nil)
			req.Header.Set("Origin", origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusNoContent {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNoContent)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Fatalf("unexpected allow-origin header: got=%q", got)
			}
		})
	}
}

func TestTraceMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(TraceMiddleware())
	r.GET("/trace", func(c *gin.Context) {
		v, _ := c.Request.Context().Value(logger.TraceIDKey).(string)
		c.String(http.StatusOK, v)
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/trace", nil)
		req.Header.Set("X-Trace-ID", "abc-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Body.String() != "abc-123" {
			t.Fatalf("context trace id = %q", rec.Body.String())
		}
		if got := rec.Header().Get("X-Trace-ID"); got != "abc-123" {
			t.Fatalf("response trace id = %q", got)
		}
	})

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/trace", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		got := rec.Header().Get("X-Trace-ID")
		if got == "" || got != rec.Body.String() {
			t.Fatalf("generated trace id mismatch: header=%q body=%q", got, rec.Body.String())
		}
	})
}
