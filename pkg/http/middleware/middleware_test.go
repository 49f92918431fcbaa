package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"PanganPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

func newFileLogger(t *testing.T) (*logger.Logger, string) {
	t.Helper()
	path := t.TempDir() + "/app.log"
	log, err := logger.New(&logger.Config{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(b)
}

func TestRequestLoggingWritesStructuredEntry(t *testing.T) {
	log, path := newFileLogger(t)

	e := echo.New()
	e.Use(RequestLogging(log))
	e.GET("/api/markets", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/markets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	out := readLog(t, path)
	if !strings.Contains(out, `"method":"GET"`) || !strings.Contains(out, `"path":"/api/markets"`) {
		t.Fatalf("expected structured request entry, got %q", out)
	}
	if !strings.Contains(out, `"status":200`) {
		t.Fatalf("expected status field, got %q", out)
	}
}

func TestRecoverReturns500AndLogsStack(t *testing.T) {
	log, path := newFileLogger(t)

	e := echo.New()
	e.Use(Recover(log))
	e.GET("/boom", func(echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal Server Error") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}

	out := readLog(t, path)
	if !strings.Contains(out, "panic recovered") || !strings.Contains(out, "stack") {
		t.Fatalf("expected panic entry with stack, got %q", out)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"https://dashboard.local"}))
	e.GET("/api/markets", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/markets", nil)
	req.Header.Set("Origin", "https://dashboard.local")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.local" {
		t.Fatalf("expected origin header, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, OPTIONS" {
		t.Fatalf("expected GET-only methods, got %q", got)
	}
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"https://dashboard.local"}))
	e.GET("/api/markets", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/markets", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS headers, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	e := echo.New()
	e.Use(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodOptions, "/api/markets", nil)
	req.Header.Set("Origin", "https://dashboard.local")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rec.Code)
	}
}
