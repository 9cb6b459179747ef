package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestRequestID_GeneratesNew(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		rid := c.Get("request_id").(string)
		if rid == "" {
			t.Error("expected request_id to be generated")
		}
		return c.String(http.StatusOK, "ok")
	}

	if err := RequestID()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("expected X-Request-ID response header")
	}
}

func TestRequestID_PreservesExisting(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "my-custom-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		if rid := c.Get("request_id").(string); rid != "my-custom-id" {
			t.Errorf("expected my-custom-id, got %s", rid)
		}
		return c.String(http.StatusOK, "ok")
	}

	if err := RequestID()(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Header().Get(RequestIDHeader) != "my-custom-id" {
		t.Errorf("expected my-custom-id in response header, got %s", rec.Header().Get(RequestIDHeader))
	}
}

func TestLogger_PassesThrough(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/clinics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "req-123")

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	if err := Logger(logger)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogger_PropagatesError(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sentinel := errors.New("boom")
	handler := func(c echo.Context) error { return sentinel }
	if err := Logger(logger)(handler)(c); !errors.Is(err, sentinel) {
		t.Errorf("expected handler error to propagate, got %v", err)
	}
}

func TestLogger_LevelsByStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	e := echo.New()

	run := func(handler echo.HandlerFunc) string {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/clinics", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("request_id", "req-123")
		Logger(logger)(handler)(c)
		return buf.String()
	}

	line := run(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	if !strings.Contains(line, `"level":"info"`) || !strings.Contains(line, `"status":200`) {
		t.Errorf("expected info line with status 200, got %s", line)
	}
	if !strings.Contains(line, `"request_id":"req-123"`) {
		t.Errorf("expected request_id field, got %s", line)
	}

	line = run(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad input")
	})
	if !strings.Contains(line, `"level":"warn"`) || !strings.Contains(line, `"status":400`) {
		t.Errorf("expected warn line with status 400, got %s", line)
	}

	line = run(func(c echo.Context) error { return errors.New("boom") })
	if !strings.Contains(line, `"level":"error"`) || !strings.Contains(line, `"status":500`) {
		t.Errorf("expected error line with status 500, got %s", line)
	}
}

func TestRecovery_LogsRequestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/appointments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "req-456")

	handler := func(c echo.Context) error { panic("kaboom") }
	if err := Recovery(logger)(handler)(c); err == nil {
		t.Fatal("expected error from recovered panic")
	}
	line := buf.String()
	if !strings.Contains(line, `"request_id":"req-456"`) {
		t.Errorf("expected request_id field, got %s", line)
	}
	if !strings.Contains(line, `"method":"POST"`) || !strings.Contains(line, `"path":"/appointments"`) {
		t.Errorf("expected request fields in panic log, got %s", line)
	}
}

func TestRecovery_ConvertsPanic(t *testing.T) {
	logger := zerolog.New(os.Stderr)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error { panic("kaboom") }
	err := Recovery(logger)(handler)(c)
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", httpErr.Code)
	}
}
