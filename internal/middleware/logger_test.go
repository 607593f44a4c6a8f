package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/frholidays/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func TestRequestLogger_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// capture logs by setting pretty off and ensuring logger initialized
	logger.Init()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/fail", func(c *gin.Context) { c.String(http.StatusNotFound, "nope") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("missing X-Request-ID header")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail?year=1700", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
}

func TestRequestLogger_ClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger.Init()
	router.Use(RequestID(), RequestLogger())
	router.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	})

	body := bytes.NewBufferString("hello")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", body)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
}

// captureAccessLog runs one request through RequestLogger and returns the
// decoded access-log line.
func captureAccessLog(t *testing.T, target string, h gin.HandlerFunc) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)
	_ = os.Unsetenv("LOG_PRETTY")
	t.Setenv("LOG_LEVEL", "info")
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(nil) })

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/api/v1/holidays", h)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))

	var line map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		if err := json.Unmarshal([]byte(raw), &m); err == nil && m["message"] == "http_request" {
			line = m
		}
	}
	if line == nil {
		t.Fatalf("no access log line in %q", buf.String())
	}
	return line
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	cases := []struct {
		name   string
		status int
		level  string
	}{
		{"ok is info", http.StatusOK, "info"},
		{"client error is warn", http.StatusBadRequest, "warn"},
		{"not found is warn", http.StatusNotFound, "warn"},
		{"server error is error", http.StatusInternalServerError, "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line := captureAccessLog(t, "/api/v1/holidays", func(c *gin.Context) { c.Status(tc.status) })
			if line["level"] != tc.level {
				t.Fatalf("level=%v want %s", line["level"], tc.level)
			}
			if line["status"] != float64(tc.status) {
				t.Fatalf("status=%v want %d", line["status"], tc.status)
			}
		})
	}
}

func TestRequestLogger_QueryAndErrorsFields(t *testing.T) {
	line := captureAccessLog(t, "/api/v1/holidays?year=20x1", func(c *gin.Context) {
		_ = c.Error(errors.New("invalid year"))
		c.Status(http.StatusBadRequest)
	})
	if line["query"] != "year=20x1" {
		t.Fatalf("query=%v want year=20x1", line["query"])
	}
	if e, _ := line["errors"].(string); !strings.Contains(e, "invalid year") {
		t.Fatalf("errors=%v want it to mention the handler error", line["errors"])
	}
	if line["path"] != "/api/v1/holidays" || line["method"] != http.MethodGet {
		t.Fatalf("unexpected path/method: %v", line)
	}
	if rid, _ := line["request_id"].(string); rid == "" {
		t.Fatal("request_id should be set by RequestID")
	}
}

func TestRequestLogger_NoErrorsFieldOnSuccess(t *testing.T) {
	line := captureAccessLog(t, "/api/v1/holidays", func(c *gin.Context) { c.Status(http.StatusOK) })
	if _, ok := line["errors"]; ok {
		t.Fatalf("errors field should be absent: %v", line)
	}
	if line["query"] != "" {
		t.Fatalf("query=%v want empty", line["query"])
	}
}
