package request

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactcentre/pkg/requestcontext"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
}

func TestRequestID(t *testing.T) {
	t.Run("generates UUID when no header provided", func(t *testing.T) {
		var captured string
		h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = requestcontext.RequestID(r.Context())
		}))

		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/x", nil))

		assert.Len(t, captured, 36)
		assert.Equal(t, captured, w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps a valid client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cases/x", nil)
		req.Header.Set("X-Request-ID", "cc-agent.7_42")
		w := httptest.NewRecorder()
		RequestID(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, "cc-agent.7_42", w.Header().Get("X-Request-ID"))
	})

	t.Run("replaces unsafe ids", func(t *testing.T) {
		for _, bad := range []string{"has space", "line\nbreak", `q"uote`, strings.Repeat("a", MaxRequestIDLength+1)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-ID", bad)
			w := httptest.NewRecorder()
			RequestID(okHandler()).ServeHTTP(w, req)

			got := w.Header().Get("X-Request-ID")
			assert.NotEqual(t, bad, got)
			assert.Len(t, got, 36)
		}
	})
}

func TestClientIP(t *testing.T) {
	var captured string
	h := ClientIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = requestcontext.ClientIP(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:55012"
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "10.1.2.3", captured)
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cases/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"SYSTEM_ERROR"}`, w.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestLoggerSkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Logger(logger)(okHandler())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, buf.String())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fulfilments", nil))
	assert.Contains(t, buf.String(), `"path":"/fulfilments"`)
}

func TestContentTypeJSON(t *testing.T) {
	h := ContentTypeJSON(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/cases/x/refusal", strings.NewReader("a=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/cases/x/refusal", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	h := Latency(m, func(*http.Request) string { return "/cases/{caseId}" })(okHandler())

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cases/abc", nil))

	n, err := testutil.GatherAndCount(reg, "contactcentre_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
