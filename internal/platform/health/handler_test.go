package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func router(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestReadiness(t *testing.T) {
	t.Run("all checks up", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("redis", func(context.Context) error { return nil })

		w := httptest.NewRecorder()
		router(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ready", resp.Status)
		assert.Equal(t, "up", resp.Checks["redis"])
	})

	t.Run("one failing check makes the service not ready", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("redis", func(context.Context) error { return nil })
		h.RegisterCheck("kafka", func(context.Context) error { return errors.New("no brokers") })

		w := httptest.NewRecorder()
		router(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "not_ready", resp.Status)
		assert.Equal(t, "down: no brokers", resp.Checks["kafka"])
	})
}

func TestLivenessAndStatus(t *testing.T) {
	h := New("dev")

	w := httptest.NewRecorder()
	router(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	var status StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "dev", status.Environment)
	assert.Equal(t, Version, status.Version)
}
