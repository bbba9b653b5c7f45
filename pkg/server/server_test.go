package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/candigraph/candigraph/pkg/config"
	"github.com/candigraph/candigraph/pkg/search"
)

type noopExecutor struct {
	pingErr error
}

func (n *noopExecutor) ExecuteQuery(context.Context, string, map[string]any) ([]*db.Record, error) {
	return []*db.Record{}, nil
}

func (n *noopExecutor) Ping(context.Context) error {
	return n.pingErr
}

func (n *noopExecutor) Close(context.Context) error {
	return nil
}

func newTestServer(exec *noopExecutor) *Server {
	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Server.Mode = gin.TestMode

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := search.NewService(search.NewRepository(exec, logger, search.PageLimits{}), logger)

	srv := New(cfg, service, exec, logger)
	srv.Setup()
	return srv
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(&noopExecutor{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "candigraph", body["service"])
}

func TestReadinessReflectsStore(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		srv := newTestServer(&noopExecutor{})

		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store down", func(t *testing.T) {
		srv := newTestServer(&noopExecutor{pingErr: errors.New("connection refused")})

		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(&noopExecutor{})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "req-42")
		srv.Router().ServeHTTP(w, req)
		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}

func TestSearchRouteRegistered(t *testing.T) {
	srv := newTestServer(&noopExecutor{})

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/api/v1/search/candidates?candidate_id=CAND-001", nil))

	// Empty store means an empty page, not an error.
	require.Equal(t, http.StatusOK, w.Code)

	var result search.SearchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(t, result.Candidates)
	assert.Zero(t, result.Total)
}
