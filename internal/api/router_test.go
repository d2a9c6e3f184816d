package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"route-optimization-service/internal/domain"
)

type noopOptimizer struct{}

func (noopOptimizer) Optimize(context.Context, []domain.Vehicle, []*domain.Stop) (*domain.OptimizationOutcome, error) {
	return &domain.OptimizationOutcome{Engine: domain.EngineHeuristic}, nil
}

func TestRouterHealth(t *testing.T) {
	router := NewRouter(noopOptimizer{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouterMetrics(t *testing.T) {
	router := NewRouter(noopOptimizer{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterUnknownPath(t *testing.T) {
	router := NewRouter(noopOptimizer{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusWriterRecordsImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec}

	n, err := sw.Write([]byte("ok"))
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, http.StatusOK, sw.status)
	require.Equal(t, 2, sw.bytes)
}
