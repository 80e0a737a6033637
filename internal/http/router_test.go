//go:build !integration

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cafechain/pos-terminal/internal/session"
)

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name string
		cfg  RouterConfig
	}{
		{
			name: "creates router with default config",
			cfg:  DefaultRouterConfig(),
		},
		{
			name: "creates router without rate limiting",
			cfg: RouterConfig{
				RateWindow: time.Minute,
			},
		},
		{
			name: "creates router with custom CORS origins",
			cfg: RouterConfig{
				RateLimit:   100,
				RateWindow:  time.Minute,
				CORSOrigins: []string{"https://terminal.cafechain.example"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouterWithConfig(tt.cfg)
			assert.NotNil(t, router)
		})
	}
}

func setupRouterWithConfig(cfg RouterConfig) http.Handler {
	gw := defaultStubGateway()
	registry := session.NewRegistry(gw, session.NewTokenIssuer("test-secret", time.Hour))
	handler := NewHandler(registry, gw)
	return NewRouter(handler, NewHealthHandler(), cfg)
}

func TestRouter_Endpoints(t *testing.T) {
	router := setupRouter(defaultStubGateway())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "healthz endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readyz endpoint",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "open session endpoint",
			method:         http.MethodPost,
			path:           "/api/session",
			expectedStatus: http.StatusBadRequest, // missing body
		},
		{
			name:           "unknown path",
			method:         http.MethodGet,
			path:           "/api/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := setupRouter(defaultStubGateway())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
