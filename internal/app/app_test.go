//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafechain/pos-terminal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Config {
	os.Clearenv()
	cfg := config.Load()
	cfg.Session.JWTSecret = "test-secret"
	return cfg
}

func TestInitializeApp(t *testing.T) {
	router := InitializeApp(testConfig())
	require.NotNil(t, router)

	// Infrastructure routes come up without touching the Gateway.
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestInitializeGateway(t *testing.T) {
	client := InitializeGateway(config.GatewayConfig{
		BaseURL:                        "http://localhost:5000",
		Timeout:                        5 * time.Second,
		MenuCacheTTL:                   time.Minute,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	})
	require.NotNil(t, client)
	assert.NotNil(t, client.Breaker())
	assert.False(t, client.Breaker().IsOpen())
}

func TestInitializeSessions(t *testing.T) {
	cfg := config.SessionConfig{
		JWTSecret:       "test-secret",
		TokenTTL:        time.Hour,
		IdleTTL:         30 * time.Minute,
		JanitorInterval: time.Minute,
	}
	client := InitializeGateway(config.GatewayConfig{
		BaseURL: "http://localhost:5000",
		Timeout: time.Second,
	})

	registry := InitializeSessions(cfg, client)
	require.NotNil(t, registry)
	defer registry.Shutdown()

	assert.Equal(t, 0, registry.Len())
	assert.NotNil(t, registry.Tokens())
}

func TestInitializeAuditDisabled(t *testing.T) {
	components := InitializeAudit(config.AuditConfig{Enabled: false}, config.GatewayConfig{})
	assert.Nil(t, components)
}

func TestInitializeRouterWithoutAudit(t *testing.T) {
	cfg := testConfig()
	client := InitializeGateway(cfg.Gateway)
	registry := InitializeSessions(cfg.Session, client)
	defer registry.Shutdown()

	components := InitializeRouter(registry, client, nil, cfg)

	require.NotNil(t, components)
	assert.NotNil(t, components.Handler)
	assert.NotNil(t, components.HealthHandler)
	assert.Equal(t, cfg.Server.RateLimit, components.Config.RateLimit)
	assert.Equal(t, cfg.Server.CORSOrigins, components.Config.CORSOrigins)
}
