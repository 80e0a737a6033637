// Package config provides configuration management for the terminal service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Session SessionConfig
	Audit   AuditConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
}

// GatewayConfig holds the upstream café API client configuration.
type GatewayConfig struct {
	BaseURL      string
	Timeout      time.Duration
	MenuCacheTTL time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// SessionConfig holds terminal session configuration.
type SessionConfig struct {
	JWTSecret       string
	TokenTTL        time.Duration
	IdleTTL         time.Duration
	JanitorInterval time.Duration
}

// AuditConfig holds the MongoDB audit trail configuration.
type AuditConfig struct {
	Enabled      bool
	URI          string
	DatabaseName string
	TTL          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
		},
		Gateway: GatewayConfig{
			BaseURL:                        getEnv("GATEWAY_BASE_URL", "http://localhost:5000"),
			Timeout:                        getEnvDuration("GATEWAY_TIMEOUT", 10*time.Second),
			MenuCacheTTL:                   getEnvDuration("GATEWAY_MENU_CACHE_TTL", time.Minute),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			JWTSecret:       getEnv("SESSION_JWT_SECRET", "your-secret-key-change-in-production"),
			TokenTTL:        getEnvDuration("SESSION_TOKEN_TTL", 12*time.Hour),
			IdleTTL:         getEnvDuration("SESSION_IDLE_TTL", 30*time.Minute),
			JanitorInterval: getEnvDuration("SESSION_JANITOR_INTERVAL", time.Minute),
		},
		Audit: AuditConfig{
			Enabled:      getEnvBool("MONGODB_ENABLED", false),
			URI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("MONGODB_DATABASE", "pos_terminal"),
			TTL:          getEnvDuration("MONGODB_AUDIT_TTL", 90*24*time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
