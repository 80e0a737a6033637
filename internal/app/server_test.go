//go:build !integration

package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	handler := http.NewServeMux()
	server := NewServer(handler, "8080")

	require.NotNil(t, server)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, handler, server.httpServer.Handler)
}

func TestServerShutdown(t *testing.T) {
	server := NewServer(http.NewServeMux(), "0")

	// Shutting down a server that never started is a no-op.
	assert.NoError(t, server.Shutdown())
}
