package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/hello-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	log := zerolog.Nop()
	cfg := &config.Config{
		Env:    config.EnvDevelopment,
		Server: config.ServerConfig{Port: "0"},
	}
	return New(cfg, &log, nil)
}

func TestServer_StartRequiresSetup(t *testing.T) {
	s := newTestServer()

	assert.ErrorIs(t, s.Start(), ErrNotInitialized)
	assert.ErrorIs(t, s.Shutdown(context.Background()), ErrNotInitialized)
}

func TestServer_StartAndShutdown(t *testing.T) {
	s := newTestServer()
	s.SetupHTTPServer(http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	// Shutdown before or after ListenAndServe began both end Start with
	// ErrServerClosed.
	require.NoError(t, s.Shutdown(context.Background()))
	assert.ErrorIs(t, <-done, http.ErrServerClosed)
}

func TestServer_Addr(t *testing.T) {
	s := newTestServer()
	s.Config.Server.Port = "3000"

	assert.Equal(t, ":3000", s.Addr())
}
