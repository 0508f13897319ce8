// Command hello-api runs the greeting HTTP API.
//
// Configuration is read from HELLO_* environment variables (and a .env file
// when present). The process stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/hello-api/internal/config"
	"github.com/deppfellow/hello-api/internal/handler"
	"github.com/deppfellow/hello-api/internal/logger"
	"github.com/deppfellow/hello-api/internal/router"
	"github.com/deppfellow/hello-api/internal/server"
	"github.com/deppfellow/hello-api/internal/service"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService, os.Stdout)

	s := server.New(cfg, &log, loggerService)
	h := handler.NewHandlers(s, service.NewServices())
	s.SetupHTTPServer(router.NewRouter(s, h))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited properly")
}
