package handler

import (
	"time"

	"github.com/deppfellow/hello-api/internal/registry"
	"github.com/deppfellow/hello-api/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (e.g. HelloHandler) so they can
// access shared resources via *server.Server (config, logger).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// logger prefers the request-scoped logger and falls back to the
// application logger when the request carries none.
func (h Handler) logger(rc *registry.RequestContext) *zerolog.Logger {
	l := zerolog.Ctx(rc.Context())
	if l.GetLevel() == zerolog.Disabled && h.server != nil && h.server.Logger != nil {
		return h.server.Logger
	}
	return l
}

// Handle wraps a registry.HandlerFunc with structured logging and New
// Relic attributes, so individual handlers only deal with their input and
// output.
//
// Usage pattern:
//
//	reg.Register("/hello", "post", handler.Handle(h.Hello.Handler, "hello.post", h.Hello.Post))
func Handle(h Handler, name string, fn registry.HandlerFunc) registry.HandlerFunc {
	return func(rc *registry.RequestContext) registry.Response {
		start := time.Now()

		// The transaction is set by the New Relic Echo middleware (nrecho).
		txn := newrelic.FromContext(rc.Context())
		if txn != nil {
			txn.AddAttribute("handler.name", name)
		}

		logger := h.logger(rc).With().
			Str("operation", "handler").
			Str("handler", name).
			Str("verb", rc.Method).
			Str("route", "/"+rc.Path).
			Logger()

		logger.Debug().Msg("handling request")

		res := fn(rc)
		handlerDuration := time.Since(start)

		if txn != nil {
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("handler.status_code", res.StatusCode)
		}

		logger.Info().
			Dur("handler_duration", handlerDuration).
			Int("status", res.StatusCode).
			Msg("request handled")

		return res
	}
}
