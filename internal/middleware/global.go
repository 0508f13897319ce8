package middleware

import (
	"net/http"

	"github.com/deppfellow/hello-api/internal/errs"
	"github.com/deppfellow/hello-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups "global" middleware and the global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// RequestLogger returns Echo's request logger middleware with a zerolog
// LogValuesFunc: one "API" log line per request, severity based on status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// When a handler returns an error the final status is only
			// decided later by the error handler, so derive it here.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			statusCode := v.Status
			if v.Error != nil {
				statusCode = errorStatus(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// errorStatus is the status the global error handler will write for err.
func errorStatus(err error) int {
	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		if IsRouteMiss(echoErr) {
			// Route misses are answered by the default handler.
			return http.StatusNotFound
		}
		return echoErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// IsRouteMiss reports whether echo rejected the request before any route
// handler ran (unknown path or unknown method).
func IsRouteMiss(err error) bool {
	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return false
	}
	return echoErr.Code == http.StatusNotFound || echoErr.Code == http.StatusMethodNotAllowed
}

// Recover returns Echo's panic recovery middleware.
//
// Panics become errors handed to the global error handler, so a broken
// handler answers 500 and the server keeps serving.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			GetLogger(c).Error().
				Err(err).
				Bytes("stack", stack).
				Msg("recovered from panic")
			return err
		},
	})
}

// Secure returns Echo's secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error ends up here. It is translated into an errs.HTTPError body;
// anything that is not already one becomes a generic 500 (or keeps the
// status of an echo 4xx). The original error is logged with the
// request-scoped logger.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = errs.NewInternalServerError()

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) && echoErr.Code < http.StatusInternalServerError {
			httpErr = &errs.HTTPError{
				Status:  echoErr.Code,
				Title:   http.StatusText(echoErr.Code),
				Message: http.StatusText(echoErr.Code),
			}
			if msg, ok := echoErr.Message.(string); ok {
				httpErr.Message = msg
			}
		}
	}

	logger := GetLogger(c)

	e := logger.Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	}
	e.Err(originalErr).
		Int("status", httpErr.Status).
		Msg(httpErr.Message)

	// Only write response if it hasn't already been written.
	if !c.Response().Committed {
		if err := c.JSONBlob(httpErr.Status, httpErr.Body()); err != nil {
			logger.Error().Err(err).Msg("failed to write error response")
		}
	}
}
