// Package router initializes the HTTP front-end (using Echo).
//
// It registers the middlewares, populates the handler registry and
// mounts the Frontend as a catch-all route, so every request, matched
// or not, is answered through the registry.
package router

import (
	"github.com/deppfellow/hello-api/internal/handler"
	"github.com/deppfellow/hello-api/internal/middleware"
	"github.com/deppfellow/hello-api/internal/registry"
	"github.com/deppfellow/hello-api/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the registry with the application routes and the echo
// instance serving it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	reg := registry.New()
	registerRoutes(reg, h)

	s.Logger.Info().
		Strs("routes", reg.Routes()).
		Msg("routes registered")

	return NewRouterWithRegistry(s, reg)
}

// NewRouterWithRegistry builds the echo instance over an already
// populated registry. The registry must not be modified afterwards.
func NewRouterWithRegistry(s *server.Server, reg *registry.Registry) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)
	frontend := NewFrontend(reg)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	// Echo answers unknown paths and verbs itself (404/405). Those are
	// sent back through the registry so its default handler decides the
	// response; everything else goes to the global error handler.
	router.HTTPErrorHandler = func(err error, c echo.Context) {
		if middleware.IsRouteMiss(err) && !c.Response().Committed {
			serveErr := frontend.Serve(c)
			if serveErr == nil {
				return
			}
			err = serveErr
		}
		middlewares.Global.GlobalErrorHandler(err, c)
	}

	// Order matters: the request id and New Relic transaction must exist
	// before the context enhancer builds the request logger.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Secure(),
		middlewares.Global.Recover(),
	)

	router.Any("/*", frontend.Serve)

	return router
}
