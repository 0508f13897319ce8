package router

import (
	"github.com/deppfellow/hello-api/internal/handler"
	"github.com/deppfellow/hello-api/internal/registry"
)

// registerRoutes binds the application handlers. It runs once, before the
// listener starts.
func registerRoutes(reg *registry.Registry, h *handler.Handlers) {
	reg.Register("/hello", "post", handler.Handle(h.Hello.Handler, "hello.post", h.Hello.Post))
}
