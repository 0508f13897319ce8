package handler

import (
	"github.com/deppfellow/hello-api/internal/server"
	"github.com/deppfellow/hello-api/internal/service"
)

// Handlers is a container that groups all handlers, so route
// registration gets one object instead of many.
type Handlers struct {
	Hello *HelloHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Hello: NewHelloHandler(s, services),
	}
}
