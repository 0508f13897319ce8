package handler

import (
	"net/http"
	"strconv"

	"github.com/deppfellow/hello-api/internal/lib/utils"
	"github.com/deppfellow/hello-api/internal/registry"
	"github.com/deppfellow/hello-api/internal/server"
	"github.com/deppfellow/hello-api/internal/service"
)

// HelloHandler serves the greeting endpoint.
type HelloHandler struct {
	Handler
	greeting *service.GreetingService
}

// NewHelloHandler constructs a HelloHandler.
func NewHelloHandler(s *server.Server, services *service.Services) *HelloHandler {
	return &HelloHandler{
		Handler:  NewHandler(s),
		greeting: services.Greeting,
	}
}

// Post greets the caller named in the JSON body.
//
// The body is optional: a missing, empty or malformed body, or one without
// a usable name, greets "friend". It always answers 200 with
//
//	{"message": "Hello there, <name>!", "statusCode": 200}
func (h *HelloHandler) Post(rc *registry.RequestContext) registry.Response {
	name := nameFrom(utils.ParseJSON(rc.Body))

	return registry.Response{
		Body: registry.MessageBody{
			Message:    h.greeting.Greet(name),
			StatusCode: http.StatusOK,
		},
		StatusCode: http.StatusOK,
	}
}

// nameFrom extracts the name field from a decoded body. Only truthy values
// count: non-empty strings, non-zero numbers and true. Anything else
// yields "".
func nameFrom(v any) string {
	body, ok := v.(map[string]any)
	if !ok {
		return ""
	}

	switch name := body["name"].(type) {
	case string:
		return name
	case float64:
		if name != 0 {
			return strconv.FormatFloat(name, 'f', -1, 64)
		}
	case bool:
		if name {
			return "true"
		}
	}
	return ""
}
