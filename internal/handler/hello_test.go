package handler

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/hello-api/internal/registry"
	"github.com/deppfellow/hello-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newHelloHandler() *HelloHandler {
	return NewHelloHandler(nil, service.NewServices())
}

func helloRequest(body string) *registry.RequestContext {
	return registry.NewRequestContext(context.Background(), "post", "hello", nil, nil, body)
}

func TestHelloHandler_Post(t *testing.T) {
	h := newHelloHandler()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"named", `{"name":"Ada"}`, "Hello there, Ada!"},
		{"unicode name", `{"name":"Zoë"}`, "Hello there, Zoë!"},
		{"extra fields", `{"name":"Ada","age":36}`, "Hello there, Ada!"},
		{"empty body", ``, "Hello there, friend!"},
		{"malformed", `{"name":`, "Hello there, friend!"},
		{"no name", `{}`, "Hello there, friend!"},
		{"empty name", `{"name":""}`, "Hello there, friend!"},
		{"null name", `{"name":null}`, "Hello there, friend!"},
		{"json null", `null`, "Hello there, friend!"},
		{"array", `["Ada"]`, "Hello there, friend!"},
		{"number name", `{"name":42}`, "Hello there, 42!"},
		{"zero name", `{"name":0}`, "Hello there, friend!"},
		{"true name", `{"name":true}`, "Hello there, true!"},
		{"false name", `{"name":false}`, "Hello there, friend!"},
		{"object name", `{"name":{"first":"Ada"}}`, "Hello there, friend!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.Post(helloRequest(tt.body))

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, registry.MessageBody{Message: tt.want, StatusCode: http.StatusOK}, res.Body)
		})
	}
}

func TestHandle_LogsAndPassesThrough(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	ctx := log.WithContext(context.Background())

	h := newHelloHandler()
	wrapped := Handle(h.Handler, "hello.post", h.Post)

	rc := registry.NewRequestContext(ctx, "post", "hello", nil, nil, `{"name":"Ada"}`)
	res := wrapped(rc)

	assert.Equal(t, h.Post(rc), res)
	assert.Contains(t, buf.String(), `"handler":"hello.post"`)
	assert.Contains(t, buf.String(), `"route":"/hello"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestHandle_WithoutRequestLogger(t *testing.T) {
	h := newHelloHandler()
	wrapped := Handle(h.Handler, "hello.post", h.Post)

	res := wrapped(helloRequest(""))
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
