package registry

import (
	"context"
	"net/http"
	"net/url"
)

// HandlerFunc maps a request context to a response.
type HandlerFunc func(rc *RequestContext) Response

// Response is what a handler returns.
//
// Body is any JSON-serializable value, or an already serialized string,
// []byte or json.RawMessage which is written verbatim. StatusCode zero
// means "unset" and is written as 200; a code that is not a valid final
// HTTP status is replaced with the fixed internal-error response by the
// front-end.
type Response struct {
	Body       any
	StatusCode int
}

// MessageBody is the JSON body shape shared by the built-in responses.
// The inner statusCode mirrors the HTTP status; clients rely on it.
type MessageBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// RequestContext is the transient bundle handed to a handler.
//
// It is built once per request by the front-end, owned by that single
// request flow and discarded after the response is written.
type RequestContext struct {
	// Method is the lowercase HTTP verb.
	Method string

	// Path has its leading and trailing slashes stripped.
	Path string

	Query   url.Values
	Headers http.Header

	// Body is the fully decoded request body.
	Body string

	ctx context.Context
}

// NewRequestContext builds a request context bound to ctx.
func NewRequestContext(ctx context.Context, method, path string, query url.Values, headers http.Header, body string) *RequestContext {
	if query == nil {
		query = url.Values{}
	}
	if headers == nil {
		headers = http.Header{}
	}
	return &RequestContext{
		Method:  method,
		Path:    path,
		Query:   query,
		Headers: headers,
		Body:    body,
		ctx:     ctx,
	}
}

// Context returns the request's context.Context. It carries the
// request-scoped logger and, when enabled, the New Relic transaction.
func (rc *RequestContext) Context() context.Context {
	if rc == nil || rc.ctx == nil {
		return context.Background()
	}
	return rc.ctx
}
