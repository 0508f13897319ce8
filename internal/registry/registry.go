// Package registry maps (path, HTTP verb) pairs to handler functions.
//
// Matching is an exact string match on the normalized path and the
// lowercase verb. Anything that does not match goes to the default
// handler, which answers 404.
//
// A Registry is populated once at start-up, before the listener accepts
// connections, and only read afterwards, so it needs no locking.
package registry

import (
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultMethod is used when Route is called without a method.
const DefaultMethod = "get"

// Registry holds the route table and the default handler.
type Registry struct {
	routes         map[string]map[string]HandlerFunc
	defaultHandler HandlerFunc
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithDefault replaces the built-in not-found handler.
func WithDefault(h HandlerFunc) Option {
	return func(r *Registry) {
		if h != nil {
			r.defaultHandler = h
		}
	}
}

// New constructs an empty registry with the not-found default handler.
func New(opts ...Option) *Registry {
	r := &Registry{
		routes:         make(map[string]map[string]HandlerFunc),
		defaultHandler: NotFound,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NotFound is the built-in default handler.
func NotFound(*RequestContext) Response {
	return Response{
		Body: MessageBody{
			Message:    "Not Found",
			StatusCode: http.StatusNotFound,
		},
		StatusCode: http.StatusNotFound,
	}
}

// NormalizePath strips every leading and trailing slash, so "//hello/"
// and "/hello" become "hello".
func NormalizePath(path string) string {
	return strings.Trim(path, "/")
}

// routeKey is the table key for a path. The leading slash keeps the root
// path from being an empty key.
func routeKey(path string) string {
	return "/" + NormalizePath(path)
}

// Register binds handler to (path, method).
//
// A second registration for the same pair silently replaces the first.
// Other verbs already registered on the path are kept.
func (r *Registry) Register(path, method string, handler HandlerFunc) {
	key := routeKey(path)
	verb := strings.ToLower(method)

	verbs, ok := r.routes[key]
	if !ok {
		verbs = make(map[string]HandlerFunc)
		r.routes[key] = verbs
	}
	verbs[verb] = handler
}

// Route invokes the handler registered for (path, method) with rc, or the
// default handler when there is none. An empty method means "get".
func (r *Registry) Route(path string, rc *RequestContext, method string) Response {
	verb := strings.ToLower(method)
	if verb == "" {
		verb = DefaultMethod
	}
	key := routeKey(path)

	zerolog.Ctx(rc.Context()).Debug().
		Str("route", key).
		Str("verb", verb).
		Msg("routing request")

	if handler := r.routes[key][verb]; handler != nil {
		return handler(rc)
	}
	return r.defaultHandler(rc)
}

// Routes lists the registered route keys as "VERB /path", sorted.
func (r *Registry) Routes() []string {
	var out []string
	for key, verbs := range r.routes {
		for verb, handler := range verbs {
			if handler == nil {
				continue
			}
			out = append(out, strings.ToUpper(verb)+" "+key)
		}
	}
	sort.Strings(out)
	return out
}
