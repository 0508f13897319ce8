package router

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/deppfellow/hello-api/internal/errs"
	"github.com/deppfellow/hello-api/internal/middleware"
	"github.com/deppfellow/hello-api/internal/registry"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// chunkSize is how much of the body is read per step.
const chunkSize = 4 << 10

// exchangeState tracks one request through the front-end.
type exchangeState int

const (
	stateAwaitingBody exchangeState = iota
	stateBodyComplete
	stateResponding
	stateClosed
)

func (s exchangeState) String() string {
	switch s {
	case stateAwaitingBody:
		return "AWAITING_BODY"
	case stateBodyComplete:
		return "BODY_COMPLETE"
	case stateResponding:
		return "RESPONDING"
	case stateClosed:
		return "CLOSED"
	default:
		return "UNKNOWN"
	}
}

// Frontend turns HTTP requests into registry calls and registry responses
// back into HTTP responses.
type Frontend struct {
	registry *registry.Registry
}

// NewFrontend constructs a Frontend over a populated registry.
func NewFrontend(reg *registry.Registry) *Frontend {
	return &Frontend{registry: reg}
}

// Serve is the echo handler for every request.
func (f *Frontend) Serve(c echo.Context) error {
	x := &exchange{
		c:     c,
		state: stateAwaitingBody,
		body:  newBodyDecoder(),
	}
	return x.run(f.registry)
}

// exchange is the per-request state. It owns the body buffer and is
// dropped once the response is written.
type exchange struct {
	c     echo.Context
	state exchangeState
	body  *bodyDecoder
	rc    *registry.RequestContext
}

func (x *exchange) run(reg *registry.Registry) error {
	if err := x.readBody(); err != nil {
		return err
	}

	res := reg.Route(x.rc.Path, x.rc, x.rc.Method)

	return x.respond(res)
}

func (x *exchange) transition(to exchangeState) {
	middleware.GetLogger(x.c).Trace().
		Stringer("from", x.state).
		Stringer("to", to).
		Msg("exchange state")
	x.state = to
}

// readBody feeds the body to the decoder chunk by chunk until the stream
// ends, then builds the request context.
func (x *exchange) readBody() error {
	req := x.c.Request()

	if req.Body != nil {
		chunk := make([]byte, chunkSize)
		for {
			n, err := req.Body.Read(chunk)
			if n > 0 {
				if _, werr := x.body.Write(chunk[:n]); werr != nil {
					return errors.Wrap(werr, "decode request body")
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return errors.Wrap(err, "read request body")
			}
		}
	}

	text, err := x.body.End()
	if err != nil {
		return errors.Wrap(err, "decode request body")
	}

	x.rc = registry.NewRequestContext(
		req.Context(),
		strings.ToLower(req.Method),
		registry.NormalizePath(req.URL.Path),
		x.c.QueryParams(),
		req.Header,
		text,
	)
	x.transition(stateBodyComplete)

	return nil
}

// respond writes res. A status that cannot be written as a final HTTP
// status is replaced, body included, by the fixed internal-error response
// before anything reaches the wire.
func (x *exchange) respond(res registry.Response) error {
	status := res.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	var payload []byte
	if validStatus(status) {
		var err error
		if payload, err = encodeBody(res.Body); err != nil {
			return errors.Wrap(err, "serialize response body")
		}
	} else {
		middleware.GetLogger(x.c).Error().
			Int("status", res.StatusCode).
			Str("route", "/"+x.rc.Path).
			Str("verb", x.rc.Method).
			Msg("handler returned an invalid status code")

		invalid := errs.NewInvalidStatusError()
		status, payload = invalid.Status, invalid.Body()
	}

	x.transition(stateResponding)
	err := x.c.Blob(status, echo.MIMEApplicationJSON, payload)
	x.transition(stateClosed)

	return err
}

// validStatus accepts codes net/http can send as a final response.
// Informational 1xx codes are not final responses.
func validStatus(code int) bool {
	return code >= 200 && code <= 999
}

// encodeBody writes strings and byte slices verbatim and marshals
// everything else. A nil body is sent empty.
func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		return json.Marshal(b)
	}
}
