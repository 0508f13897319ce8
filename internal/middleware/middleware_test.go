package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/hello-api/internal/config"
	"github.com/deppfellow/hello-api/internal/errs"
	"github.com/deppfellow/hello-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	log := zerolog.New(buf)
	cfg := &config.Config{
		Env:    config.EnvDevelopment,
		Server: config.ServerConfig{Port: "3000"},
	}
	return server.New(cfg, &log, nil)
}

func newTestEcho(s *server.Server) *echo.Echo {
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(RequestID())
	e.Use(mw.Tracing.NewRelicMiddleware())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Tracing.EnhanceTracing())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.Recover())
	return e
}

func TestRequestID_Generated(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Reused(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestEnhanceContext_StoresLogger(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(newTestServer(&buf))

	e.GET("/*", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from request context")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/some/path", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "from request context")
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"path":"/some/path"`)
	assert.Contains(t, out, `"message":"API"`)
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NotNil(t, GetLogger(c))
	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}

func TestGlobalErrorHandler_HTTPError(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.GET("/", func(c echo.Context) error {
		return errors.Wrap(errs.NewInvalidStatusError(), "handler contract")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))
	assert.JSONEq(t,
		`{"error":"Internal Server Error","message":"A non-numeric HTTP status code was returned."}`,
		rec.Body.String())
}

func TestGlobalErrorHandler_UnknownError(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.GET("/", func(c echo.Context) error {
		return errors.New("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error","message":"Internal Server Error"}`, rec.Body.String())
}

func TestRecover_PanicBecomes500(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(newTestServer(&buf))
	e.GET("/", func(c echo.Context) error {
		panic("handler exploded")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body["error"])
	assert.Contains(t, buf.String(), "recovered from panic")
}

func TestIsRouteMiss(t *testing.T) {
	assert.True(t, IsRouteMiss(echo.ErrNotFound))
	assert.True(t, IsRouteMiss(echo.ErrMethodNotAllowed))
	assert.False(t, IsRouteMiss(echo.ErrBadRequest))
	assert.False(t, IsRouteMiss(errors.New("x")))
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, errorStatus(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusBadRequest, errorStatus(echo.ErrBadRequest))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(errs.NewInvalidStatusError()))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(errors.New("x")))
}
