package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"funnel/config"
	deliverycontext "funnel/internal/delivery/context"
	"funnel/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)

	var ctxRequestID string
	var hasLogger bool
	e.GET("/ping", func(c echo.Context) error {
		ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("client header is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "client-id", ctxRequestID)
		assert.True(t, hasLogger)
	})

	t.Run("oversized header is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, generated, 36)
		assert.Equal(t, generated, ctxRequestID)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/accounts/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/42?x=1", nil))

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP Request"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"route":"/accounts/:id"`)
	assert.Contains(t, out, `"query":"x=1"`)

	buf.Reset()
	cfg.Env.Debug = false
	quiet := echo.New()
	quiet.Use(NewLoggerMiddleware(logger, cfg).Handle)
	quiet.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	quiet.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, buf.String())
}

func TestMetricsMiddleware(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := metrics.NewHTTP(registry)
	require.NoError(t, err)

	e := echo.New()
	e.Use(NewMetricsMiddleware(m, "/metrics").Handle)
	e.GET("/accounts/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	e.GET("/metrics", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/accounts/:id", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Requests))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}
