package middleware

import (
	"strconv"
	"strings"
	"time"

	"funnel/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts, latencies and in-flight requests.
type MetricsMiddleware struct {
	metrics *metrics.HTTP
	skip    string
}

// NewMetricsMiddleware creates the middleware. Requests to skipPath are not recorded.
func NewMetricsMiddleware(m *metrics.HTTP, skipPath string) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m, skip: skipPath}
}

// Handle records the request once the handler and error handler have run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.skip != "" && c.Request().URL.Path == m.skip {
			return next(c)
		}

		m.metrics.InFlight.Inc()
		defer m.metrics.InFlight.Dec()

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the central error handler write the status before it is recorded.
			c.Error(err)
		}

		method := strings.ToUpper(c.Request().Method)
		path := routeLabel(c)
		m.metrics.Requests.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
		m.metrics.Duration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return nil
	}
}

// routeLabel uses the matched route template to keep label cardinality bounded.
func routeLabel(c echo.Context) string {
	if path := c.Path(); path != "" {
		return path
	}

	return "unmatched"
}
