package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMiddleware holds the request metrics of one application.
type PrometheusMiddleware struct {
	appName         string
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusMiddleware creates the collectors and registers them with reg.
func NewPrometheusMiddleware(reg prometheus.Registerer, appName string) (*PrometheusMiddleware, error) {
	m := &PrometheusMiddleware{
		appName: appName,
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "request_count",
				Help: "App Request Count",
			},
			[]string{"app_name", "method", "endpoint", "http_status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "request_latency_seconds",
				Help:    "Request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"app_name", "endpoint"},
		),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler returns the fiber middleware handler.
func (m *PrometheusMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// Route pattern (/stores/:id) keeps label cardinality bounded. An
		// unmatched request is left on the "/" route of this middleware.
		endpoint := c.Route().Path
		if endpoint == "" || (endpoint == "/" && c.Path() != "/") {
			endpoint = c.Path()
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requestCount.WithLabelValues(m.appName, c.Method(), endpoint, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(m.appName, endpoint).Observe(time.Since(start).Seconds())

		return err
	}
}
