package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testApp = "store_system"

func newTestMetrics(t *testing.T) (*PrometheusMiddleware, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg, testApp)
	require.NoError(t, err)
	return m, reg
}

func TestPrometheusMiddleware(t *testing.T) {
	promMiddleware, _ := newTestMetrics(t)

	app := fiber.New()
	app.Use(promMiddleware.Handler())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Delete("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/error", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad request")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/test", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues(testApp, "GET", "/test", "200")))

	respDelete, _ := app.Test(httptest.NewRequest("DELETE", "/test", nil))
	assert.Equal(t, fiber.StatusOK, respDelete.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues(testApp, "DELETE", "/test", "200")))

	app.Test(httptest.NewRequest("GET", "/error", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues(testApp, "GET", "/error", "400")))
}

func TestPrometheusMiddleware_ExcludeMetrics(t *testing.T) {
	promMiddleware, reg := newTestMetrics(t)

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/metrics", nil))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		assert.Empty(t, mf.GetMetric(), mf.GetName())
	}
}

func TestPrometheusMiddleware_PathPattern(t *testing.T) {
	promMiddleware, _ := newTestMetrics(t)

	app := fiber.New()
	app.Use(promMiddleware.Handler())
	api := app.Group("/store-system")
	api.Get("/stores/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	app.Test(httptest.NewRequest("GET", "/store-system/stores/123", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues(testApp, "GET", "/store-system/stores/:id", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(promMiddleware.requestDuration))
}

func TestPrometheusMiddleware_Unmatched(t *testing.T) {
	promMiddleware, _ := newTestMetrics(t)

	app := fiber.New()
	app.Use(promMiddleware.Handler())

	app.Test(httptest.NewRequest("GET", "/nope", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(promMiddleware.requestCount.WithLabelValues(testApp, "GET", "/nope", "404")))
}

func TestNewPrometheusMiddleware_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMiddleware(reg, testApp)
	require.NoError(t, err)

	_, err = NewPrometheusMiddleware(reg, testApp)
	assert.Error(t, err)
}
