package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storeapi/internal/config"
	"storeapi/internal/database"
	"storeapi/internal/database/migration"
	"storeapi/internal/http/middleware"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Name:            "store_system",
		Port:            "0",
		APIPrefix:       "/store-system",
		ShutdownTimeout: time.Second,
	}
}

func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), database.NewGormConfig(database.GormOptions{Logger: zerolog.Nop()}))
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, migration.EnsureMigrated(context.Background(), gdb, zerolog.Nop()))
	return &database.DB{SQL: sqlDB, Gorm: gdb}
}

func TestRunFailsOnInvalidDatabaseConfig(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")

	err := run(testConfig(), zerolog.Nop())

	assert.ErrorContains(t, err, "invalid database config")
}

func TestNewServer(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	app, err := newServer(testConfig(), zerolog.New(&buf), newTestDatabase(t), reg, reg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/store-system/stores/", strings.NewReader(`{"name":"Main","location":"Jakarta"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, "boot-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "boot-1", resp.Header.Get(middleware.RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `request_count{app_name="store_system",endpoint="/store-system/stores/",http_status="200",method="POST"} 1`)

	assert.Contains(t, buf.String(), `"request_id":"boot-1"`)
}

func TestNewServerRejectsDuplicateMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	db := newTestDatabase(t)

	_, err := newServer(testConfig(), zerolog.Nop(), db, reg, reg)
	require.NoError(t, err)

	_, err = newServer(testConfig(), zerolog.Nop(), db, reg, reg)
	assert.Error(t, err)
}
