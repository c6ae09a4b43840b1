package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	// URL, when set, is used verbatim and the individual parts below are ignored.
	URL             string        `envconfig:"DATABASE_URL"`
	Host            string        `envconfig:"DB_HOST"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME"`
	SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Name            string        `envconfig:"APP_NAME" default:"store_system"`
	Port            string        `envconfig:"PORT" default:"8080"`
	APIPrefix       string        `envconfig:"API_V1_STR" default:"/store-system"`
	Debug           bool          `envconfig:"DEBUG" default:"false"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	Log             LogConfig
	Database        DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over .env values.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.APIPrefix = normalizePrefix(cfg.APIPrefix)
	return &cfg, nil
}

// LogLevel returns the effective log level; DEBUG always wins.
func (c *AppConfig) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.Log.Level
}

func normalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimRight(p, "/")
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
