package appconfig

import (
	"strings"
	"time"

	"mergington.dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address for the activities API and the static front-end.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:8000"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging
	// (pprof and fgprof endpoints) and log at trace level.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"stdout"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// DatabaseURL selects the relational store. DSNs starting with postgres:// or postgresql://
	// are opened with pgdriver (see https://bun.uptrace.dev/postgres/#pgdriver); anything else is
	// handed to SQLite as a file name or URI.
	DatabaseURL string `required:"true" split_words:"true" default:"file:activities.db?cache=shared"`

	DatabaseMaxOpenConns    int           `split_words:"true" default:"10"`
	DatabaseMaxIdleConns    int           `split_words:"true" default:"2"`
	DatabaseConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	DatabaseConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	// DatabaseConnectAttempts is how many times the database is pinged at startup before giving up.
	DatabaseConnectAttempts uint `split_words:"true" default:"5"`

	BunDebugVerbose bool `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// SeedOnStart runs the seed utility before the server starts listening.
	SeedOnStart bool `split_words:"true"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}

// IsPostgres reports whether DatabaseURL points at a PostgreSQL server.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}
