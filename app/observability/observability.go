package observability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "roomly"

// Config mirrors the observability section of the application config.
type Config struct {
	Environment string
	LogLevel    string
}

// Observability bundles the logger, tracer and metrics shared by all modules.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Metrics  *HTTPMetrics
	Registry *prometheus.Registry
}

// New builds the observability stack. Development gets a text logger; every
// other environment logs JSON.
func New(cfg Config) *Observability {
	reg := prometheus.NewRegistry()
	return &Observability{
		Logger:   NewLogger(cfg),
		Tracer:   otel.Tracer(serviceName),
		Metrics:  NewHTTPMetrics(reg),
		Registry: reg,
	}
}

// NewLogger returns a slog logger for the given environment and level.
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if cfg.Environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(
		slog.String("service", serviceName),
		slog.String("environment", cfg.Environment),
	)
}

// ParseLevel maps a textual level to slog; unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
