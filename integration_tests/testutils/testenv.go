//go:build integration

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/roomly/app"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/Black-And-White-Club/roomly/config"
	"github.com/Black-And-White-Club/roomly/integration_tests/containers"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// BotAdminToken is the relay secret configured for the test API.
	BotAdminToken = "integration-bot-secret"
	// JWTSecret signs the session tokens of the test API.
	JWTSecret = "integration-jwt-secret"
)

// TestEnvironment holds the container, database and wired application.
type TestEnvironment struct {
	Ctx         context.Context
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	Config      *config.Config
	App         *app.App
}

// NewTestEnvironment starts Postgres, migrates it and wires the application.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	db := bun.NewDB(sqlDB, pgdialect.New())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := app.Migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cfg := &config.Config{
		Postgres: config.PostgresConfig{DSN: connStr},
		HTTP:     config.HTTPConfig{Addr: ":0"},
		JWT:      config.JWTConfig{Secret: JWTSecret, DefaultTTL: time.Hour},
		Auth: config.AuthConfig{
			BotAdminToken: BotAdminToken,
			RatePerSecond: 1000,
			RateBurst:     1000,
		},
		Calendar: config.CalendarConfig{Timezone: "UTC", MaxOccurrences: config.DefaultMaxOccurrences},
	}

	reg := prometheus.NewRegistry()
	obs := &observability.Observability{
		Logger:   logger,
		Tracer:   noop.NewTracerProvider().Tracer("test"),
		Metrics:  observability.NewHTTPMetrics(reg),
		Registry: reg,
	}
	application, err := app.NewAppWithDB(cfg, obs, db)
	if err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	return &TestEnvironment{
		Ctx:         ctx,
		PgContainer: pgContainer,
		DB:          db,
		Config:      cfg,
		App:         application,
	}, nil
}

// Reset empties every table between tests.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	return TruncateTables(ctx, env.DB,
		"event_participants", "calendar_events", "club_members", "clubs", "rooms", "users")
}

// Cleanup closes the database and stops the container.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		_ = env.DB.Close()
	}
	if env.PgContainer != nil {
		_ = env.PgContainer.Terminate(context.Background())
	}
}
