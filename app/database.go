package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	calendarmigrations "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories/migrations"
	clubmigrations "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories/migrations"
	roommigrations "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

// OpenDB connects to Postgres and verifies the connection.
func OpenDB(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// ModuleMigrator is the migrator of one module.
type ModuleMigrator struct {
	Module   string
	Migrator *migrate.Migrator
}

// Migrators returns one migrator per module in foreign key order. Each
// module tracks its migrations in its own table.
func Migrators(db *bun.DB) []ModuleMigrator {
	newMigrator := func(module string, migrations *migrate.Migrations) ModuleMigrator {
		return ModuleMigrator{
			Module: module,
			Migrator: migrate.NewMigrator(db, migrations,
				migrate.WithTableName("bun_migrations_"+module),
				migrate.WithLocksTableName("bun_migration_locks_"+module),
			),
		}
	}
	return []ModuleMigrator{
		newMigrator("user", usermigrations.Migrations),
		newMigrator("club", clubmigrations.Migrations),
		newMigrator("room", roommigrations.Migrations),
		newMigrator("calendar", calendarmigrations.Migrations),
	}
}

// Migrate creates the migration tables and applies pending migrations.
func Migrate(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init migrations for %s: %w", m.Module, err)
		}
		group, err := m.Migrator.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to migrate %s: %w", m.Module, err)
		}
		if group.IsZero() {
			logger.InfoContext(ctx, "No new migrations", slog.String("module", m.Module))
			continue
		}
		logger.InfoContext(ctx, "Migrated module", slog.String("module", m.Module), slog.String("group", group.String()))
	}
	return nil
}
