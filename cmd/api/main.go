package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Black-And-White-Club/roomly/app"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/Black-And-White-Club/roomly/config"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "roomly-api",
		Usage: "room booking and club calendar API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "auto-migrate",
				Value:   true,
				Usage:   "apply pending migrations before serving",
				EnvVars: []string{"AUTO_MIGRATE"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			ctx, stop := app.ShutdownContext(c.Context)
			defer stop()

			application, err := app.NewApp(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			defer application.Close()

			if c.Bool("auto-migrate") {
				if err := app.Migrate(ctx, application.DB, application.Observability.Logger); err != nil {
					return err
				}
			}

			return application.Start(ctx)
		},
	}
}

func migrateCommand() *cli.Command {
	// withMigrators opens the database and hands the module migrators to fn.
	withMigrators := func(fn func(ctx context.Context, migrators []app.ModuleMigrator) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			db, err := app.OpenDB(c.Context, cfg.Postgres.DSN)
			if err != nil {
				return err
			}
			defer db.Close()
			return fn(c.Context, app.Migrators(db))
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: withMigrators(func(ctx context.Context, migrators []app.ModuleMigrator) error {
					for _, m := range migrators {
						fmt.Printf("Initializing migrations for module: %s\n", m.Module)
						if err := m.Migrator.Init(ctx); err != nil {
							return fmt.Errorf("failed to init migrations for %s: %w", m.Module, err)
						}
					}
					return nil
				}),
			},
			{
				Name:  "up",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c)
					if err != nil {
						return err
					}
					db, err := app.OpenDB(c.Context, cfg.Postgres.DSN)
					if err != nil {
						return err
					}
					defer db.Close()
					logger := observability.NewLogger(observability.Config{
						Environment: cfg.Observability.Environment,
						LogLevel:    cfg.Observability.LogLevel,
					})
					return app.Migrate(c.Context, db, logger)
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: withMigrators(func(ctx context.Context, migrators []app.ModuleMigrator) error {
					// Reverse order so dependent tables go first.
					for i := len(migrators) - 1; i >= 0; i-- {
						m := migrators[i]
						group, err := m.Migrator.Rollback(ctx)
						if err != nil {
							return fmt.Errorf("failed to roll back %s: %w", m.Module, err)
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", m.Module)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", m.Module, group)
						}
					}
					return nil
				}),
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: withMigrators(func(ctx context.Context, migrators []app.ModuleMigrator) error {
					for _, m := range migrators {
						ms, err := m.Migrator.MigrationsWithStatus(ctx)
						if err != nil {
							return err
						}
						fmt.Printf("Migrations for module: %s\n", m.Module)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					}
					return nil
				}),
			},
		},
	}
}
