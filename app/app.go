package app

import (
	"context"
	"fmt"

	"github.com/Black-And-White-Club/roomly/app/modules/auth"
	"github.com/Black-And-White-Club/roomly/app/modules/botadmin"
	"github.com/Black-And-White-Club/roomly/app/modules/calendar"
	"github.com/Black-And-White-Club/roomly/app/modules/club"
	"github.com/Black-And-White-Club/roomly/app/modules/room"
	"github.com/Black-And-White-Club/roomly/app/modules/user"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/Black-And-White-Club/roomly/config"
	"github.com/uptrace/bun"
)

// Modules holds every wired application module.
type Modules struct {
	Auth     *auth.Module
	User     *user.Module
	Club     *club.Module
	Room     *room.Module
	Calendar *calendar.Module
	BotAdmin *botadmin.Module
}

// App is the Roomly API process.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	DB            *bun.DB
	Modules       Modules
}

// NewApp opens the database and wires all modules.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs := observability.New(observability.Config{
		Environment: cfg.Observability.Environment,
		LogLevel:    cfg.Observability.LogLevel,
	})

	db, err := OpenDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, err
	}

	app, err := NewAppWithDB(cfg, obs, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// NewAppWithDB wires all modules on an existing connection.
func NewAppWithDB(cfg *config.Config, obs *observability.Observability, db *bun.DB) (*App, error) {
	loc, err := cfg.Calendar.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar timezone: %w", err)
	}

	clubModule := club.NewClubModule(obs, db)
	modules := Modules{
		Auth: auth.NewModule(obs, db, auth.Config{
			JWTSecret:      cfg.JWT.Secret,
			TokenTTL:       cfg.JWT.DefaultTTL,
			BotToken:       cfg.Auth.BotToken,
			BotAdminToken:  cfg.Auth.BotAdminToken,
			InitDataMaxAge: cfg.Auth.InitDataMaxAge,
			RatePerSecond:  cfg.Auth.RatePerSecond,
			RateBurst:      cfg.Auth.RateBurst,
		}),
		User: user.NewUserModule(obs, db),
		Club: clubModule,
		Room: room.NewRoomModule(obs, db),
		Calendar: calendar.NewCalendarModule(obs, db, calendar.Config{
			Location:       loc,
			MaxOccurrences: cfg.Calendar.MaxOccurrences,
		}),
		BotAdmin: botadmin.NewBotAdminModule(obs, db, clubModule.Service),
	}

	return &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		Modules:       modules,
	}, nil
}
