package auth

import (
	"time"

	authservice "github.com/Black-And-White-Club/roomly/app/modules/auth/application"
	authhandlers "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/jwt"
	authtelegram "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/telegram"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"
)

// Config carries the auth settings of the application config.
type Config struct {
	JWTSecret      string
	TokenTTL       time.Duration
	BotToken       string
	BotAdminToken  string
	InitDataMaxAge time.Duration
	RatePerSecond  float64
	RateBurst      int
}

// Module represents the unified auth module.
type Module struct {
	Service  authservice.Service
	Handlers *authhandlers.AuthHandlers
	Guard    *authhandlers.Guard
}

// NewModule wires the token provider, Telegram verifier, service and middlewares.
func NewModule(obs *observability.Observability, db *bun.DB, cfg Config) *Module {
	logger := obs.Logger.With("module", "auth")

	service := authservice.NewService(
		authjwt.NewProvider(cfg.JWTSecret),
		authtelegram.NewVerifier(cfg.BotToken, cfg.InitDataMaxAge),
		userdb.NewRepository(db),
		authservice.Config{TokenTTL: cfg.TokenTTL},
		logger,
		obs.Tracer,
		db,
	)

	var limiter *authhandlers.IPRateLimiter
	if cfg.RatePerSecond > 0 {
		limiter = authhandlers.NewIPRateLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst)
	}

	return &Module{
		Service:  service,
		Handlers: authhandlers.NewAuthHandlers(service, limiter, logger),
		Guard:    authhandlers.NewGuard(service, cfg.BotAdminToken, logger),
	}
}

// RegisterRoutes mounts the public auth endpoints.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.RegisterRoutes(r)
}
