package botadmin

import (
	botadminservice "github.com/Black-And-White-Club/roomly/app/modules/botadmin/application"
	botadminhandlers "github.com/Black-And-White-Club/roomly/app/modules/botadmin/infrastructure/handlers"
	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the bot admin module.
type Module struct {
	Service  botadminservice.Service
	Handlers *botadminhandlers.BotAdminHandlers
}

// NewBotAdminModule wires the bot endpoints on top of the club service.
func NewBotAdminModule(obs *observability.Observability, db *bun.DB, clubs clubservice.Service) *Module {
	logger := obs.Logger.With("module", "botadmin")

	service := botadminservice.NewBotAdminService(
		userdb.NewRepository(db),
		clubdb.NewRepository(db),
		clubs,
		logger,
		obs.Tracer,
		db,
	)

	return &Module{
		Service:  service,
		Handlers: botadminhandlers.NewBotAdminHandlers(service, logger),
	}
}

// RegisterBotRoutes mounts the bot endpoints.
func (m *Module) RegisterBotRoutes(r chi.Router) {
	m.Handlers.RegisterBotRoutes(r)
}
