package user

import (
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	userservice "github.com/Black-And-White-Club/roomly/app/modules/user/application"
	userhandlers "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/handlers"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the user module.
type Module struct {
	Service  userservice.Service
	Handlers *userhandlers.UserHandlers
}

// NewUserModule wires the user repository, service and handlers.
func NewUserModule(obs *observability.Observability, db *bun.DB) *Module {
	logger := obs.Logger.With("module", "user")

	service := userservice.NewUserService(
		userdb.NewRepository(db),
		calendardb.NewRepository(db),
		clubdb.NewRepository(db),
		logger,
		obs.Tracer,
		db,
	)

	return &Module{
		Service:  service,
		Handlers: userhandlers.NewUserHandlers(service, logger),
	}
}

// RegisterAdminRoutes mounts the admin endpoints.
func (m *Module) RegisterAdminRoutes(r chi.Router) {
	m.Handlers.RegisterAdminRoutes(r)
}
