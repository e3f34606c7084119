package club

import (
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
	clubhandlers "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/handlers"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/roomly/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the club module.
type Module struct {
	Service  clubservice.Service
	Handlers *clubhandlers.ClubHandlers
}

// NewClubModule wires the club repository, service and handlers.
func NewClubModule(obs *observability.Observability, db *bun.DB) *Module {
	logger := obs.Logger.With("module", "club")

	service := clubservice.NewClubService(
		clubdb.NewRepository(db),
		userdb.NewRepository(db),
		calendardb.NewRepository(db),
		logger,
		obs.Tracer,
		db,
	)

	return &Module{
		Service:  service,
		Handlers: clubhandlers.NewClubHandlers(service, logger),
	}
}

// RegisterRoutes mounts the endpoints for authenticated users.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.RegisterRoutes(r)
}

// RegisterAdminRoutes mounts the admin endpoints.
func (m *Module) RegisterAdminRoutes(r chi.Router) {
	m.Handlers.RegisterAdminRoutes(r)
}
