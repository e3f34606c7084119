package room

import (
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	roomservice "github.com/Black-And-White-Club/roomly/app/modules/room/application"
	roomhandlers "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/handlers"
	roomdb "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the room module.
type Module struct {
	Service  roomservice.Service
	Handlers *roomhandlers.RoomHandlers
}

// NewRoomModule wires the room repository, service and handlers.
func NewRoomModule(obs *observability.Observability, db *bun.DB) *Module {
	logger := obs.Logger.With("module", "room")
	service := roomservice.NewRoomService(roomdb.NewRepository(db), calendardb.NewRepository(db), logger, obs.Tracer, db)
	return &Module{
		Service:  service,
		Handlers: roomhandlers.NewRoomHandlers(service, logger),
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
