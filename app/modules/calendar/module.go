package calendar

import (
	"time"

	calendarservice "github.com/Black-And-White-Club/roomly/app/modules/calendar/application"
	calendarhandlers "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/handlers"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	roomdb "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the calendar module.
type Module struct {
	Service  calendarservice.Service
	Handlers *calendarhandlers.CalendarHandlers
}

// Config carries the calendar settings of the application config.
type Config struct {
	Location       *time.Location
	MaxOccurrences int
}

// NewCalendarModule wires the calendar repository, service and handlers.
func NewCalendarModule(obs *observability.Observability, db *bun.DB, cfg Config) *Module {
	logger := obs.Logger.With("module", "calendar")

	service := calendarservice.NewCalendarService(
		calendardb.NewRepository(db),
		clubdb.NewRepository(db),
		roomdb.NewRepository(db),
		logger,
		obs.Tracer,
		db,
		calendarservice.Config{Location: cfg.Location, MaxOccurrences: cfg.MaxOccurrences},
	)

	return &Module{
		Service:  service,
		Handlers: calendarhandlers.NewCalendarHandlers(service, logger, cfg.Location),
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
