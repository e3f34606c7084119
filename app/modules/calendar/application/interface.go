package calendarservice

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
)

// Service defines the calendar operations exposed to handlers.
type Service interface {
	// ListEvents returns the events visible to p, expanding recurring ones
	// when the window is bounded on both sides.
	ListEvents(ctx context.Context, p authdomain.Principal, window Window) ([]EventView, error)
	CreateEvent(ctx context.Context, p authdomain.Principal, req CreateEventRequest) (*EventView, error)
	CancelEvent(ctx context.Context, p authdomain.Principal, id int64) (*EventView, error)

	// ReviewEvent approves or rejects an event on behalf of reviewerID.
	ReviewEvent(ctx context.Context, reviewerID, id int64, status calendardomain.Status) (*ReviewResult, error)
	ListAllEvents(ctx context.Context) ([]AdminEventView, error)
	DeleteEvent(ctx context.Context, id int64) error
	ListParticipants(ctx context.Context) ([]calendardb.ParticipantDetail, error)
	DeleteParticipant(ctx context.Context, eventID, userID int64) error
}
