package calendarhandlers

import (
	"context"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	calendarservice "github.com/Black-And-White-Club/roomly/app/modules/calendar/application"
	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
)

type FakeService struct {
	ListEventsFunc        func(ctx context.Context, p authdomain.Principal, window calendarservice.Window) ([]calendarservice.EventView, error)
	CreateEventFunc       func(ctx context.Context, p authdomain.Principal, req calendarservice.CreateEventRequest) (*calendarservice.EventView, error)
	CancelEventFunc       func(ctx context.Context, p authdomain.Principal, id int64) (*calendarservice.EventView, error)
	ReviewEventFunc       func(ctx context.Context, reviewerID, id int64, status calendardomain.Status) (*calendarservice.ReviewResult, error)
	ListAllEventsFunc     func(ctx context.Context) ([]calendarservice.AdminEventView, error)
	DeleteEventFunc       func(ctx context.Context, id int64) error
	ListParticipantsFunc  func(ctx context.Context) ([]calendardb.ParticipantDetail, error)
	DeleteParticipantFunc func(ctx context.Context, eventID, userID int64) error
}

func (f *FakeService) ListEvents(ctx context.Context, p authdomain.Principal, window calendarservice.Window) ([]calendarservice.EventView, error) {
	if f.ListEventsFunc != nil {
		return f.ListEventsFunc(ctx, p, window)
	}
	return []calendarservice.EventView{}, nil
}

func (f *FakeService) CreateEvent(ctx context.Context, p authdomain.Principal, req calendarservice.CreateEventRequest) (*calendarservice.EventView, error) {
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, p, req)
	}
	return &calendarservice.EventView{ID: "1", Title: req.Title}, nil
}

func (f *FakeService) CancelEvent(ctx context.Context, p authdomain.Principal, id int64) (*calendarservice.EventView, error) {
	if f.CancelEventFunc != nil {
		return f.CancelEventFunc(ctx, p, id)
	}
	return &calendarservice.EventView{Status: "cancelled"}, nil
}

func (f *FakeService) ReviewEvent(ctx context.Context, reviewerID, id int64, status calendardomain.Status) (*calendarservice.ReviewResult, error) {
	if f.ReviewEventFunc != nil {
		return f.ReviewEventFunc(ctx, reviewerID, id, status)
	}
	return &calendarservice.ReviewResult{ID: id, Status: string(status)}, nil
}

func (f *FakeService) ListAllEvents(ctx context.Context) ([]calendarservice.AdminEventView, error) {
	if f.ListAllEventsFunc != nil {
		return f.ListAllEventsFunc(ctx)
	}
	return []calendarservice.AdminEventView{}, nil
}

func (f *FakeService) DeleteEvent(ctx context.Context, id int64) error {
	if f.DeleteEventFunc != nil {
		return f.DeleteEventFunc(ctx, id)
	}
	return nil
}

func (f *FakeService) ListParticipants(ctx context.Context) ([]calendardb.ParticipantDetail, error) {
	if f.ListParticipantsFunc != nil {
		return f.ListParticipantsFunc(ctx)
	}
	return []calendardb.ParticipantDetail{}, nil
}

func (f *FakeService) DeleteParticipant(ctx context.Context, eventID, userID int64) error {
	if f.DeleteParticipantFunc != nil {
		return f.DeleteParticipantFunc(ctx, eventID, userID)
	}
	return nil
}

var _ calendarservice.Service = (*FakeService)(nil)
