package calendarservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/modules/calendar/recurrence"
	roomdb "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
	"github.com/Black-And-White-Club/roomly/app/shared/dbtx"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
)

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// CreateEvent stores a new event. Club leaders create pending events for
// clubs they lead; everyone else creates approved events.
func (s *CalendarService) CreateEvent(ctx context.Context, p authdomain.Principal, req CreateEventRequest) (*EventView, error) {
	ctx, span := s.startSpan(ctx, "CreateEvent",
		attribute.Int64("user_id", p.UserID),
		attribute.String("event_type", req.EventType),
	)
	defer span.End()

	event, err := s.buildEvent(p, req)
	if err != nil {
		return nil, err
	}

	var view EventView
	err = dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		if p.Role == authdomain.RoleClubLeader {
			if req.ClubID == nil || *req.ClubID == 0 {
				return ErrClubIDRequired
			}
			ok, err := s.clubs.IsLeader(ctx, tx, *req.ClubID, p.UserID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNotClubLeader
			}
			event.Status = calendardomain.StatusPending
		}

		if nonEmpty(req.RoomCode) {
			room, err := s.rooms.FindByCodeFold(ctx, tx, *req.RoomCode)
			if err != nil {
				if errors.Is(err, roomdb.ErrNotFound) {
					return ErrRoomNotFound
				}
				return err
			}
			event.RoomID = &room.ID
			event.RoomCode = &room.Code
		} else if event.RoomID != nil {
			// An unknown room id is left to the foreign key.
			if room, err := s.rooms.GetByID(ctx, tx, *event.RoomID); err == nil {
				event.RoomCode = &room.Code
			}
		}

		if err := s.repo.Create(ctx, tx, event); err != nil {
			return err
		}
		if p.IsAdmin() && len(req.ParticipantIDs) > 0 {
			if err := s.repo.AddParticipants(ctx, tx, event.ID, req.ParticipantIDs); err != nil {
				return err
			}
		}
		view = s.toView(event)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		if _, ok := apperr.DetailOf(err); !ok {
			s.logger.ErrorContext(ctx, "Failed to create event",
				slog.Int64("user_id", p.UserID),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "Event created",
		slog.String("event_id", view.ID),
		slog.String("status", view.Status),
		slog.Int64("created_by", p.UserID),
	)
	return &view, nil
}

// buildEvent validates req and converts it into a row, without touching the
// database.
func (s *CalendarService) buildEvent(p authdomain.Principal, req CreateEventRequest) (*calendardb.Event, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	eventType := calendardomain.EventType(req.EventType)
	if !eventType.IsValid() {
		return nil, ErrInvalidEventType
	}
	if eventType == calendardomain.EventTypeLesson && !p.IsAdmin() {
		return nil, ErrLessonAdminOnly
	}

	recurring := nonEmpty(req.RRule)
	hasDuration := req.DurationMinutes != nil && *req.DurationMinutes != 0
	if recurring && !hasDuration {
		return nil, ErrDurationRequired
	}
	if !recurring && !nonEmpty(req.EndsAt) {
		return nil, ErrEndsAtRequired
	}

	tzName := s.cfg.Location.String()
	if nonEmpty(req.Timezone) {
		tzName = strings.TrimSpace(*req.Timezone)
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	if strings.TrimSpace(req.StartsAt) == "" {
		return nil, ErrStartsAtRequired
	}
	startsAt, err := calendardomain.ParseTime(req.StartsAt, loc)
	if err != nil {
		return nil, ErrInvalidStartsAt
	}

	event := &calendardb.Event{
		Title:       req.Title,
		Description: req.Description,
		EventType:   eventType,
		Status:      calendardomain.StatusApproved,
		RoomID:      req.RoomID,
		ClubID:      req.ClubID,
		StartsAt:    startsAt,
		Timezone:    tzName,
		CreatedBy:   p.UserID,
		CreatedAt:   s.now(),
	}
	if nonEmpty(req.EndsAt) {
		endsAt, err := calendardomain.ParseTime(*req.EndsAt, loc)
		if err != nil {
			return nil, ErrInvalidEndsAt
		}
		event.EndsAt = &endsAt
	}
	if recurring {
		rule := strings.TrimSpace(*req.RRule)
		if err := recurrence.Validate(rule); err != nil {
			return nil, apperr.Wrap(ErrInvalidRRule, err)
		}
		event.RRule = &rule
	}
	if hasDuration {
		minutes := *req.DurationMinutes
		event.DurationMinutes = &minutes
	}
	return event, nil
}

// CancelEvent marks an event cancelled. Only admins and the creator may do so.
func (s *CalendarService) CancelEvent(ctx context.Context, p authdomain.Principal, id int64) (*EventView, error) {
	ctx, span := s.startSpan(ctx, "CancelEvent",
		attribute.Int64("user_id", p.UserID),
		attribute.Int64("event_id", id),
	)
	defer span.End()

	var view EventView
	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		event, err := s.repo.GetByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, calendardb.ErrNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if !p.IsAdmin() && event.CreatedBy != p.UserID {
			return ErrForbidden
		}
		if err := s.repo.UpdateStatus(ctx, tx, id, calendardomain.StatusCancelled); err != nil {
			if errors.Is(err, calendardb.ErrNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		event.Status = calendardomain.StatusCancelled
		view = s.toView(event)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Event cancelled",
		slog.Int64("event_id", id),
		slog.Int64("user_id", p.UserID),
	)
	return &view, nil
}
