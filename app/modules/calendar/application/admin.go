package calendarservice

import (
	"context"
	"errors"
	"log/slog"

	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/shared/dbtx"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
)

// ReviewEvent sets the review status and records the reviewer.
func (s *CalendarService) ReviewEvent(ctx context.Context, reviewerID, id int64, status calendardomain.Status) (*ReviewResult, error) {
	ctx, span := s.startSpan(ctx, "ReviewEvent",
		attribute.Int64("event_id", id),
		attribute.String("status", string(status)),
	)
	defer span.End()

	if err := s.repo.Review(ctx, nil, id, status, reviewerID, s.now()); err != nil {
		span.RecordError(err)
		if errors.Is(err, calendardb.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "Event reviewed",
		slog.Int64("event_id", id),
		slog.String("status", string(status)),
		slog.Int64("reviewer_id", reviewerID),
	)
	return &ReviewResult{ID: id, Status: string(status)}, nil
}

func (s *CalendarService) ListAllEvents(ctx context.Context) ([]AdminEventView, error) {
	ctx, span := s.startSpan(ctx, "ListAllEvents")
	defer span.End()

	events, err := s.repo.List(ctx, nil, calendardb.ListFilter{})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out := make([]AdminEventView, 0, len(events))
	for _, e := range events {
		out = append(out, AdminEventView{
			ID:        e.ID,
			Title:     e.Title,
			Status:    string(e.Status),
			EventType: string(e.EventType),
			ClubID:    e.ClubID,
			RoomCode:  e.RoomCode,
		})
	}
	return out, nil
}

// DeleteEvent removes an event together with its participants.
func (s *CalendarService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, span := s.startSpan(ctx, "DeleteEvent", attribute.Int64("event_id", id))
	defer span.End()

	err := dbtx.Run(ctx, s.db, func(ctx context.Context, tx bun.IDB) error {
		if _, err := s.repo.GetByID(ctx, tx, id); err != nil {
			if errors.Is(err, calendardb.ErrNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		return s.repo.DeleteWithParticipants(ctx, tx, []int64{id})
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.logger.InfoContext(ctx, "Event deleted", slog.Int64("event_id", id))
	return nil
}

func (s *CalendarService) ListParticipants(ctx context.Context) ([]calendardb.ParticipantDetail, error) {
	ctx, span := s.startSpan(ctx, "ListParticipants")
	defer span.End()

	rows, err := s.repo.ListParticipants(ctx, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return rows, nil
}

func (s *CalendarService) DeleteParticipant(ctx context.Context, eventID, userID int64) error {
	ctx, span := s.startSpan(ctx, "DeleteParticipant",
		attribute.Int64("event_id", eventID),
		attribute.Int64("user_id", userID),
	)
	defer span.End()

	if err := s.repo.DeleteParticipant(ctx, nil, eventID, userID); err != nil {
		span.RecordError(err)
		if errors.Is(err, calendardb.ErrParticipantNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}
	return nil
}

var _ Service = (*CalendarService)(nil)
