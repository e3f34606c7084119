package calendarservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	calendardb "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/repositories"
	"github.com/Black-And-White-Club/roomly/app/modules/calendar/recurrence"
	clubdb "github.com/Black-And-White-Club/roomly/app/modules/club/infrastructure/repositories"
	roomdb "github.com/Black-And-White-Club/roomly/app/modules/room/infrastructure/repositories"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// occurrenceLayout renders the local start of an occurrence inside its id.
const occurrenceLayout = "2006-01-02T15:04:05"

// Config holds calendar behaviour settings.
type Config struct {
	// Location is the application timezone used when an event has none.
	Location *time.Location
	// MaxOccurrences caps the expansion of one recurring event.
	MaxOccurrences int
}

// CalendarService implements the Service interface.
type CalendarService struct {
	repo   calendardb.Repository
	clubs  clubdb.Repository
	rooms  roomdb.Repository
	logger *slog.Logger
	tracer trace.Tracer
	db     *bun.DB
	cfg    Config
	now    func() time.Time
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(
	repo calendardb.Repository,
	clubs clubdb.Repository,
	rooms roomdb.Repository,
	logger *slog.Logger,
	tracer trace.Tracer,
	db *bun.DB,
	cfg Config,
) *CalendarService {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.MaxOccurrences <= 0 {
		cfg.MaxOccurrences = recurrence.DefaultMaxOccurrences
	}
	return &CalendarService{
		repo:   repo,
		clubs:  clubs,
		rooms:  rooms,
		logger: logger,
		tracer: tracer,
		db:     db,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *CalendarService) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "CalendarService."+op, trace.WithAttributes(attrs...))
}

// location resolves an event timezone, falling back to the application one.
func (s *CalendarService) location(name string) *time.Location {
	loc, err := calendardomain.LoadLocation(name, s.cfg.Location)
	if err != nil {
		return s.cfg.Location
	}
	return loc
}

func (s *CalendarService) toView(e *calendardb.Event) EventView {
	loc := s.location(e.Timezone)
	start := e.StartsAt.In(loc)
	view := EventView{
		ID:          fmt.Sprintf("%d", e.ID),
		Title:       e.Title,
		Start:       &start,
		RRule:       e.RRule,
		EventType:   string(e.EventType),
		Status:      string(e.Status),
		RoomID:      e.RoomID,
		RoomCode:    e.RoomCode,
		ClubID:      e.ClubID,
		Description: e.Description,
	}
	if e.EndsAt != nil {
		end := e.EndsAt.In(loc)
		view.End = &end
	}
	if e.DurationMinutes != nil {
		if d := calendardomain.FormatDuration(*e.DurationMinutes); d != "" {
			view.Duration = &d
		}
	}
	return view
}

// expand turns a recurring event into its occurrences within window. A rule
// that no longer parses yields nothing.
func (s *CalendarService) expand(ctx context.Context, e *calendardb.Event, window Window) []EventView {
	loc := s.location(e.Timezone)
	result, err := recurrence.Expand(recurrence.Series{
		Rule:     *e.RRule,
		Start:    e.StartsAt,
		Location: loc,
		Duration: recurrence.Duration(e.DurationMinutes, e.StartsAt, e.EndsAt),
	}, *window.Start, *window.End, s.cfg.MaxOccurrences)
	if err != nil {
		s.logger.WarnContext(ctx, "Skipping event with unparsable recurrence rule",
			slog.Int64("event_id", e.ID),
			slog.String("rrule", *e.RRule),
			slog.Any("error", err),
		)
		return nil
	}
	if result.Truncated {
		s.logger.WarnContext(ctx, "Recurring event expansion truncated",
			slog.Int64("event_id", e.ID),
			slog.Int("cap", s.cfg.MaxOccurrences),
		)
	}

	base := s.toView(e)
	views := make([]EventView, 0, len(result.Occurrences))
	for _, occ := range result.Occurrences {
		start, end := occ.Start, occ.End
		view := base
		view.ID = fmt.Sprintf("%d:%s", e.ID, start.Format(occurrenceLayout))
		view.Start = &start
		view.End = &end
		view.RRule = nil
		view.Duration = nil
		views = append(views, view)
	}
	return views
}

// scope builds the listing filter for p. ok is false when p can see nothing.
func (s *CalendarService) scope(ctx context.Context, db bun.IDB, p authdomain.Principal) (calendardb.ListFilter, bool, error) {
	switch p.Role {
	case authdomain.RoleAdmin:
		return calendardb.ListFilter{}, true, nil
	case authdomain.RoleClubLeader:
		ids, err := s.clubs.LeaderClubIDs(ctx, db, p.UserID)
		if err != nil {
			return calendardb.ListFilter{}, false, err
		}
		if len(ids) == 0 {
			return calendardb.ListFilter{}, false, nil
		}
		return calendardb.ListFilter{ClubIDs: ids}, true, nil
	default:
		return calendardb.ListFilter{
			ParticipantID: p.UserID,
			Status:        calendardomain.StatusApproved,
		}, true, nil
	}
}

func (s *CalendarService) ListEvents(ctx context.Context, p authdomain.Principal, window Window) ([]EventView, error) {
	ctx, span := s.startSpan(ctx, "ListEvents",
		attribute.Int64("user_id", p.UserID),
		attribute.String("role", p.Role.String()),
	)
	defer span.End()

	filter, ok, err := s.scope(ctx, nil, p)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to resolve event scope: %w", err)
	}
	views := make([]EventView, 0)
	if !ok {
		return views, nil
	}
	if window.Bounded() {
		filter.Before = window.End
	}

	events, err := s.repo.List(ctx, nil, filter)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for i := range events {
		e := &events[i]
		if e.IsRecurring() && window.Bounded() {
			views = append(views, s.expand(ctx, e, window)...)
			continue
		}
		views = append(views, s.toView(e))
	}
	return views, nil
}
