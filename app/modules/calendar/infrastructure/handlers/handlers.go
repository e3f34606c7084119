package calendarhandlers

import (
	"log/slog"
	"net/http"
	"time"

	calendarservice "github.com/Black-And-White-Club/roomly/app/modules/calendar/application"
	calendardomain "github.com/Black-And-White-Club/roomly/app/modules/calendar/domain"
	calendarics "github.com/Black-And-White-Club/roomly/app/modules/calendar/infrastructure/ics"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
	"github.com/Black-And-White-Club/roomly/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// CalendarHandlers serves the calendar HTTP endpoints.
type CalendarHandlers struct {
	service calendarservice.Service
	logger  *slog.Logger
	loc     *time.Location
	now     func() time.Time
}

// NewCalendarHandlers creates a new CalendarHandlers. loc is used to read
// window bounds given without an offset.
func NewCalendarHandlers(service calendarservice.Service, logger *slog.Logger, loc *time.Location) *CalendarHandlers {
	if loc == nil {
		loc = time.UTC
	}
	return &CalendarHandlers{service: service, logger: logger, loc: loc, now: time.Now}
}

// RegisterRoutes mounts the endpoints available to any authenticated user.
func (h *CalendarHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/calendar/events", h.HandleListEvents)
	r.Get("/api/calendar/events.ics", h.HandleEventFeed)
	r.Post("/api/calendar/events", h.HandleCreateEvent)
	r.Patch("/api/calendar/events/{id}/cancel", h.HandleCancelEvent)
}

// RegisterAdminRoutes mounts the admin-only endpoints.
func (h *CalendarHandlers) RegisterAdminRoutes(r chi.Router) {
	r.Get("/api/admin/events", h.HandleListAllEvents)
	r.Post("/api/admin/events/{id}/approve", h.handleReview(calendardomain.StatusApproved))
	r.Post("/api/admin/events/{id}/reject", h.handleReview(calendardomain.StatusRejected))
	r.Delete("/api/admin/events/{id}", h.HandleDeleteEvent)
	r.Get("/api/admin/event-participants", h.HandleListParticipants)
	r.Delete("/api/admin/event-participants", h.HandleDeleteParticipant)
}

func (h *CalendarHandlers) window(r *http.Request) (calendarservice.Window, error) {
	var w calendarservice.Window
	for _, bound := range []struct {
		name string
		dst  **time.Time
	}{{"start", &w.Start}, {"end", &w.End}} {
		raw := r.URL.Query().Get(bound.name)
		if raw == "" {
			continue
		}
		t, err := calendardomain.ParseTime(raw, h.loc)
		if err != nil {
			return w, apperr.Invalid("invalid " + bound.name)
		}
		*bound.dst = &t
	}
	return w, nil
}

func (h *CalendarHandlers) listForCaller(r *http.Request) ([]calendarservice.EventView, error) {
	p, err := httpx.Principal(r)
	if err != nil {
		return nil, err
	}
	window, err := h.window(r)
	if err != nil {
		return nil, err
	}
	return h.service.ListEvents(r.Context(), p, window)
}

func (h *CalendarHandlers) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	views, err := h.listForCaller(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, views)
}

func (h *CalendarHandlers) HandleEventFeed(w http.ResponseWriter, r *http.Request) {
	views, err := h.listForCaller(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", calendarics.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(calendarics.Render(views, h.now())))
}

func (h *CalendarHandlers) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	p, err := httpx.Principal(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req calendarservice.CreateEventRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	view, err := h.service.CreateEvent(r.Context(), p, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *CalendarHandlers) HandleCancelEvent(w http.ResponseWriter, r *http.Request) {
	p, err := httpx.Principal(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	view, err := h.service.CancelEvent(r.Context(), p, id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *CalendarHandlers) handleReview(status calendardomain.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := httpx.Principal(r)
		if err != nil {
			httpx.WriteError(w, r, h.logger, err)
			return
		}
		id, err := httpx.PathInt64(r, "id")
		if err != nil {
			httpx.WriteError(w, r, h.logger, err)
			return
		}
		res, err := h.service.ReviewEvent(r.Context(), p.UserID, id, status)
		if err != nil {
			httpx.WriteError(w, r, h.logger, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, res)
	}
}

func (h *CalendarHandlers) HandleListAllEvents(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListAllEvents(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rows)
}

func (h *CalendarHandlers) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteEvent(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "status": "deleted"})
}

func (h *CalendarHandlers) HandleListParticipants(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListParticipants(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rows)
}

func (h *CalendarHandlers) HandleDeleteParticipant(w http.ResponseWriter, r *http.Request) {
	eventID, err := httpx.QueryInt64(r, "event_id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	userID, err := httpx.QueryInt64(r, "user_id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteParticipant(r.Context(), eventID, userID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"event_id": eventID,
		"user_id":  userID,
		"status":   "deleted",
	})
}
