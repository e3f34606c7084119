package roomhandlers

import (
	"log/slog"
	"net/http"

	roomservice "github.com/Black-And-White-Club/roomly/app/modules/room/application"
	"github.com/Black-And-White-Club/roomly/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// RoomHandlers serves the room HTTP endpoints.
type RoomHandlers struct {
	service roomservice.Service
	logger  *slog.Logger
}

// NewRoomHandlers creates a new RoomHandlers.
func NewRoomHandlers(service roomservice.Service, logger *slog.Logger) *RoomHandlers {
	return &RoomHandlers{service: service, logger: logger}
}

// RegisterRoutes mounts the endpoints available to any authenticated user.
func (h *RoomHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/rooms/available", h.HandleListAvailable)
}

// RegisterAdminRoutes mounts the admin-only endpoints.
func (h *RoomHandlers) RegisterAdminRoutes(r chi.Router) {
	r.Get("/api/admin/rooms", h.HandleListAll)
	r.Post("/api/admin/rooms", h.HandleCreate)
	r.Patch("/api/admin/rooms/{code}", h.HandleUpdate)
	r.Delete("/api/admin/rooms/{code}", h.HandleDelete)
}

func (h *RoomHandlers) HandleListAvailable(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListAvailable(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandlers) HandleListAll(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListAll(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roomservice.CreateRoomRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	room, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, room)
}

func (h *RoomHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req roomservice.UpdateRoomRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	room, err := h.service.Update(r.Context(), chi.URLParam(r, "code"), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, room)
}

func (h *RoomHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.service.Delete(r.Context(), code); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"code": code, "status": "deleted"})
}
