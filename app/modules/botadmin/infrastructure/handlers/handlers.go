package botadminhandlers

import (
	"log/slog"
	"net/http"

	botadminservice "github.com/Black-And-White-Club/roomly/app/modules/botadmin/application"
	"github.com/Black-And-White-Club/roomly/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// BotAdminHandlers serves the endpoints called by the Telegram relay.
type BotAdminHandlers struct {
	service botadminservice.Service
	logger  *slog.Logger
}

// NewBotAdminHandlers creates a new BotAdminHandlers.
func NewBotAdminHandlers(service botadminservice.Service, logger *slog.Logger) *BotAdminHandlers {
	return &BotAdminHandlers{service: service, logger: logger}
}

// RegisterBotRoutes mounts the bot endpoints. The caller guards r with the
// bot admin token.
func (h *BotAdminHandlers) RegisterBotRoutes(r chi.Router) {
	r.Post("/api/bot/assign-role", h.HandleAssignRole)
	r.Post("/api/bot/assign-club-leader", h.HandleAssignClubLeader)
	r.Post("/api/bot/create-club", h.HandleCreateClub)
	r.Post("/api/bot/upsert-user", h.HandleUpsertUser)
	r.Post("/api/bot/set-email", h.HandleSetEmail)
}

func (h *BotAdminHandlers) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	var req botadminservice.AssignRoleRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.AssignRole(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *BotAdminHandlers) HandleAssignClubLeader(w http.ResponseWriter, r *http.Request) {
	var req botadminservice.AssignClubLeaderRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.AssignClubLeader(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *BotAdminHandlers) HandleCreateClub(w http.ResponseWriter, r *http.Request) {
	var req botadminservice.CreateClubRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.CreateClub(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *BotAdminHandlers) HandleUpsertUser(w http.ResponseWriter, r *http.Request) {
	var req botadminservice.UpsertUserRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.UpsertUser(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *BotAdminHandlers) HandleSetEmail(w http.ResponseWriter, r *http.Request) {
	var req botadminservice.SetEmailRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.SetEmail(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}
