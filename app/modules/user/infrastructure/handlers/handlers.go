package userhandlers

import (
	"log/slog"
	"net/http"

	userservice "github.com/Black-And-White-Club/roomly/app/modules/user/application"
	"github.com/Black-And-White-Club/roomly/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// UserHandlers serves the admin user endpoints.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
}

// NewUserHandlers creates a new UserHandlers.
func NewUserHandlers(service userservice.Service, logger *slog.Logger) *UserHandlers {
	return &UserHandlers{service: service, logger: logger}
}

// RegisterAdminRoutes mounts the admin-only endpoints.
func (h *UserHandlers) RegisterAdminRoutes(r chi.Router) {
	r.Post("/api/admin/users/{id}/role", h.HandleSetRole)
	r.Post("/api/admin/users/role", h.HandleSetRoleByEmail)
	r.Get("/api/admin/users", h.HandleListUsers)
	r.Delete("/api/admin/users/{id}", h.HandleDeleteUser)
}

func (h *UserHandlers) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req userservice.RoleRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.SetRole(r.Context(), id, req.Role)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *UserHandlers) HandleSetRoleByEmail(w http.ResponseWriter, r *http.Request) {
	var req userservice.RoleByEmailRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.SetRoleByEmail(r.Context(), req.Email, req.Role)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *UserHandlers) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandlers) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "status": "deleted"})
}
