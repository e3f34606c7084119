package clubhandlers

import (
	"log/slog"
	"net/http"

	clubservice "github.com/Black-And-White-Club/roomly/app/modules/club/application"
	"github.com/Black-And-White-Club/roomly/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// ClubHandlers serves the club HTTP endpoints.
type ClubHandlers struct {
	service clubservice.Service
	logger  *slog.Logger
}

// NewClubHandlers creates a new ClubHandlers.
func NewClubHandlers(service clubservice.Service, logger *slog.Logger) *ClubHandlers {
	return &ClubHandlers{service: service, logger: logger}
}

// RegisterRoutes mounts the endpoints available to any authenticated user.
func (h *ClubHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/clubs/my", h.HandleListMine)
	r.Get("/api/clubs/memberships", h.HandleListMemberships)
	r.Post("/api/clubs/members", h.HandleAddMember)
	r.Delete("/api/clubs/members", h.HandleLeaveClub)
	r.Get("/api/clubs/members", h.HandleListRoster)
}

// RegisterAdminRoutes mounts the admin-only endpoints.
func (h *ClubHandlers) RegisterAdminRoutes(r chi.Router) {
	r.Post("/api/admin/clubs", h.HandleCreateClub)
	r.Get("/api/admin/clubs", h.HandleListClubs)
	r.Delete("/api/admin/clubs/{id}", h.HandleDeleteClub)
	r.Post("/api/admin/clubs/{id}/leaders", h.HandleAssignLeader)
	r.Post("/api/admin/clubs/leader", h.HandleAssignLeaderByName)
	r.Get("/api/admin/club-members", h.HandleListAllMembers)
	r.Delete("/api/admin/club-members", h.HandleRemoveMember)
}

func (h *ClubHandlers) HandleListMine(w http.ResponseWriter, r *http.Request) {
	p, err := httpx.Principal(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	clubs, err := h.service.ListMine(r.Context(), p)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clubs)
}

func (h *ClubHandlers) HandleListMemberships(w http.ResponseWriter, r *http.Request) {
	p, err := httpx.Principal(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	memberships, err := h.service.ListMemberships(r.Context(), p)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, memberships)
}

func (h *ClubHandlers) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	p, err := httpx.Principal(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req clubservice.AddMemberRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	membership, err := h.service.AddMember(r.Context(), p, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, membership)
}

func (h *ClubHandlers) HandleLeaveClub(w http.ResponseWriter, r *http.Request) {
	p, err := httpx.Principal(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	name, err := httpx.QueryString(r, "club_name")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.LeaveClub(r.Context(), p, name)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ClubHandlers) HandleListRoster(w http.ResponseWriter, r *http.Request) {
	p, err := httpx.Principal(r)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	name, err := httpx.QueryString(r, "club_name")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	roster, err := h.service.ListRoster(r.Context(), p, name)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, roster)
}

func (h *ClubHandlers) HandleCreateClub(w http.ResponseWriter, r *http.Request) {
	var req clubservice.CreateClubRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	club, err := h.service.CreateClub(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, club)
}

func (h *ClubHandlers) HandleListClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.service.ListClubs(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, clubs)
}

func (h *ClubHandlers) HandleDeleteClub(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.DeleteClub(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "status": "deleted"})
}

func (h *ClubHandlers) HandleAssignLeader(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req clubservice.AssignLeaderRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.AssignLeader(r.Context(), id, req.UserID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ClubHandlers) HandleAssignLeaderByName(w http.ResponseWriter, r *http.Request) {
	var req clubservice.AssignLeaderByNameRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	res, err := h.service.AssignLeaderByName(r.Context(), req.ClubName, req.UserEmail)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, res)
}

func (h *ClubHandlers) HandleListAllMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListAllMembers(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, members)
}

func (h *ClubHandlers) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	clubID, err := httpx.QueryInt64(r, "club_id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	userID, err := httpx.QueryInt64(r, "user_id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := h.service.RemoveMember(r.Context(), clubID, userID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"club_id": clubID, "user_id": userID, "status": "deleted"})
}
