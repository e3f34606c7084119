package authhandlers

import (
	"log/slog"
	"net/http"

	authservice "github.com/Black-And-White-Club/roomly/app/modules/auth/application"
	"github.com/Black-And-White-Club/roomly/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// AuthHandlers serves the login endpoint.
type AuthHandlers struct {
	service authservice.Service
	limiter *IPRateLimiter
	logger  *slog.Logger
}

// NewAuthHandlers creates a new AuthHandlers. A nil limiter disables rate limiting.
func NewAuthHandlers(service authservice.Service, limiter *IPRateLimiter, logger *slog.Logger) *AuthHandlers {
	return &AuthHandlers{service: service, limiter: limiter, logger: logger}
}

// RegisterRoutes mounts the public auth endpoints.
func (h *AuthHandlers) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(RateLimitMiddleware(h.limiter))
		}
		r.Post("/api/auth/telegram", h.HandleTelegramLogin)
	})
}

func (h *AuthHandlers) HandleTelegramLogin(w http.ResponseWriter, r *http.Request) {
	var req authservice.LoginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	resp, err := h.service.LoginWithTelegram(r.Context(), req.InitData)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
