package app

import (
	"net/http"
	"path/filepath"

	authhandlers "github.com/Black-And-White-Club/roomly/app/modules/auth/infrastructure/handlers"
	"github.com/Black-And-White-Club/roomly/app/observability"
	"github.com/Black-And-White-Club/roomly/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router builds the API handler. Routes are grouped by the guard they need:
// public, any signed-in user, admins, and the bot relay.
func (app *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(app.Observability.Metrics.Middleware)
	r.Use(observability.RequestLogger(app.Observability.Logger))
	r.Use(authhandlers.CORSMiddleware(app.Config.HTTP.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	guard := app.Modules.Auth.Guard
	app.Modules.Auth.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(guard.Authenticate)
		app.Modules.Calendar.RegisterRoutes(r)
		app.Modules.Club.RegisterRoutes(r)
		app.Modules.Room.RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(guard.RequireAdmin)
			app.Modules.Calendar.RegisterAdminRoutes(r)
			app.Modules.Club.RegisterAdminRoutes(r)
			app.Modules.Room.RegisterAdminRoutes(r)
			app.Modules.User.RegisterAdminRoutes(r)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(guard.RequireBotToken)
		app.Modules.BotAdmin.RegisterBotRoutes(r)
	})

	if dir := app.Config.HTTP.StaticDir; dir != "" {
		mountStatic(r, dir)
	}
	return r
}

// mountStatic serves the web app bundle from dir.
func mountStatic(r chi.Router, dir string) {
	file := func(name string) http.HandlerFunc {
		path := filepath.Join(dir, name)
		return func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, path)
		}
	}
	r.Get("/", file("index.html"))
	r.Get("/style.css", file("style.css"))
	r.Get("/script.js", file("script.js"))
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(dir, "assets")))))
}
