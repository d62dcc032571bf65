package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"focustube-backend/internal/handlers"
	"focustube-backend/internal/middleware"
)

func New(
	searchHandler *handlers.SearchHandler,
	videoHandler *handlers.VideoHandler,
	playlistHandler *handlers.PlaylistHandler,
	activityHandler *handlers.ActivityHandler,
	preferencesHandler *handlers.PreferencesHandler,
	settingsHandler *handlers.SettingsHandler,
	keyHandler *handlers.KeyHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{frontendURL},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
	}).Handler)

	// Key validation probes the upstream API; keep it from being hammered.
	keyLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Search ────
		r.Get("/search", searchHandler.Search)
		r.Post("/resolve", searchHandler.Resolve)

		// ──── Videos & playlists ────
		r.Get("/videos/{id}", videoHandler.Details)
		r.Route("/playlists/{id}", func(r chi.Router) {
			r.Get("/", playlistHandler.Info)
			r.Get("/videos", playlistHandler.Videos)
		})

		// ──── Usage analytics ────
		r.Route("/activity", func(r chi.Router) {
			r.Get("/", activityHandler.Get)
			r.Post("/watch", activityHandler.Watch)
			r.Get("/stats", activityHandler.Stats)
			r.Get("/weekly-videos", activityHandler.WeeklyVideos)
		})

		// ──── Preferences & settings ────
		r.Get("/preferences", preferencesHandler.Get)
		r.Put("/preferences", preferencesHandler.Update)
		r.Get("/settings", settingsHandler.Get)
		r.Put("/settings", settingsHandler.Update)

		// ──── API key override ────
		r.Group(func(r chi.Router) {
			r.Use(keyLimiter.Middleware)
			r.Put("/key", keyHandler.Update)
			r.Delete("/key", keyHandler.Delete)
		})
	})

	return r
}
