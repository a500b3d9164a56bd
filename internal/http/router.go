package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"molecuview/internal/handlers"
	"molecuview/internal/service"
	"molecuview/internal/storage"
	"molecuview/internal/viewer"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	SearchService service.SearchService
	Viewer        *viewer.Controller
	Hub           *viewer.Hub
	History       storage.HistoryStore
	DB            *sql.DB
	IndexHTML     string // Embedded viewer page
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)

	// Add CORS middleware
	r.Use(CORS)

	searchHandler := handlers.NewSearchHandler(deps.SearchService, deps.Viewer)
	viewHandler := handlers.NewViewHandler(deps.Viewer, deps.Hub)
	eventsHandler := handlers.NewEventsHandler(deps.Hub)
	historyHandler := handlers.NewHistoryHandler(deps.History)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/search", searchHandler)
		r.Get("/view", viewHandler.Get)
		r.Put("/view", viewHandler.Update)
		r.Post("/view/fullscreen", viewHandler.SyncFullscreen)
		r.Post("/view/resize", viewHandler.NotifyResize)
		r.Method(http.MethodGet, "/view/events", eventsHandler)
		r.Method(http.MethodGet, "/history", historyHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	// Serve the viewer page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
