package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/yatrika/travel-assistant/backend/internal/handler/chat"
	servicesHandler "github.com/yatrika/travel-assistant/backend/internal/handler/services"
	travelHandler "github.com/yatrika/travel-assistant/backend/internal/handler/travel"
	middlewarePkg "github.com/yatrika/travel-assistant/backend/internal/middleware"
	sessionservice "github.com/yatrika/travel-assistant/backend/internal/service/session"
	"github.com/yatrika/travel-assistant/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(
	store *sessionservice.Store,
	bot chatHandler.Responder,
	searcher servicesHandler.Searcher,
	planner travelHandler.Planner,
	guides travelHandler.GuideProvider,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Travel Assistant API is running"})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "travel-assistant-api"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/travel", func(sub chi.Router) {
			travelHandler.New(store, planner, guides).RegisterRoutes(sub)
		})
		api.Route("/chat", func(sub chi.Router) {
			chatHandler.New(store, bot).RegisterRoutes(sub)
		})
		api.Route("/services", func(sub chi.Router) {
			servicesHandler.New(searcher).RegisterRoutes(sub)
		})
	})

	return r
}
