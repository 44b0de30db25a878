package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/api/packaging", func(r chi.Router) {
				r.Get("/types", h.listPackagingTypes)

				r.Get("/logs", h.listLogs)
				r.Get("/logs/by-day", h.listLogsByDay)
				r.Post("/logs", h.createLog)
				r.Put("/logs/{id}", h.updateLog)
				r.Delete("/logs/{id}", h.deleteLog)

				r.Get("/summary", h.getSummaries)
				r.Get("/scoreboard", h.getScoreboard)
				r.Get("/insights", h.getInsights)

				r.Post("/alternatives", h.suggestAlternatives)
			})

			r.Route("/api/inventory", func(r chi.Router) {
				r.Get("/items", h.listFoodItems)
				r.Post("/items", h.createFoodItem)
				r.Delete("/items/{id}", h.deleteFoodItem)

				r.Get("/alerts", h.getExpiryAlerts)
			})

			r.Route("/api/meals", func(r chi.Router) {
				r.Get("/", h.listMeals)
				r.Post("/", h.addMeal)
				r.Get("/choices", h.listMealChoices)
				r.Put("/{id}/waste", h.recordWaste)
				r.Delete("/{id}", h.deleteMeal)

				r.Get("/summary", h.getWasteSummaries)
				r.Get("/insights", h.getWasteInsights)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
