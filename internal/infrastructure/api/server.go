// Package api exposes the registry, catalog, and history services over
// REST for the `calchub serve` command.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/doeshing/calchub/internal/app"
)

// Server is the HTTP surface over the application container.
type Server struct {
	container *app.Container
	router    chi.Router
}

// NewServer builds the server and its routes.
func NewServer(container *app.Container) *Server {
	s := &Server{container: container}
	s.setupRouter()
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.container.Config.API.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/calculators", func(r chi.Router) {
		r.Get("/", s.handleListCalculators)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetCalculator)
			r.Post("/compute", s.handleCompute)
			r.Post("/projection", s.handleProjection)
			r.Get("/history", s.handleCalculatorHistory)
		})
	})

	r.Route("/history", func(r chi.Router) {
		r.Get("/", s.handleListHistory)
		r.Delete("/", s.handleClearHistory)
		r.Get("/export", s.handleExportHistory)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetRecord)
			r.Put("/", s.handleUpdateRecord)
			r.Delete("/", s.handleDeleteRecord)
		})
	})

	r.Get("/searches/recent", s.handleRecentSearches)

	s.router = r
}
