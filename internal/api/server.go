// Package api provides the HTTP API server and handlers for the ArtistHub application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/artisthub/artisthub-server/internal/ratelimit"
	"github.com/artisthub/artisthub-server/internal/service"
	"github.com/artisthub/artisthub-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	discovery *service.DiscoveryService
	follows   *service.FollowRegistry
	validator *validation.Validator
	mutations *ratelimit.KeyedLimiter
	router    *chi.Mux
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(discovery *service.DiscoveryService, follows *service.FollowRegistry, logger *slog.Logger) *Server {
	s := &Server{
		discovery: discovery,
		follows:   follows,
		validator: validation.New(),
		// Graph mutations fan out to the remote store; pace each user.
		mutations: ratelimit.New(5, 10),
		router:    chi.NewRouter(),
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Content-Type",
			headerUserID, headerDisplayName, headerProfileImage,
			headerSpecialty, headerLocation,
		},
		MaxAge: 300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Discovery feed (public).
		r.Route("/discover", func(r chi.Router) {
			r.Get("/", s.handleGetFeed)
			r.Post("/refresh", s.handleRefreshFeed)
			r.Get("/search", s.handleSearchFeed)
		})

		// Follow graph (scoped to the session user).
		r.Route("/graph", func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleGetGraph)

			r.Group(func(r chi.Router) {
				r.Use(s.limitMutations)
				r.Post("/follow", s.handleFollow)
				r.Delete("/follow/{artistID}", s.handleUnfollow)
				r.Post("/favorites", s.handleAddFavorite)
				r.Delete("/favorites/{artistID}", s.handleRemoveFavorite)
			})
		})
	})
}
