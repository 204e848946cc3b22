// Copyright (c) 2026 Folium. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
content handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The route tree splits into two worlds: /api/v1/me/* is the owner's
authenticated workspace, /api/v1/public/* is the anonymous read surface.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/foliumhq/folium/internal/content/blog"
	"github.com/foliumhq/folium/internal/content/certification"
	"github.com/foliumhq/folium/internal/content/company"
	"github.com/foliumhq/folium/internal/content/contact"
	"github.com/foliumhq/folium/internal/content/education"
	"github.com/foliumhq/folium/internal/content/experience"
	"github.com/foliumhq/folium/internal/content/profile"
	"github.com/foliumhq/folium/internal/content/project"
	"github.com/foliumhq/folium/internal/content/purge"
	"github.com/foliumhq/folium/internal/content/skill"
	"github.com/foliumhq/folium/internal/content/testimonial"
	"github.com/foliumhq/folium/internal/platform/config"
	"github.com/foliumhq/folium/internal/platform/constants"
	"github.com/foliumhq/folium/internal/platform/middleware"
	"github.com/foliumhq/folium/internal/public"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all HTTP handler sets.
//
// # Usage
//
// New collections add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Profile manages the owner's singleton profile and visibility switches.
	Profile *profile.Handler

	// Project through Contact manage the owner's content collections.
	Project       *project.Handler
	Experience    *experience.Handler
	Education     *education.Handler
	Skill         *skill.Handler
	Certification *certification.Handler
	Blog          *blog.Handler
	Testimonial   *testimonial.Handler
	Company       *company.Handler
	Contact       *contact.Handler

	// Purge removes every trace of an account across all collections.
	Purge *purge.Handler

	// Public serves the anonymous, handle-addressed read surface.
	Public *public.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {

		// Owner workspace. Every route below requires a verified token;
		// handlers scope all queries to the authenticated owner.
		api.Route("/me", func(me chi.Router) {
			me.Use(middleware.RequireAuth)

			me.Route("/profile", h.Profile.RegisterRoutes)
			me.Route("/projects", h.Project.RegisterRoutes)
			me.Route("/experience", h.Experience.RegisterRoutes)
			me.Route("/education", h.Education.RegisterRoutes)
			me.Route("/skills", h.Skill.RegisterRoutes)
			me.Route("/certifications", h.Certification.RegisterRoutes)
			me.Route("/blog", h.Blog.RegisterRoutes)
			me.Route("/testimonials", h.Testimonial.RegisterRoutes)
			me.Route("/companies", h.Company.RegisterRoutes)
			me.Route("/contacts", h.Contact.RegisterRoutes)
			me.Route("/account", h.Purge.RegisterRoutes)
		})

		// Anonymous read surface, addressed by public handle.
		api.Route("/public", h.Public.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
