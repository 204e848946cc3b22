// Copyright (c) 2026 Folium. All rights reserved.

// Command api is the entry point for the Folium HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foliumhq/folium/internal/api"
	"github.com/foliumhq/folium/internal/content/blog"
	"github.com/foliumhq/folium/internal/content/certification"
	"github.com/foliumhq/folium/internal/content/company"
	"github.com/foliumhq/folium/internal/content/contact"
	"github.com/foliumhq/folium/internal/content/education"
	"github.com/foliumhq/folium/internal/content/engine"
	"github.com/foliumhq/folium/internal/content/experience"
	"github.com/foliumhq/folium/internal/content/profile"
	"github.com/foliumhq/folium/internal/content/project"
	"github.com/foliumhq/folium/internal/content/purge"
	"github.com/foliumhq/folium/internal/content/skill"
	"github.com/foliumhq/folium/internal/content/testimonial"
	"github.com/foliumhq/folium/internal/platform/config"
	"github.com/foliumhq/folium/internal/platform/constants"
	"github.com/foliumhq/folium/internal/platform/migration"
	pgstore "github.com/foliumhq/folium/internal/platform/postgres"
	redisstore "github.com/foliumhq/folium/internal/platform/redis"
	"github.com/foliumhq/folium/internal/platform/sec"
	"github.com/foliumhq/folium/internal/public"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "folium"))
	slog.SetDefault(log)

	log.Info("[Folium] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "folium"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Verification ─────────────────────────────────────────────
	// Tokens are minted by the external identity provider; this service only
	// verifies signatures and extracts the owner id.
	verifier, err := sec.NewTokenVerifier(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize token verifier")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Content Wiring ─────────────────────────────────────────────────
	projectStore := engine.NewPG[project.Project](pool, project.Definition)
	experienceStore := engine.NewPG[experience.Experience](pool, experience.Definition)
	educationStore := engine.NewPG[education.Education](pool, education.Definition)
	skillStore := engine.NewPG[skill.Skill](pool, skill.Definition)
	certificationStore := engine.NewPG[certification.Certification](pool, certification.Definition)
	blogStore := engine.NewPG[blog.BlogPost](pool, blog.Definition)
	testimonialStore := engine.NewPG[testimonial.Testimonial](pool, testimonial.Definition)
	companyStore := engine.NewPG[company.Company](pool, company.Definition)
	contactStore := engine.NewPG[contact.Contact](pool, contact.Definition)
	profileStore := profile.NewPostgresStore(pool)

	directory := public.NewDirectory(profileStore, rdb, log)

	projectService := project.NewService(projectStore, log)
	companyService := company.NewService(companyStore, log)
	experienceService := experience.NewService(experienceStore, companyStore, log)
	educationService := education.NewService(educationStore, log)
	skillService := skill.NewService(skillStore, log)
	certificationService := certification.NewService(certificationStore, log)
	blogService := blog.NewService(blogStore, log)
	testimonialService := testimonial.NewService(testimonialStore, log)
	contactService := contact.NewService(contactStore, log)
	profileService := profile.NewService(profileStore, directory, log)

	// Account purge fans out over every collection plus the profile itself.
	purgeService := purge.NewService([]purge.Target{
		{Name: "projects", Purger: projectStore},
		{Name: "experience", Purger: experienceStore},
		{Name: "education", Purger: educationStore},
		{Name: "skills", Purger: skillStore},
		{Name: "certifications", Purger: certificationStore},
		{Name: "blog_posts", Purger: blogStore},
		{Name: "testimonials", Purger: testimonialStore},
		{Name: "companies", Purger: companyStore},
		{Name: "contacts", Purger: contactStore},
		{Name: "profile", Purger: purge.PurgerFunc(profileService.DeleteByOwner)},
	}, log)

	publicHandler := public.NewHandler(directory, public.Services{
		Projects:       projectService,
		Experience:     experienceService,
		Education:      educationService,
		Skills:         skillService,
		Certifications: certificationService,
		Blog:           blogService,
		Testimonials:   testimonialService,
		Contacts:       contactService,
	})

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Profile:       profile.NewHandler(profileService),
		Project:       project.NewHandler(projectService),
		Experience:    experience.NewHandler(experienceService),
		Education:     education.NewHandler(educationService),
		Skill:         skill.NewHandler(skillService),
		Certification: certification.NewHandler(certificationService),
		Blog:          blog.NewHandler(blogService),
		Testimonial:   testimonial.NewHandler(testimonialService),
		Company:       company.NewHandler(companyService),
		Contact:       contact.NewHandler(contactService),
		Purge:         purge.NewHandler(purgeService),
		Public:        publicHandler,
	}

	server := api.NewServer(startupCtx, cfg, log, verifier, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
