// Package server contains the HTTP handlers and route setup for the application.
package server

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/auth"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/blob"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/config"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/middleware"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/service"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/store"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          store.PostStore
	reviews        *service.ReviewService
	analytics      *service.AnalyticsService
	verifier       auth.Verifier
	promMiddleware *fiberprometheus.FiberPrometheus
	startedAt      time.Time
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	st := store.NewMemoryStore()

	var backend blob.Backend
	if cfg.BlobBackend == config.BlobBackendRemote {
		backend = blob.NewRemote(cfg.BlobBaseURL, cfg.BlobToken,
			time.Duration(cfg.BlobTimeoutSeconds)*time.Second)
	} else {
		backend = blob.NewLocal(cfg.UploadDir)
	}

	srv := NewServerWithDeps(cfg, st, backend, auth.NewFixedCredentials(cfg.AdminUsername, cfg.AdminPassword))

	// Registers with the default Prometheus registry, so only the real
	// bootstrap path creates it.
	srv.promMiddleware = fiberprometheus.New("reviewboard")

	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer wires the store and backend.
func NewServerWithDeps(cfg *config.Config, st store.PostStore, backend blob.Backend, verifier auth.Verifier) *Server {
	uploadTimeout := time.Duration(cfg.BlobTimeoutSeconds) * time.Second

	return &Server{
		config:    cfg,
		store:     st,
		reviews:   service.NewReviewService(st, backend, uploadTimeout, middleware.Logger),
		analytics: service.NewAnalyticsService(nil),
		verifier:  verifier,
		startedAt: time.Now(),
	}
}

// Store exposes the underlying post store for bootstrap seeding.
func (s *Server) Store() store.PostStore {
	return s.store
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Propagate request ID into the request context for logging
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// HTML forms can only GET/POST; edit and delete tunnel through _method
	app.Use(middleware.MethodOverride())
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login")
	})

	// Auth routes
	app.Get("/login", s.ShowLogin)
	app.Post("/login", s.Login)

	// Review routes. Specific /posts/new before generic /posts/:id.
	app.Get("/posts", s.ListReviews)
	app.Get("/posts/new", s.NewReviewForm)
	app.Post("/posts", s.CreateReview)
	app.Get("/posts/:id/edit", s.EditReviewForm)
	app.Get("/posts/:id", s.ShowReview)
	app.Patch("/posts/:id", s.UpdateReview)
	app.Delete("/posts/:id", s.DeleteReview)

	// Analytics
	app.Get("/ana", s.Analytics)

	// Static assets
	app.Static("/public", s.config.PublicDir)
	if s.config.BlobBackend == config.BlobBackendLocal {
		app.Static("/uploads", s.config.UploadDir)
	}

	// Catch-all 404
	app.Use(s.NotFound)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"uptime": time.Since(s.startedAt).String(),
		"time":   time.Now(),
	})
}

// NotFound responds to any unmatched route with a plain-text 404.
func (s *Server) NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).SendString("Page not found")
}
