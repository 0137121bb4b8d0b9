// Command main is the entry point for the review board server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"

	"github.com/atharv-cmd-not-found/Cep-i2it/internal/config"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/seed"
	"github.com/atharv-cmd-not-found/Cep-i2it/internal/server"
)

func main() {
	// Load .env if present; real env always wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create server with dependency injection
	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Template engine for the server-rendered pages
	engine := html.New(cfg.ViewsDir, ".html")
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("Jan 2, 2006 3:04 PM")
	})

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:   "Review Board",
		Views:     engine,
		BodyLimit: 10 * 1024 * 1024, // 10MB limit, bounds image uploads
	})

	// Setup middleware and routes
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)

	// Demo data so the list and analytics pages are not empty on first run
	if cfg.SeedDemoData {
		added := seed.Apply(srv.Store(), 12)
		log.Printf("Seeded %d demo reviews", added)
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
