package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/job-board-website/internal/api"
	"github.com/dom/job-board-website/internal/config"
	"github.com/dom/job-board-website/internal/repository/localstore"
	"github.com/dom/job-board-website/internal/service"
	"github.com/dom/job-board-website/internal/ws"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize the document store
	store := localstore.New(cfg.DataDir)
	if err := store.Init(); err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}
	repos := localstore.NewRepositories(store)

	// Initialize notification hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize services
	services := service.NewServices(repos, cfg, hub)

	// Sweep expired sessions hourly; the store also reaps them lazily on read.
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@hourly", func() {
		removed, err := services.Auth.CleanupExpiredSessions(context.Background())
		if err != nil {
			log.Printf("ERROR [main] session cleanup failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("session cleanup removed %d expired sessions", removed)
		}
	}); err != nil {
		log.Fatalf("failed to schedule session cleanup: %v", err)
	}
	sweeper.Start()

	// Initialize router
	router := api.NewRouter(services, hub, cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s (data dir %s)", cfg.Port, cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	sweeper.Stop()
	hub.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
