package api

import (
	"net/http"

	"github.com/dom/job-board-website/internal/api/handlers"
	"github.com/dom/job-board-website/internal/api/middleware"
	"github.com/dom/job-board-website/internal/config"
	"github.com/dom/job-board-website/internal/service"
	"github.com/dom/job-board-website/internal/ws"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *ws.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, services.Profile, cfg)
	userHandler := handlers.NewUserHandler(services.Profile, services.Message)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	jobHandler := handlers.NewJobHandler(services.Job)
	messageHandler := handlers.NewMessageHandler(services.Message)
	wsHandler := handlers.NewWebSocketHandler(hub)

	requireAuth := middleware.Auth(services.Auth)

	r.Route("/api", func(r chi.Router) {
		// Auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/status", authHandler.Status)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/user", authHandler.CurrentUser)
			})
		})

		// Public job browsing
		r.Get("/jobs", jobHandler.List)
		r.Get("/jobs/{id}", jobHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/user", func(r chi.Router) {
				r.Post("/select-type", userHandler.SelectType)
				r.Post("/display-name", userHandler.UpdateDisplayName)
			})
			r.Get("/users/search", userHandler.Search)

			r.Route("/job-seeker", func(r chi.Router) {
				r.Get("/profile", profileHandler.GetJobSeeker)
				r.Post("/profile", profileHandler.SaveJobSeeker)
				r.Get("/applications", jobHandler.MyApplications)
			})

			r.Route("/company", func(r chi.Router) {
				r.Get("/profile", profileHandler.GetCompany)
				r.Post("/profile", profileHandler.SaveCompany)
				r.Get("/jobs", jobHandler.CompanyJobs)
			})

			r.Post("/jobs", jobHandler.Create)
			r.Patch("/jobs/{id}", jobHandler.Update)
			r.Post("/jobs/{jobId}/apply", jobHandler.Apply)
			r.Get("/jobs/{jobId}/applications", jobHandler.JobApplications)
			r.Patch("/applications/{id}/status", jobHandler.UpdateApplicationStatus)

			r.Route("/messages", func(r chi.Router) {
				r.Get("/conversations", messageHandler.Conversations)
				r.Get("/{contactId}", messageHandler.Conversation)
				r.Post("/", messageHandler.Send)
				r.Post("/{id}/read", messageHandler.MarkRead)
			})

			r.Get("/ws", wsHandler.Serve)
		})
	})

	return r
}
