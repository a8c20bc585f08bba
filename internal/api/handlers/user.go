package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"unicode/utf8"

	"github.com/dom/job-board-website/internal/api/middleware"
	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/service"
)

type UserHandler struct {
	profileService *service.ProfileService
	messageService *service.MessageService
}

func NewUserHandler(profileService *service.ProfileService, messageService *service.MessageService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		messageService: messageService,
	}
}

type SelectTypeRequest struct {
	UserType string `json:"userType"`
}

func (h *UserHandler) SelectType(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SelectTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	_, err := h.profileService.SelectUserType(r.Context(), user.ID, domain.UserType(req.UserType))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidUserType):
			http.Error(w, "Invalid user type", http.StatusBadRequest)
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [user.SelectType] failed to select user type: %v", err)
			http.Error(w, "Failed to select user type", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "userType": req.UserType})
}

type DisplayNameRequest struct {
	DisplayName string `json:"displayName"`
}

func (h *UserHandler) UpdateDisplayName(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req DisplayNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	_, err := h.profileService.UpdateDisplayName(r.Context(), user.ID, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyDisplayName):
			http.Error(w, "Display name is required", http.StatusBadRequest)
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [user.UpdateDisplayName] failed to update display name: %v", err)
			http.Error(w, "Failed to update display name", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Search returns redacted matches for a query of at least 3 characters;
// shorter queries yield an empty list rather than an error.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query().Get("q")

	w.Header().Set("Content-Type", "application/json")
	if utf8.RuneCountInString(q) < 3 {
		json.NewEncoder(w).Encode([]domain.UserSummary{})
		return
	}

	results, err := h.messageService.SearchUsers(r.Context(), user.ID, q)
	if err != nil {
		log.Printf("ERROR [user.Search] failed to search users: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(results)
}
