package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/dom/job-board-website/internal/api/middleware"
	"github.com/dom/job-board-website/internal/config"
	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/service"
)

type AuthHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
	cfg            *config.Config
}

func NewAuthHandler(authService *service.AuthService, profileService *service.ProfileService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
		cfg:            cfg,
	}
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the redacted user shape every endpoint returns; the
// password hash never leaves the store through the API.
type UserResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	DisplayName     string `json:"displayName,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
	UserType        string `json:"userType,omitempty"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		DisplayName:     u.DisplayName,
		ProfileImageURL: u.ProfileImageURL,
		UserType:        string(u.UserType),
	}
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, value string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			http.Error(w, "Password must be at least 6 characters", http.StatusBadRequest)
		case errors.Is(err, domain.ErrEmailExists):
			http.Error(w, "User already exists", http.StatusConflict)
		default:
			log.Printf("ERROR [auth.Register] failed to register user: %v", err)
			http.Error(w, "Failed to register user", http.StatusInternalServerError)
		}
		return
	}

	h.setSessionCookie(w, result.CookieValue, result.ExpiresAt)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AuthResponse{
		Message: "User registered successfully",
		User:    newUserResponse(result.User),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Printf("ERROR [auth.Login] failed to login: %v", err)
		http.Error(w, "Failed to login", http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, result.CookieValue, result.ExpiresAt)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AuthResponse{
		Message: "Login successful",
		User:    newUserResponse(result.User),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			log.Printf("ERROR [auth.Logout] failed to delete session: %v", err)
			http.Error(w, "Failed to logout", http.StatusInternalServerError)
			return
		}
	}

	h.clearSessionCookie(w)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logout successful"})
}

// CurrentUser returns the authenticated user along with the profile matching
// its account type, when one exists.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	var profile any
	var err error
	switch user.UserType {
	case domain.UserTypeJobSeeker:
		var p *domain.JobSeekerProfile
		p, err = h.profileService.GetJobSeekerProfile(r.Context(), user.ID)
		if p != nil {
			profile = p
		}
	case domain.UserTypeEmployer:
		var p *domain.CompanyProfile
		p, err = h.profileService.GetCompanyProfile(r.Context(), user.ID)
		if p != nil {
			profile = p
		}
	}
	if err != nil {
		log.Printf("ERROR [auth.CurrentUser] failed to fetch profile: %v", err)
		http.Error(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	resp := struct {
		UserResponse
		Profile any `json:"profile"`
	}{
		UserResponse: newUserResponse(user),
		Profile:      profile,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Status reports whether the request carries a valid session, without
// failing when it does not.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	authenticated := false
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if _, err := h.authService.UserFromCookie(r.Context(), cookie.Value); err == nil {
			authenticated = true
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"authenticated": authenticated})
}
