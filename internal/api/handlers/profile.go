package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dom/job-board-website/internal/api/middleware"
	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// JobSeekerProfileRequest carries only the fields present in the request
// body; absent fields leave the stored profile untouched.
type JobSeekerProfileRequest struct {
	Title             *string   `json:"title"`
	Summary           *string   `json:"summary"`
	Skills            *[]string `json:"skills"`
	Experience        *string   `json:"experience"`
	Education         *string   `json:"education"`
	ResumeURL         *string   `json:"resumeUrl"`
	PortfolioURL      *string   `json:"portfolioUrl"`
	Location          *string   `json:"location"`
	SalaryExpectation *int      `json:"salaryExpectation"`
}

type CompanyProfileRequest struct {
	CompanyName *string `json:"companyName"`
	Industry    *string `json:"industry"`
	CompanySize *string `json:"companySize"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
	LogoURL     *string `json:"logoUrl"`
}

func (h *ProfileHandler) GetJobSeeker(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.GetJobSeekerProfile(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR [profile.GetJobSeeker] failed to fetch profile: %v", err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

func (h *ProfileHandler) SaveJobSeeker(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req JobSeekerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.SaveJobSeekerProfile(r.Context(), user.ID, domain.JobSeekerProfilePatch{
		Title:             req.Title,
		Summary:           req.Summary,
		Skills:            req.Skills,
		Experience:        req.Experience,
		Education:         req.Education,
		ResumeURL:         req.ResumeURL,
		PortfolioURL:      req.PortfolioURL,
		Location:          req.Location,
		SalaryExpectation: req.SalaryExpectation,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSalaryOutOfRange) {
			http.Error(w, "Salary expectation must be between 0 and 2,147,483,647", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [profile.SaveJobSeeker] failed to save profile: %v", err)
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

func (h *ProfileHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := h.profileService.GetCompanyProfile(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR [profile.GetCompany] failed to fetch profile: %v", err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

func (h *ProfileHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CompanyProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profile, err := h.profileService.SaveCompanyProfile(r.Context(), user.ID, domain.CompanyProfilePatch{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingCompanyName) {
			http.Error(w, "Company name is required", http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [profile.SaveCompany] failed to save profile: %v", err)
		http.Error(w, "Failed to save profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
