package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dom/job-board-website/internal/api/middleware"
	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/service"
	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

type CreateJobRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Requirements    string   `json:"requirements"`
	SalaryMin       *int     `json:"salaryMin"`
	SalaryMax       *int     `json:"salaryMax"`
	Location        string   `json:"location"`
	JobType         string   `json:"jobType"`
	ExperienceLevel string   `json:"experienceLevel"`
	Skills          []string `json:"skills"`
}

type UpdateJobRequest struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	Requirements    *string   `json:"requirements"`
	SalaryMin       *int      `json:"salaryMin"`
	SalaryMax       *int      `json:"salaryMax"`
	Location        *string   `json:"location"`
	JobType         *string   `json:"jobType"`
	ExperienceLevel *string   `json:"experienceLevel"`
	Skills          *[]string `json:"skills"`
	IsActive        *bool     `json:"isActive"`
}

type ApplyRequest struct {
	CoverLetter string `json:"coverLetter"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// List is public; only active postings are discoverable here.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := domain.JobFilters{
		Search:          query.Get("search"),
		Location:        query.Get("location"),
		JobType:         domain.JobType(query.Get("jobType")),
		ExperienceLevel: domain.ExperienceLevel(query.Get("experienceLevel")),
	}

	jobs, err := h.jobService.SearchPostings(r.Context(), filters)
	if err != nil {
		log.Printf("ERROR [job.List] failed to fetch jobs: %v", err)
		http.Error(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jobs)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobService.GetPosting(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [job.Get] failed to fetch job: %v", err)
		http.Error(w, "Failed to fetch job", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job, err := h.jobService.CreatePosting(r.Context(), user.ID, domain.NewJobPosting{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Location:        req.Location,
		JobType:         domain.JobType(req.JobType),
		ExperienceLevel: domain.ExperienceLevel(req.ExperienceLevel),
		Skills:          req.Skills,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEmployer):
			http.Error(w, "Only employers can post jobs", http.StatusForbidden)
		case errors.Is(err, service.ErrCompanyProfileRequired):
			http.Error(w, "Company profile required to post jobs", http.StatusBadRequest)
		case errors.Is(err, domain.ErrMissingJobType),
			errors.Is(err, domain.ErrInvalidJobType),
			errors.Is(err, domain.ErrMissingExperienceLevel),
			errors.Is(err, domain.ErrInvalidExperienceLevel):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("ERROR [job.Create] failed to create job posting: %v", err)
			http.Error(w, "Failed to create job posting", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

// CompanyJobs lists the caller's own postings, inactive postings included.
func (h *JobHandler) CompanyJobs(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobs, err := h.jobService.CompanyPostings(r.Context(), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEmployer):
			http.Error(w, "Only employers can view company jobs", http.StatusForbidden)
		case errors.Is(err, service.ErrCompanyProfileRequired):
			http.Error(w, "Company profile not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [job.CompanyJobs] failed to fetch jobs: %v", err)
			http.Error(w, "Failed to fetch jobs", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jobs)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patch := domain.JobPostingPatch{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Location:     req.Location,
		Skills:       req.Skills,
		IsActive:     req.IsActive,
	}
	if req.JobType != nil {
		jt := domain.JobType(*req.JobType)
		patch.JobType = &jt
	}
	if req.ExperienceLevel != nil {
		el := domain.ExperienceLevel(*req.ExperienceLevel)
		patch.ExperienceLevel = &el
	}

	job, err := h.jobService.UpdatePosting(r.Context(), user.ID, chi.URLParam(r, "id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEmployer), errors.Is(err, service.ErrNotJobOwner):
			http.Error(w, "Forbidden", http.StatusForbidden)
		case errors.Is(err, service.ErrCompanyProfileRequired):
			http.Error(w, "Company profile required", http.StatusBadRequest)
		case errors.Is(err, domain.ErrJobNotFound):
			http.Error(w, "Job not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidJobType), errors.Is(err, domain.ErrInvalidExperienceLevel):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Printf("ERROR [job.Update] failed to update job posting: %v", err)
			http.Error(w, "Failed to update job posting", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job)
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	application, err := h.jobService.Apply(r.Context(), user.ID, chi.URLParam(r, "jobId"), req.CoverLetter)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotJobSeeker):
			http.Error(w, "Only job seekers can apply for jobs", http.StatusForbidden)
		case errors.Is(err, service.ErrSeekerProfileRequired):
			http.Error(w, "Job seeker profile required to apply", http.StatusBadRequest)
		case errors.Is(err, domain.ErrJobNotFound):
			http.Error(w, "Job not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrDuplicateApplication):
			http.Error(w, "Already applied to this job", http.StatusConflict)
		default:
			log.Printf("ERROR [job.Apply] failed to create application: %v", err)
			http.Error(w, "Failed to apply for job", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(application)
}

func (h *JobHandler) MyApplications(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applications, err := h.jobService.MyApplications(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrSeekerProfileRequired) {
			http.Error(w, "Job seeker profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [job.MyApplications] failed to fetch applications: %v", err)
		http.Error(w, "Failed to fetch applications", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(applications)
}

func (h *JobHandler) JobApplications(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applications, err := h.jobService.JobApplications(r.Context(), user.ID, chi.URLParam(r, "jobId"))
	if err != nil {
		if errors.Is(err, service.ErrNotEmployer) {
			http.Error(w, "Only employers can view applications", http.StatusForbidden)
			return
		}
		log.Printf("ERROR [job.JobApplications] failed to fetch applications: %v", err)
		http.Error(w, "Failed to fetch applications", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(applications)
}

func (h *JobHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	application, err := h.jobService.UpdateApplicationStatus(r.Context(), user.ID, chi.URLParam(r, "id"), domain.ApplicationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotEmployer):
			http.Error(w, "Only employers can update application status", http.StatusForbidden)
		case errors.Is(err, domain.ErrInvalidApplicationStatus):
			http.Error(w, "Invalid application status", http.StatusBadRequest)
		case errors.Is(err, domain.ErrApplicationNotFound):
			http.Error(w, "Application not found", http.StatusNotFound)
		default:
			log.Printf("ERROR [job.UpdateApplicationStatus] failed to update status: %v", err)
			http.Error(w, "Failed to update application status", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(application)
}
