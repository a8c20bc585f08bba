package service

import (
	"context"
	"errors"

	"github.com/dom/job-board-website/internal/config"
	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/repository"
)

var (
	ErrNotEmployer            = errors.New("only employers can perform this action")
	ErrNotJobSeeker           = errors.New("only job seekers can perform this action")
	ErrCompanyProfileRequired = errors.New("company profile required")
	ErrSeekerProfileRequired  = errors.New("job seeker profile required")
	ErrNotJobOwner            = errors.New("job posting belongs to another company")
)

type JobService struct {
	userRepo        repository.UserRepository
	jobSeekerRepo   repository.JobSeekerProfileRepository
	companyRepo     repository.CompanyProfileRepository
	postingRepo     repository.JobPostingRepository
	applicationRepo repository.JobApplicationRepository

	allowReapplication bool
}

func NewJobService(repos *repository.Repositories, cfg *config.Config) *JobService {
	return &JobService{
		userRepo:           repos.User,
		jobSeekerRepo:      repos.JobSeekerProfile,
		companyRepo:        repos.CompanyProfile,
		postingRepo:        repos.JobPosting,
		applicationRepo:    repos.JobApplication,
		allowReapplication: cfg.AllowReapplication,
	}
}

func (s *JobService) employerCompany(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UserType != domain.UserTypeEmployer {
		return nil, ErrNotEmployer
	}

	profile, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, ErrCompanyProfileRequired
		}
		return nil, err
	}
	return profile, nil
}

func (s *JobService) CreatePosting(ctx context.Context, userID string, input domain.NewJobPosting) (*domain.JobPosting, error) {
	profile, err := s.employerCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	input.CompanyID = profile.ID
	return s.postingRepo.Create(ctx, input)
}

// SearchPostings is public: it only ever sees active postings.
func (s *JobService) SearchPostings(ctx context.Context, filters domain.JobFilters) ([]domain.JobPosting, error) {
	return s.postingRepo.List(ctx, filters)
}

func (s *JobService) GetPosting(ctx context.Context, id string) (*domain.JobPosting, error) {
	return s.postingRepo.GetByID(ctx, id)
}

// CompanyPostings lists the caller's own postings, inactive ones included.
func (s *JobService) CompanyPostings(ctx context.Context, userID string) ([]domain.JobPosting, error) {
	profile, err := s.employerCompany(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.postingRepo.ListByCompany(ctx, profile.ID)
}

// UpdatePosting patches a posting the caller's company owns. Deactivation
// (IsActive=false) is the soft delete; the record itself is never removed.
func (s *JobService) UpdatePosting(ctx context.Context, userID, id string, patch domain.JobPostingPatch) (*domain.JobPosting, error) {
	profile, err := s.employerCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	posting, err := s.postingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting.CompanyID != profile.ID {
		return nil, ErrNotJobOwner
	}

	return s.postingRepo.Update(ctx, id, patch)
}

func (s *JobService) Apply(ctx context.Context, userID, jobID, coverLetter string) (*domain.JobApplication, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UserType != domain.UserTypeJobSeeker {
		return nil, ErrNotJobSeeker
	}

	profile, err := s.jobSeekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, ErrSeekerProfileRequired
		}
		return nil, err
	}

	if _, err := s.postingRepo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}

	if !s.allowReapplication {
		applied, err := s.applicationRepo.HasApplied(ctx, jobID, profile.ID)
		if err != nil {
			return nil, err
		}
		if applied {
			return nil, domain.ErrDuplicateApplication
		}
	}

	return s.applicationRepo.Create(ctx, domain.NewJobApplication{
		JobID:       jobID,
		ApplicantID: profile.ID,
		CoverLetter: coverLetter,
	})
}

func (s *JobService) MyApplications(ctx context.Context, userID string) ([]domain.JobApplication, error) {
	profile, err := s.jobSeekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, ErrSeekerProfileRequired
		}
		return nil, err
	}
	return s.applicationRepo.ListByApplicant(ctx, profile.ID)
}

func (s *JobService) JobApplications(ctx context.Context, userID, jobID string) ([]domain.JobApplication, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UserType != domain.UserTypeEmployer {
		return nil, ErrNotEmployer
	}
	return s.applicationRepo.ListByJob(ctx, jobID)
}

func (s *JobService) UpdateApplicationStatus(ctx context.Context, userID, id string, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UserType != domain.UserTypeEmployer {
		return nil, ErrNotEmployer
	}
	return s.applicationRepo.UpdateStatus(ctx, id, status)
}
