package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/repository"
)

var ErrEmptyDisplayName = errors.New("display name is required")

type ProfileService struct {
	userRepo      repository.UserRepository
	jobSeekerRepo repository.JobSeekerProfileRepository
	companyRepo   repository.CompanyProfileRepository
}

func NewProfileService(userRepo repository.UserRepository, jobSeekerRepo repository.JobSeekerProfileRepository, companyRepo repository.CompanyProfileRepository) *ProfileService {
	return &ProfileService{
		userRepo:      userRepo,
		jobSeekerRepo: jobSeekerRepo,
		companyRepo:   companyRepo,
	}
}

// GetJobSeekerProfile returns nil without error when the user has no profile
// yet; "no profile" is a legitimate state, not a failure.
func (s *ProfileService) GetJobSeekerProfile(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	profile, err := s.jobSeekerRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, nil
	}
	return profile, err
}

// SaveJobSeekerProfile creates the profile on first save and patches it on
// every save after that, keeping the 0-or-1-profile-per-user invariant.
func (s *ProfileService) SaveJobSeekerProfile(ctx context.Context, userID string, patch domain.JobSeekerProfilePatch) (*domain.JobSeekerProfile, error) {
	existing, err := s.jobSeekerRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}
	if existing != nil {
		return s.jobSeekerRepo.Update(ctx, userID, patch)
	}

	input := domain.NewJobSeekerProfile{UserID: userID, SalaryExpectation: patch.SalaryExpectation}
	if patch.Title != nil {
		input.Title = *patch.Title
	}
	if patch.Summary != nil {
		input.Summary = *patch.Summary
	}
	if patch.Skills != nil {
		input.Skills = *patch.Skills
	}
	if patch.Experience != nil {
		input.Experience = *patch.Experience
	}
	if patch.Education != nil {
		input.Education = *patch.Education
	}
	if patch.ResumeURL != nil {
		input.ResumeURL = *patch.ResumeURL
	}
	if patch.PortfolioURL != nil {
		input.PortfolioURL = *patch.PortfolioURL
	}
	if patch.Location != nil {
		input.Location = *patch.Location
	}
	return s.jobSeekerRepo.Create(ctx, input)
}

func (s *ProfileService) GetCompanyProfile(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	profile, err := s.companyRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return nil, nil
	}
	return profile, err
}

func (s *ProfileService) SaveCompanyProfile(ctx context.Context, userID string, patch domain.CompanyProfilePatch) (*domain.CompanyProfile, error) {
	existing, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}
	if existing != nil {
		return s.companyRepo.Update(ctx, userID, patch)
	}

	input := domain.NewCompanyProfile{UserID: userID}
	if patch.CompanyName != nil {
		input.CompanyName = *patch.CompanyName
	}
	if patch.Industry != nil {
		input.Industry = *patch.Industry
	}
	if patch.CompanySize != nil {
		input.CompanySize = *patch.CompanySize
	}
	if patch.Description != nil {
		input.Description = *patch.Description
	}
	if patch.Website != nil {
		input.Website = *patch.Website
	}
	if patch.Location != nil {
		input.Location = *patch.Location
	}
	if patch.LogoURL != nil {
		input.LogoURL = *patch.LogoURL
	}
	return s.companyRepo.Create(ctx, input)
}

// SelectUserType records the account type. The type stays re-selectable so a
// user can switch between seeker and employer flows.
func (s *ProfileService) SelectUserType(ctx context.Context, userID string, userType domain.UserType) (*domain.User, error) {
	if !domain.ValidUserType(userType) {
		return nil, domain.ErrInvalidUserType
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Upsert(ctx, domain.UserUpsert{
		ID:       user.ID,
		Email:    user.Email,
		UserType: &userType,
	})
}

func (s *ProfileService) UpdateDisplayName(ctx context.Context, userID, displayName string) (*domain.User, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrEmptyDisplayName
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Upsert(ctx, domain.UserUpsert{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: &displayName,
	})
}
