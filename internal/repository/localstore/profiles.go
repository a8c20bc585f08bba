package localstore

import (
	"context"
	"slices"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/google/uuid"
)

type jobSeekerProfileRepository struct {
	s *Store
}

func NewJobSeekerProfileRepository(s *Store) *jobSeekerProfileRepository {
	return &jobSeekerProfileRepository{s: s}
}

func validSalary(v *int) bool {
	return v == nil || (*v >= 0 && *v <= domain.MaxSalary)
}

func (r *jobSeekerProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.JobSeekerProfiles {
		if r.s.db.JobSeekerProfiles[i].UserID == userID {
			p := r.s.db.JobSeekerProfiles[i]
			p.Skills = slices.Clone(p.Skills)
			return &p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *jobSeekerProfileRepository) Create(ctx context.Context, input domain.NewJobSeekerProfile) (*domain.JobSeekerProfile, error) {
	if !validSalary(input.SalaryExpectation) {
		return nil, domain.ErrSalaryOutOfRange
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	profile := domain.JobSeekerProfile{
		ID:                uuid.NewString(),
		UserID:            input.UserID,
		Title:             input.Title,
		Summary:           input.Summary,
		Skills:            slices.Clone(input.Skills),
		Experience:        input.Experience,
		Education:         input.Education,
		ResumeURL:         input.ResumeURL,
		PortfolioURL:      input.PortfolioURL,
		Location:          input.Location,
		SalaryExpectation: input.SalaryExpectation,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	r.s.db.JobSeekerProfiles = append(r.s.db.JobSeekerProfiles, profile)
	if err := r.s.save(); err != nil {
		return nil, err
	}
	out := profile
	out.Skills = slices.Clone(profile.Skills)
	return &out, nil
}

func (r *jobSeekerProfileRepository) Update(ctx context.Context, userID string, patch domain.JobSeekerProfilePatch) (*domain.JobSeekerProfile, error) {
	if !validSalary(patch.SalaryExpectation) {
		return nil, domain.ErrSalaryOutOfRange
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.JobSeekerProfiles {
		p := &r.s.db.JobSeekerProfiles[i]
		if p.UserID != userID {
			continue
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Summary != nil {
			p.Summary = *patch.Summary
		}
		if patch.Skills != nil {
			p.Skills = slices.Clone(*patch.Skills)
		}
		if patch.Experience != nil {
			p.Experience = *patch.Experience
		}
		if patch.Education != nil {
			p.Education = *patch.Education
		}
		if patch.ResumeURL != nil {
			p.ResumeURL = *patch.ResumeURL
		}
		if patch.PortfolioURL != nil {
			p.PortfolioURL = *patch.PortfolioURL
		}
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.SalaryExpectation != nil {
			p.SalaryExpectation = patch.SalaryExpectation
		}
		p.UpdatedAt = r.s.now()
		if err := r.s.save(); err != nil {
			return nil, err
		}
		out := *p
		out.Skills = slices.Clone(p.Skills)
		return &out, nil
	}
	return nil, domain.ErrProfileNotFound
}

type companyProfileRepository struct {
	s *Store
}

func NewCompanyProfileRepository(s *Store) *companyProfileRepository {
	return &companyProfileRepository{s: s}
}

func (r *companyProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.CompanyProfiles {
		if r.s.db.CompanyProfiles[i].UserID == userID {
			p := r.s.db.CompanyProfiles[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *companyProfileRepository) Create(ctx context.Context, input domain.NewCompanyProfile) (*domain.CompanyProfile, error) {
	if input.CompanyName == "" {
		return nil, domain.ErrMissingCompanyName
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	profile := domain.CompanyProfile{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		CompanyName: input.CompanyName,
		Industry:    input.Industry,
		CompanySize: input.CompanySize,
		Description: input.Description,
		Website:     input.Website,
		Location:    input.Location,
		LogoURL:     input.LogoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.s.db.CompanyProfiles = append(r.s.db.CompanyProfiles, profile)
	if err := r.s.save(); err != nil {
		return nil, err
	}
	out := profile
	return &out, nil
}

func (r *companyProfileRepository) Update(ctx context.Context, userID string, patch domain.CompanyProfilePatch) (*domain.CompanyProfile, error) {
	if patch.CompanyName != nil && *patch.CompanyName == "" {
		return nil, domain.ErrMissingCompanyName
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.CompanyProfiles {
		p := &r.s.db.CompanyProfiles[i]
		if p.UserID != userID {
			continue
		}
		if patch.CompanyName != nil {
			p.CompanyName = *patch.CompanyName
		}
		if patch.Industry != nil {
			p.Industry = *patch.Industry
		}
		if patch.CompanySize != nil {
			p.CompanySize = *patch.CompanySize
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Website != nil {
			p.Website = *patch.Website
		}
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.LogoURL != nil {
			p.LogoURL = *patch.LogoURL
		}
		p.UpdatedAt = r.s.now()
		if err := r.s.save(); err != nil {
			return nil, err
		}
		out := *p
		return &out, nil
	}
	return nil, domain.ErrProfileNotFound
}
