package localstore

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/google/uuid"
)

type jobPostingRepository struct {
	s *Store
}

func NewJobPostingRepository(s *Store) *jobPostingRepository {
	return &jobPostingRepository{s: s}
}

func (r *jobPostingRepository) Create(ctx context.Context, input domain.NewJobPosting) (*domain.JobPosting, error) {
	if input.JobType == "" {
		return nil, domain.ErrMissingJobType
	}
	if !domain.ValidJobType(input.JobType) {
		return nil, domain.ErrInvalidJobType
	}
	if input.ExperienceLevel == "" {
		return nil, domain.ErrMissingExperienceLevel
	}
	if !domain.ValidExperienceLevel(input.ExperienceLevel) {
		return nil, domain.ErrInvalidExperienceLevel
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	posting := domain.JobPosting{
		ID:              uuid.NewString(),
		CompanyID:       input.CompanyID,
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    input.Requirements,
		SalaryMin:       input.SalaryMin,
		SalaryMax:       input.SalaryMax,
		Location:        input.Location,
		JobType:         input.JobType,
		ExperienceLevel: input.ExperienceLevel,
		Skills:          slices.Clone(input.Skills),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	r.s.db.JobPostings = append(r.s.db.JobPostings, posting)
	if err := r.s.save(); err != nil {
		return nil, err
	}
	out := clonePosting(posting)
	return &out, nil
}

func (r *jobPostingRepository) GetByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.JobPostings {
		if r.s.db.JobPostings[i].ID == id {
			p := clonePosting(r.s.db.JobPostings[i])
			return &p, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

// List returns active postings matching the filters, most recent first.
// Filter dimensions combine with AND; the search term matches title or
// description. Postings with no location never match a location filter.
func (r *jobPostingRepository) List(ctx context.Context, filters domain.JobFilters) ([]domain.JobPosting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	search := strings.ToLower(filters.Search)
	location := strings.ToLower(filters.Location)

	results := []domain.JobPosting{}
	for i := range r.s.db.JobPostings {
		p := &r.s.db.JobPostings[i]
		if !p.IsActive {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if location != "" && !containsFold(p.Location, location) {
			continue
		}
		if filters.JobType != "" && p.JobType != filters.JobType {
			continue
		}
		if filters.ExperienceLevel != "" && p.ExperienceLevel != filters.ExperienceLevel {
			continue
		}
		results = append(results, clonePosting(*p))
	}

	sortPostingsNewestFirst(results)
	return results, nil
}

// ListByCompany deliberately includes inactive postings so an employer can
// see its own soft-deleted jobs.
func (r *jobPostingRepository) ListByCompany(ctx context.Context, companyID string) ([]domain.JobPosting, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	results := []domain.JobPosting{}
	for i := range r.s.db.JobPostings {
		if r.s.db.JobPostings[i].CompanyID == companyID {
			results = append(results, clonePosting(r.s.db.JobPostings[i]))
		}
	}

	sortPostingsNewestFirst(results)
	return results, nil
}

func (r *jobPostingRepository) Update(ctx context.Context, id string, patch domain.JobPostingPatch) (*domain.JobPosting, error) {
	if patch.JobType != nil && !domain.ValidJobType(*patch.JobType) {
		return nil, domain.ErrInvalidJobType
	}
	if patch.ExperienceLevel != nil && !domain.ValidExperienceLevel(*patch.ExperienceLevel) {
		return nil, domain.ErrInvalidExperienceLevel
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.JobPostings {
		p := &r.s.db.JobPostings[i]
		if p.ID != id {
			continue
		}
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Requirements != nil {
			p.Requirements = *patch.Requirements
		}
		if patch.SalaryMin != nil {
			p.SalaryMin = patch.SalaryMin
		}
		if patch.SalaryMax != nil {
			p.SalaryMax = patch.SalaryMax
		}
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.JobType != nil {
			p.JobType = *patch.JobType
		}
		if patch.ExperienceLevel != nil {
			p.ExperienceLevel = *patch.ExperienceLevel
		}
		if patch.Skills != nil {
			p.Skills = slices.Clone(*patch.Skills)
		}
		if patch.IsActive != nil {
			p.IsActive = *patch.IsActive
		}
		p.UpdatedAt = r.s.now()
		if err := r.s.save(); err != nil {
			return nil, err
		}
		out := clonePosting(*p)
		return &out, nil
	}
	return nil, domain.ErrJobNotFound
}

func clonePosting(p domain.JobPosting) domain.JobPosting {
	p.Skills = slices.Clone(p.Skills)
	return p
}

func sortPostingsNewestFirst(postings []domain.JobPosting) {
	sort.SliceStable(postings, func(i, j int) bool {
		return postings[i].CreatedAt.After(postings[j].CreatedAt)
	})
}
