package localstore

import (
	"context"
	"sort"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/google/uuid"
)

type jobApplicationRepository struct {
	s *Store
}

func NewJobApplicationRepository(s *Store) *jobApplicationRepository {
	return &jobApplicationRepository{s: s}
}

func (r *jobApplicationRepository) Create(ctx context.Context, input domain.NewJobApplication) (*domain.JobApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	app := domain.JobApplication{
		ID:          uuid.NewString(),
		JobID:       input.JobID,
		ApplicantID: input.ApplicantID,
		Status:      domain.ApplicationPending,
		CoverLetter: input.CoverLetter,
		AppliedAt:   now,
		UpdatedAt:   now,
	}

	r.s.db.JobApplications = append(r.s.db.JobApplications, app)
	if err := r.s.save(); err != nil {
		return nil, err
	}
	out := app
	return &out, nil
}

func (r *jobApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]domain.JobApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	results := []domain.JobApplication{}
	for i := range r.s.db.JobApplications {
		if r.s.db.JobApplications[i].ApplicantID == applicantID {
			results = append(results, r.s.db.JobApplications[i])
		}
	}

	sortApplicationsNewestFirst(results)
	return results, nil
}

func (r *jobApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.JobApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	results := []domain.JobApplication{}
	for i := range r.s.db.JobApplications {
		if r.s.db.JobApplications[i].JobID == jobID {
			results = append(results, r.s.db.JobApplications[i])
		}
	}

	sortApplicationsNewestFirst(results)
	return results, nil
}

func (r *jobApplicationRepository) HasApplied(ctx context.Context, jobID, applicantID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.JobApplications {
		a := &r.s.db.JobApplications[i]
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *jobApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.JobApplication, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, domain.ErrInvalidApplicationStatus
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.JobApplications {
		a := &r.s.db.JobApplications[i]
		if a.ID != id {
			continue
		}
		a.Status = status
		a.UpdatedAt = r.s.now()
		if err := r.s.save(); err != nil {
			return nil, err
		}
		out := *a
		return &out, nil
	}
	return nil, domain.ErrApplicationNotFound
}

func sortApplicationsNewestFirst(apps []domain.JobApplication) {
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedAt.After(apps[j].AppliedAt)
	})
}
