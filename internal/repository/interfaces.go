package repository

import (
	"context"
	"time"

	"github.com/dom/job-board-website/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, input domain.UserUpsert) (*domain.User, error)
	Search(ctx context.Context, currentUserID, term string) ([]domain.UserSummary, error)
}

type JobSeekerProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.JobSeekerProfile, error)
	Create(ctx context.Context, input domain.NewJobSeekerProfile) (*domain.JobSeekerProfile, error)
	Update(ctx context.Context, userID string, patch domain.JobSeekerProfilePatch) (*domain.JobSeekerProfile, error)
}

type CompanyProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error)
	Create(ctx context.Context, input domain.NewCompanyProfile) (*domain.CompanyProfile, error)
	Update(ctx context.Context, userID string, patch domain.CompanyProfilePatch) (*domain.CompanyProfile, error)
}

type JobPostingRepository interface {
	Create(ctx context.Context, input domain.NewJobPosting) (*domain.JobPosting, error)
	GetByID(ctx context.Context, id string) (*domain.JobPosting, error)
	List(ctx context.Context, filters domain.JobFilters) ([]domain.JobPosting, error)
	ListByCompany(ctx context.Context, companyID string) ([]domain.JobPosting, error)
	Update(ctx context.Context, id string, patch domain.JobPostingPatch) (*domain.JobPosting, error)
}

type JobApplicationRepository interface {
	Create(ctx context.Context, input domain.NewJobApplication) (*domain.JobApplication, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.JobApplication, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.JobApplication, error)
	HasApplied(ctx context.Context, jobID, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.JobApplication, error)
}

type MessageRepository interface {
	Create(ctx context.Context, input domain.NewMessage) (*domain.Message, error)
	Conversation(ctx context.Context, userID1, userID2 string) ([]domain.Message, error)
	Conversations(ctx context.Context, userID string) ([]domain.Conversation, error)
	MarkRead(ctx context.Context, id string) error
}

type SessionRepository interface {
	Create(ctx context.Context, id, userID string, data map[string]any, expiresAt time.Time) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	CleanupExpired(ctx context.Context) (int, error)
}

type Repositories struct {
	User             UserRepository
	JobSeekerProfile JobSeekerProfileRepository
	CompanyProfile   CompanyProfileRepository
	JobPosting       JobPostingRepository
	JobApplication   JobApplicationRepository
	Message          MessageRepository
	Session          SessionRepository
}
