package domain

import "time"

type JobType string

const (
	JobTypeFullTime JobType = "full_time"
	JobTypePartTime JobType = "part_time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

func ValidExperienceLevel(l ExperienceLevel) bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

type JobPosting struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"companyId"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Requirements    string          `json:"requirements,omitempty"`
	SalaryMin       *int            `json:"salaryMin,omitempty"`
	SalaryMax       *int            `json:"salaryMax,omitempty"`
	Location        string          `json:"location,omitempty"`
	JobType         JobType         `json:"jobType"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Skills          []string        `json:"skills,omitempty"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type NewJobPosting struct {
	CompanyID       string
	Title           string
	Description     string
	Requirements    string
	SalaryMin       *int
	SalaryMax       *int
	Location        string
	JobType         JobType
	ExperienceLevel ExperienceLevel
	Skills          []string
}

type JobPostingPatch struct {
	Title           *string
	Description     *string
	Requirements    *string
	SalaryMin       *int
	SalaryMax       *int
	Location        *string
	JobType         *JobType
	ExperienceLevel *ExperienceLevel
	Skills          *[]string
	IsActive        *bool
}

// JobFilters narrows a job search. Every dimension is optional; empty values
// mean no constraint. Search and Location match as case-insensitive
// substrings, JobType and ExperienceLevel match exactly.
type JobFilters struct {
	Search          string
	Location        string
	JobType         JobType
	ExperienceLevel ExperienceLevel
}

type ApplicationStatus string

const (
	ApplicationPending            ApplicationStatus = "pending"
	ApplicationUnderReview        ApplicationStatus = "under_review"
	ApplicationInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationRejected           ApplicationStatus = "rejected"
	ApplicationHired              ApplicationStatus = "hired"
)

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationUnderReview, ApplicationInterviewScheduled,
		ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

type JobApplication struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	ApplicantID string            `json:"applicantId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	AppliedAt   time.Time         `json:"appliedAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type NewJobApplication struct {
	JobID       string
	ApplicantID string
	CoverLetter string
}
