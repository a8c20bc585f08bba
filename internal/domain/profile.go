package domain

import "time"

// MaxSalary is the upper bound for salary expectations, matching the range
// of a 32-bit signed integer in the persisted format.
const MaxSalary = 2147483647

type JobSeekerProfile struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Title             string    `json:"title,omitempty"`
	Summary           string    `json:"summary,omitempty"`
	Skills            []string  `json:"skills,omitempty"`
	Experience        string    `json:"experience,omitempty"`
	Education         string    `json:"education,omitempty"`
	ResumeURL         string    `json:"resumeUrl,omitempty"`
	PortfolioURL      string    `json:"portfolioUrl,omitempty"`
	Location          string    `json:"location,omitempty"`
	SalaryExpectation *int      `json:"salaryExpectation,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewJobSeekerProfile holds the caller-supplied fields for profile creation.
// The store stamps id and timestamps.
type NewJobSeekerProfile struct {
	UserID            string
	Title             string
	Summary           string
	Skills            []string
	Experience        string
	Education         string
	ResumeURL         string
	PortfolioURL      string
	Location          string
	SalaryExpectation *int
}

// JobSeekerProfilePatch overwrites only the fields that are non-nil.
type JobSeekerProfilePatch struct {
	Title             *string
	Summary           *string
	Skills            *[]string
	Experience        *string
	Education         *string
	ResumeURL         *string
	PortfolioURL      *string
	Location          *string
	SalaryExpectation *int
}

type CompanyProfile struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	CompanyName string    `json:"companyName"`
	Industry    string    `json:"industry,omitempty"`
	CompanySize string    `json:"companySize,omitempty"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NewCompanyProfile struct {
	UserID      string
	CompanyName string
	Industry    string
	CompanySize string
	Description string
	Website     string
	Location    string
	LogoURL     string
}

type CompanyProfilePatch struct {
	CompanyName *string
	Industry    *string
	CompanySize *string
	Description *string
	Website     *string
	Location    *string
	LogoURL     *string
}
