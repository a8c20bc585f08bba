package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"testing"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email     string
	password  string
	firstName string
	lastName  string
	userType  domain.UserType
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.NewString()[:8]),
		password: "testpassword123",
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) WithName(first, last string) *UserBuilder {
	b.firstName = first
	b.lastName = last
	return b
}

func (b *UserBuilder) WithUserType(t domain.UserType) *UserBuilder {
	b.userType = t
	return b
}

// Build creates the user in the store and returns it with the raw password.
func (b *UserBuilder) Build(t *testing.T, repos *repository.Repositories) (*domain.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	passwordHash := string(hashed)

	input := domain.UserUpsert{
		Email:        b.email,
		PasswordHash: &passwordHash,
		FirstName:    &b.firstName,
		LastName:     &b.lastName,
	}
	if b.userType != "" {
		input.UserType = &b.userType
	}

	user, err := repos.User.Upsert(context.Background(), input)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user, b.password
}

// CreateCompanyProfile stores a company profile for the given user.
func CreateCompanyProfile(t *testing.T, repos *repository.Repositories, userID, companyName string) *domain.CompanyProfile {
	t.Helper()

	profile, err := repos.CompanyProfile.Create(context.Background(), domain.NewCompanyProfile{
		UserID:      userID,
		CompanyName: companyName,
	})
	if err != nil {
		t.Fatalf("failed to create company profile: %v", err)
	}
	return profile
}

// CreateJobSeekerProfile stores a job seeker profile for the given user.
func CreateJobSeekerProfile(t *testing.T, repos *repository.Repositories, userID string) *domain.JobSeekerProfile {
	t.Helper()

	profile, err := repos.JobSeekerProfile.Create(context.Background(), domain.NewJobSeekerProfile{
		UserID: userID,
		Title:  "Software Engineer",
		Skills: []string{"go"},
	})
	if err != nil {
		t.Fatalf("failed to create job seeker profile: %v", err)
	}
	return profile
}

// JobBuilder creates job postings with a builder pattern
type JobBuilder struct {
	companyID       string
	title           string
	description     string
	location        string
	jobType         domain.JobType
	experienceLevel domain.ExperienceLevel
}

func NewJobBuilder(companyID string) *JobBuilder {
	return &JobBuilder{
		companyID:       companyID,
		title:           "Software Engineer",
		description:     "Build and ship features",
		jobType:         domain.JobTypeFullTime,
		experienceLevel: domain.ExperienceMid,
	}
}

func (b *JobBuilder) WithTitle(title string) *JobBuilder {
	b.title = title
	return b
}

func (b *JobBuilder) WithDescription(description string) *JobBuilder {
	b.description = description
	return b
}

func (b *JobBuilder) WithLocation(location string) *JobBuilder {
	b.location = location
	return b
}

func (b *JobBuilder) WithJobType(t domain.JobType) *JobBuilder {
	b.jobType = t
	return b
}

func (b *JobBuilder) WithExperienceLevel(l domain.ExperienceLevel) *JobBuilder {
	b.experienceLevel = l
	return b
}

func (b *JobBuilder) Build(t *testing.T, repos *repository.Repositories) *domain.JobPosting {
	t.Helper()

	posting, err := repos.JobPosting.Create(context.Background(), domain.NewJobPosting{
		CompanyID:       b.companyID,
		Title:           b.title,
		Description:     b.description,
		Location:        b.location,
		JobType:         b.jobType,
		ExperienceLevel: b.experienceLevel,
	})
	if err != nil {
		t.Fatalf("failed to create job posting: %v", err)
	}
	return posting
}

// NewSessionClient returns an HTTP client with a cookie jar, so the session
// cookie set at registration follows subsequent requests.
func NewSessionClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// RegisterViaAPI registers a user through the HTTP API with the given client
// and returns the decoded user response.
func RegisterViaAPI(t *testing.T, ts *TestServer, client *http.Client, email, password string) map[string]any {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"email":     email,
		"password":  password,
		"firstName": "Test",
		"lastName":  "User",
	})

	resp, err := client.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var decoded struct {
		User map[string]any `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return decoded.User
}
