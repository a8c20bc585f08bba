package service_test

import (
	"context"
	"testing"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/service"
	"github.com/dom/job-board-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService_EmployerAndSeekerFlow(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	cfg := testutil.TestConfig()
	jobService := service.NewJobService(repos, cfg)

	employer, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeEmployer).
		Build(t, repos)
	testutil.CreateCompanyProfile(t, repos, employer.ID, "Acme")

	posting, err := jobService.CreatePosting(ctx, employer.ID, domain.NewJobPosting{
		Title:           "Engineer",
		Description:     "Write software",
		JobType:         domain.JobTypeFullTime,
		ExperienceLevel: domain.ExperienceMid,
	})
	require.NoError(t, err)
	assert.True(t, posting.IsActive)

	// The new posting is publicly searchable.
	results, err := jobService.SearchPostings(ctx, domain.JobFilters{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, posting.ID, results[0].ID)

	seeker, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeJobSeeker).
		Build(t, repos)
	seekerProfile := testutil.CreateJobSeekerProfile(t, repos, seeker.ID)

	application, err := jobService.Apply(ctx, seeker.ID, posting.ID, "I would like this job")
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, application.Status)
	assert.Equal(t, seekerProfile.ID, application.ApplicantID)

	applications, err := jobService.JobApplications(ctx, employer.ID, posting.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, application.ID, applications[0].ID)
	assert.Equal(t, domain.ApplicationPending, applications[0].Status)

	mine, err := jobService.MyApplications(ctx, seeker.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	updated, err := jobService.UpdateApplicationStatus(ctx, employer.ID, application.ID, domain.ApplicationUnderReview)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationUnderReview, updated.Status)
}

func TestJobService_CreatePostingGuards(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		userType domain.UserType
		wantErr  error
	}{
		{
			name:     "job seeker cannot post",
			userType: domain.UserTypeJobSeeker,
			wantErr:  service.ErrNotEmployer,
		},
		{
			name:     "employer without company profile",
			userType: domain.UserTypeEmployer,
			wantErr:  service.ErrCompanyProfileRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := testutil.NewTestRepos(t)
			jobService := service.NewJobService(repos, testutil.TestConfig())

			user, _ := testutil.NewUserBuilder().
				WithUserType(tt.userType).
				Build(t, repos)
			userID := user.ID
			_, err := jobService.CreatePosting(ctx, userID, domain.NewJobPosting{
				Title:           "Engineer",
				JobType:         domain.JobTypeFullTime,
				ExperienceLevel: domain.ExperienceMid,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJobService_ApplyGuards(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	jobService := service.NewJobService(repos, testutil.TestConfig())

	employer, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeEmployer).
		Build(t, repos)
	company := testutil.CreateCompanyProfile(t, repos, employer.ID, "Globex")
	posting := testutil.NewJobBuilder(company.ID).Build(t, repos)

	t.Run("employer cannot apply", func(t *testing.T) {
		_, err := jobService.Apply(ctx, employer.ID, posting.ID, "")
		assert.ErrorIs(t, err, service.ErrNotJobSeeker)
	})

	t.Run("seeker without profile", func(t *testing.T) {
		seeker, _ := testutil.NewUserBuilder().
			WithUserType(domain.UserTypeJobSeeker).
			Build(t, repos)
		_, err := jobService.Apply(ctx, seeker.ID, posting.ID, "")
		assert.ErrorIs(t, err, service.ErrSeekerProfileRequired)
	})

	t.Run("missing posting", func(t *testing.T) {
		seeker, _ := testutil.NewUserBuilder().
			WithUserType(domain.UserTypeJobSeeker).
			Build(t, repos)
		testutil.CreateJobSeekerProfile(t, repos, seeker.ID)
		_, err := jobService.Apply(ctx, seeker.ID, "missing-job", "")
		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})
}

func TestJobService_ReapplicationDisabled(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	cfg := testutil.TestConfig()
	cfg.AllowReapplication = false
	jobService := service.NewJobService(repos, cfg)

	employer, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeEmployer).
		Build(t, repos)
	company := testutil.CreateCompanyProfile(t, repos, employer.ID, "Initech")
	posting := testutil.NewJobBuilder(company.ID).Build(t, repos)

	seeker, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeJobSeeker).
		Build(t, repos)
	testutil.CreateJobSeekerProfile(t, repos, seeker.ID)

	_, err := jobService.Apply(ctx, seeker.ID, posting.ID, "first")
	require.NoError(t, err)

	_, err = jobService.Apply(ctx, seeker.ID, posting.ID, "second")
	assert.ErrorIs(t, err, domain.ErrDuplicateApplication)

	applications, err := jobService.JobApplications(ctx, employer.ID, posting.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 1)
}

func TestJobService_UpdatePostingOwnership(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	jobService := service.NewJobService(repos, testutil.TestConfig())

	owner, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeEmployer).
		Build(t, repos)
	ownerCompany := testutil.CreateCompanyProfile(t, repos, owner.ID, "Owner Co")
	posting := testutil.NewJobBuilder(ownerCompany.ID).Build(t, repos)

	rival, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeEmployer).
		Build(t, repos)
	testutil.CreateCompanyProfile(t, repos, rival.ID, "Rival Co")

	newTitle := "Senior Engineer"
	_, err := jobService.UpdatePosting(ctx, rival.ID, posting.ID, domain.JobPostingPatch{Title: &newTitle})
	assert.ErrorIs(t, err, service.ErrNotJobOwner)

	updated, err := jobService.UpdatePosting(ctx, owner.ID, posting.ID, domain.JobPostingPatch{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Title)
}

func TestJobService_DeactivatedPostingStaysInCompanyList(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	jobService := service.NewJobService(repos, testutil.TestConfig())

	employer, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeEmployer).
		Build(t, repos)
	company := testutil.CreateCompanyProfile(t, repos, employer.ID, "Hooli")
	posting := testutil.NewJobBuilder(company.ID).Build(t, repos)

	inactive := false
	_, err := jobService.UpdatePosting(ctx, employer.ID, posting.ID, domain.JobPostingPatch{IsActive: &inactive})
	require.NoError(t, err)

	public, err := jobService.SearchPostings(ctx, domain.JobFilters{})
	require.NoError(t, err)
	assert.Empty(t, public)

	own, err := jobService.CompanyPostings(ctx, employer.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.False(t, own[0].IsActive)
}
