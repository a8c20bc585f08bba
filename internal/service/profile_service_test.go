package service_test

import (
	"context"
	"testing"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/repository"
	"github.com/dom/job-board-website/internal/service"
	"github.com/dom/job-board-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(repos *repository.Repositories) *service.ProfileService {
	return service.NewProfileService(repos.User, repos.JobSeekerProfile, repos.CompanyProfile)
}

func TestProfileService_SaveJobSeekerProfileCreatesThenPatches(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	profileService := newProfileService(repos)

	user, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeJobSeeker).
		Build(t, repos)

	// No profile yet reads as nil, not as an error.
	existing, err := profileService.GetJobSeekerProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, existing)

	title := "Backend Developer"
	salary := 90000
	created, err := profileService.SaveJobSeekerProfile(ctx, user.ID, domain.JobSeekerProfilePatch{
		Title:             &title,
		SalaryExpectation: &salary,
		Skills:            &[]string{"go", "sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", created.Title)
	require.NotNil(t, created.SalaryExpectation)
	assert.Equal(t, 90000, *created.SalaryExpectation)

	// A second save patches in place; untouched fields survive.
	location := "Berlin"
	patched, err := profileService.SaveJobSeekerProfile(ctx, user.ID, domain.JobSeekerProfilePatch{
		Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, "Backend Developer", patched.Title)
	assert.Equal(t, "Berlin", patched.Location)
	assert.Equal(t, []string{"go", "sql"}, patched.Skills)
}

func TestProfileService_SaveCompanyProfileCreatesThenPatches(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	profileService := newProfileService(repos)

	user, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeEmployer).
		Build(t, repos)

	name := "Acme"
	industry := "Manufacturing"
	created, err := profileService.SaveCompanyProfile(ctx, user.ID, domain.CompanyProfilePatch{
		CompanyName: &name,
		Industry:    &industry,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", created.CompanyName)

	website := "https://acme.example.com"
	patched, err := profileService.SaveCompanyProfile(ctx, user.ID, domain.CompanyProfilePatch{
		Website: &website,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, "Acme", patched.CompanyName)
	assert.Equal(t, "Manufacturing", patched.Industry)
}

func TestProfileService_SaveCompanyProfileRequiresName(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	profileService := newProfileService(repos)

	user, _ := testutil.NewUserBuilder().
		WithUserType(domain.UserTypeEmployer).
		Build(t, repos)

	_, err := profileService.SaveCompanyProfile(ctx, user.ID, domain.CompanyProfilePatch{})
	assert.ErrorIs(t, err, domain.ErrMissingCompanyName)
}

func TestProfileService_SelectUserType(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	profileService := newProfileService(repos)

	user, _ := testutil.NewUserBuilder().Build(t, repos)
	assert.Empty(t, user.UserType)

	updated, err := profileService.SelectUserType(ctx, user.ID, domain.UserTypeEmployer)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeEmployer, updated.UserType)
	assert.Equal(t, user.Email, updated.Email)

	// Switching again is allowed.
	switched, err := profileService.SelectUserType(ctx, user.ID, domain.UserTypeJobSeeker)
	require.NoError(t, err)
	assert.Equal(t, domain.UserTypeJobSeeker, switched.UserType)

	_, err = profileService.SelectUserType(ctx, user.ID, "recruiter")
	assert.ErrorIs(t, err, domain.ErrInvalidUserType)
}

func TestProfileService_UpdateDisplayName(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	profileService := newProfileService(repos)

	user, _ := testutil.NewUserBuilder().Build(t, repos)

	updated, err := profileService.UpdateDisplayName(ctx, user.ID, "  Jordan Q  ")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Q", updated.DisplayName)

	_, err = profileService.UpdateDisplayName(ctx, user.ID, "   ")
	assert.ErrorIs(t, err, service.ErrEmptyDisplayName)
}
