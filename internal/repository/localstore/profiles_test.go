package localstore_test

import (
	"context"
	"testing"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobSeekerProfile_SalaryBounds(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)

	tests := []struct {
		name    string
		salary  int
		wantErr error
	}{
		{name: "maximum value accepted", salary: 2147483647},
		{name: "one above maximum rejected", salary: 2147483648, wantErr: domain.ErrSalaryOutOfRange},
		{name: "negative rejected", salary: -1, wantErr: domain.ErrSalaryOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, _ := testutil.NewUserBuilder().Build(t, repos)
			_, err := repos.JobSeekerProfile.Create(ctx, domain.NewJobSeekerProfile{
				UserID:            user.ID,
				SalaryExpectation: &tt.salary,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// Failed validation must leave no profile behind.
				_, getErr := repos.JobSeekerProfile.GetByUserID(ctx, user.ID)
				assert.ErrorIs(t, getErr, domain.ErrProfileNotFound)
				return
			}
			require.NoError(t, err)

			profile, err := repos.JobSeekerProfile.GetByUserID(ctx, user.ID)
			require.NoError(t, err)
			require.NotNil(t, profile.SalaryExpectation)
			assert.Equal(t, tt.salary, *profile.SalaryExpectation)
		})
	}
}

func TestJobSeekerProfile_PatchLeavesAbsentFieldsAlone(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	user, _ := testutil.NewUserBuilder().Build(t, repos)

	_, err := repos.JobSeekerProfile.Create(ctx, domain.NewJobSeekerProfile{
		UserID:   user.ID,
		Title:    "Backend Engineer",
		Location: "Berlin",
		Skills:   []string{"go", "postgres"},
	})
	require.NoError(t, err)

	newTitle := "Staff Engineer"
	updated, err := repos.JobSeekerProfile.Update(ctx, user.ID, domain.JobSeekerProfilePatch{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, []string{"go", "postgres"}, updated.Skills)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestJobSeekerProfile_UpdateMissing(t *testing.T) {
	repos := testutil.NewTestRepos(t)

	title := "Anything"
	_, err := repos.JobSeekerProfile.Update(context.Background(), "no-such-user", domain.JobSeekerProfilePatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestCompanyProfile_RequiresName(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	user, _ := testutil.NewUserBuilder().Build(t, repos)

	_, err := repos.CompanyProfile.Create(ctx, domain.NewCompanyProfile{UserID: user.ID})
	assert.ErrorIs(t, err, domain.ErrMissingCompanyName)

	profile, err := repos.CompanyProfile.Create(ctx, domain.NewCompanyProfile{UserID: user.ID, CompanyName: "Acme"})
	require.NoError(t, err)

	empty := ""
	_, err = repos.CompanyProfile.Update(ctx, user.ID, domain.CompanyProfilePatch{CompanyName: &empty})
	assert.ErrorIs(t, err, domain.ErrMissingCompanyName)

	industry := "Manufacturing"
	updated, err := repos.CompanyProfile.Update(ctx, user.ID, domain.CompanyProfilePatch{Industry: &industry})
	require.NoError(t, err)
	assert.Equal(t, profile.CompanyName, updated.CompanyName)
	assert.Equal(t, "Manufacturing", updated.Industry)
}
