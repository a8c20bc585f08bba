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

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func(t *testing.T, authService *service.AuthService)
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Email:     "new@example.com",
				Password:  "password123",
				FirstName: "New",
				LastName:  "User",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Email:    "taken@example.com",
				Password: "password123",
			},
			setup: func(t *testing.T, authService *service.AuthService) {
				_, err := authService.Register(ctx, service.RegisterInput{
					Email:    "taken@example.com",
					Password: "password123",
				})
				require.NoError(t, err)
			},
			wantErr: domain.ErrEmailExists,
		},
		{
			name: "password too short",
			input: service.RegisterInput{
				Email:    "short@example.com",
				Password: "12345",
			},
			wantErr: service.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := testutil.NewTestRepos(t)
			authService := service.NewAuthService(repos.User, repos.Session, testutil.TestConfig())

			if tt.setup != nil {
				tt.setup(t, authService)
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Email, result.User.Email)
			assert.Equal(t, "New User", result.User.DisplayName)
			assert.NotEmpty(t, result.CookieValue)
			assert.NotEqual(t, tt.input.Password, result.User.PasswordHash)

			// The cookie resolves straight back to the user.
			user, err := authService.UserFromCookie(ctx, result.CookieValue)
			require.NoError(t, err)
			assert.Equal(t, result.User.ID, user.ID)
		})
	}
}

func TestAuthService_DuplicateRegistrationLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	authService := service.NewAuthService(repos.User, repos.Session, testutil.TestConfig())

	first, err := authService.Register(ctx, service.RegisterInput{Email: "only@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = authService.Register(ctx, service.RegisterInput{Email: "only@example.com", Password: "different456"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)

	stored, err := repos.User.GetByEmail(ctx, "only@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, stored.ID)
	assert.Equal(t, first.User.PasswordHash, stored.PasswordHash)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	authService := service.NewAuthService(repos.User, repos.Session, testutil.TestConfig())

	_, err := authService.Register(ctx, service.RegisterInput{Email: "login@example.com", Password: "correctpassword"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name:  "successful login",
			input: service.LoginInput{Email: "login@example.com", Password: "correctpassword"},
		},
		{
			name:    "wrong password",
			input:   service.LoginInput{Email: "login@example.com", Password: "wrongpassword"},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:    "unknown email",
			input:   service.LoginInput{Email: "nobody@example.com", Password: "correctpassword"},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.CookieValue)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	authService := service.NewAuthService(repos.User, repos.Session, testutil.TestConfig())

	result, err := authService.Register(ctx, service.RegisterInput{Email: "bye@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, result.CookieValue))

	_, err = authService.UserFromCookie(ctx, result.CookieValue)
	assert.ErrorIs(t, err, service.ErrInvalidSession)

	// Logging out again is a no-op.
	require.NoError(t, authService.Logout(ctx, result.CookieValue))
}

func TestAuthService_TamperedCookieRejected(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewTestRepos(t)
	authService := service.NewAuthService(repos.User, repos.Session, testutil.TestConfig())

	result, err := authService.Register(ctx, service.RegisterInput{Email: "sig@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = authService.UserFromCookie(ctx, result.CookieValue+"00")
	assert.ErrorIs(t, err, service.ErrInvalidSession)

	_, err = authService.UserFromCookie(ctx, "no-signature-at-all")
	assert.ErrorIs(t, err, service.ErrInvalidSession)
}
