package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/dom/job-board-website/internal/config"
	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidSession     = errors.New("session missing or expired")
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult carries the authenticated user plus the signed cookie value the
// handler should set.
type AuthResult struct {
	User        *domain.User
	CookieValue string
	ExpiresAt   time.Time
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	passwordHash := string(hashed)

	displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)
	if displayName == "" {
		displayName = input.Email
	}

	user, err := s.userRepo.Upsert(ctx, domain.UserUpsert{
		Email:        input.Email,
		PasswordHash: &passwordHash,
		FirstName:    &input.FirstName,
		LastName:     &input.LastName,
		DisplayName:  &displayName,
	})
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.establishSession(ctx, user)
}

func (s *AuthService) establishSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(s.cfg.SessionTTL)

	if _, err := s.sessionRepo.Create(ctx, token, user.ID, nil, expiresAt); err != nil {
		return nil, err
	}

	return &AuthResult{
		User:        user,
		CookieValue: s.signToken(token),
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout destroys the session behind the cookie value. A tampered or
// already-deleted session is not an error; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, cookieValue string) error {
	token, ok := s.verifyCookie(cookieValue)
	if !ok {
		return nil
	}
	return s.sessionRepo.Delete(ctx, token)
}

// UserFromCookie resolves a signed cookie value to the authenticated user.
// The session store is the oracle for "missing or expired".
func (s *AuthService) UserFromCookie(ctx context.Context, cookieValue string) (*domain.User, error) {
	token, ok := s.verifyCookie(cookieValue)
	if !ok {
		return nil, ErrInvalidSession
	}

	session, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// User record gone; the session is orphaned.
			_ = s.sessionRepo.Delete(ctx, token)
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CleanupExpiredSessions is the sweep complement to the lazy expiry check in
// the session store; the composition root schedules it hourly.
func (s *AuthService) CleanupExpiredSessions(ctx context.Context) (int, error) {
	return s.sessionRepo.CleanupExpired(ctx)
}

// signToken binds the opaque session token to the configured secret so a
// forged cookie fails before any store lookup.
func (s *AuthService) signToken(token string) string {
	mac := hmac.New(sha256.New, []byte(s.cfg.SessionSecret))
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

func (s *AuthService) verifyCookie(value string) (string, bool) {
	token, sig, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", false
	}
	want, err := hex.DecodeString(sig)
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, []byte(s.cfg.SessionSecret))
	mac.Write([]byte(token))
	if !hmac.Equal(mac.Sum(nil), want) {
		return "", false
	}
	return token, true
}
