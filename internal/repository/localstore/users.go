package localstore

import (
	"context"
	"strings"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/google/uuid"
)

type userRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *userRepository {
	return &userRepository{s: s}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.Users {
		if r.s.db.Users[i].ID == id {
			u := r.s.db.Users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.Users {
		if r.s.db.Users[i].Email == email {
			u := r.s.db.Users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Upsert looks up an existing user by id or by email and merges the supplied
// fields over it; if no user matches, a new one is created. The dual-key
// lookup backs both "update the current session's user" and registration
// through one entry point.
func (r *userRepository) Upsert(ctx context.Context, input domain.UserUpsert) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()

	for i := range r.s.db.Users {
		u := &r.s.db.Users[i]
		if (input.ID != "" && u.ID == input.ID) || u.Email == input.Email {
			u.Email = input.Email
			applyUserUpsert(u, input)
			u.UpdatedAt = now
			if err := r.s.save(); err != nil {
				return nil, err
			}
			out := *u
			return &out, nil
		}
	}

	user := domain.User{
		ID:        input.ID,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	applyUserUpsert(&user, input)

	r.s.db.Users = append(r.s.db.Users, user)
	if err := r.s.save(); err != nil {
		return nil, err
	}
	out := user
	return &out, nil
}

func applyUserUpsert(u *domain.User, input domain.UserUpsert) {
	if input.PasswordHash != nil {
		u.PasswordHash = *input.PasswordHash
	}
	if input.FirstName != nil {
		u.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		u.LastName = *input.LastName
	}
	if input.DisplayName != nil {
		u.DisplayName = *input.DisplayName
	}
	if input.ProfileImageURL != nil {
		u.ProfileImageURL = *input.ProfileImageURL
	}
	if input.UserType != nil {
		u.UserType = *input.UserType
	}
}

// Search matches term as a case-insensitive substring of email, display
// name, first name or last name, excluding the requesting user. Results are
// redacted projections without the password hash.
func (r *userRepository) Search(ctx context.Context, currentUserID, term string) ([]domain.UserSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	needle := strings.ToLower(term)
	results := []domain.UserSummary{}
	for i := range r.s.db.Users {
		u := &r.s.db.Users[i]
		if u.ID == currentUserID {
			continue
		}
		if containsFold(u.Email, needle) ||
			containsFold(u.DisplayName, needle) ||
			containsFold(u.FirstName, needle) ||
			containsFold(u.LastName, needle) {
			results = append(results, u.Summary())
		}
	}
	return results, nil
}

// containsFold reports whether needle (already lowercased) occurs in s,
// ignoring case. Empty field values never match.
func containsFold(s, needle string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), needle)
}
