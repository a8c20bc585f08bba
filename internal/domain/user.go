package domain

import "time"

type UserType string

const (
	UserTypeJobSeeker UserType = "job_seeker"
	UserTypeEmployer  UserType = "employer"
)

// ValidUserType reports whether t is one of the selectable account types.
// The zero value ("") means the user has not picked a type yet and is never
// valid as a selection target.
func ValidUserType(t UserType) bool {
	return t == UserTypeJobSeeker || t == UserTypeEmployer
}

// User is persisted verbatim into the snapshot file, including the password
// hash. API responses must go through redacted projections, never through
// this struct directly.
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"passwordHash"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	DisplayName     string    `json:"displayName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	UserType        UserType  `json:"userType,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserUpsert carries the fields an upsert may set. Email is the secondary
// lookup key and is always required; nil pointer fields are left untouched
// on an existing record.
type UserUpsert struct {
	ID              string
	Email           string
	PasswordHash    *string
	FirstName       *string
	LastName        *string
	DisplayName     *string
	ProfileImageURL *string
	UserType        *UserType
}

// UserSummary is the redacted projection returned by user search.
type UserSummary struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	DisplayName     string   `json:"displayName,omitempty"`
	FirstName       string   `json:"firstName,omitempty"`
	LastName        string   `json:"lastName,omitempty"`
	ProfileImageURL string   `json:"profileImageUrl,omitempty"`
	UserType        UserType `json:"userType,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:              u.ID,
		Email:           u.Email,
		DisplayName:     u.DisplayName,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		UserType:        u.UserType,
	}
}
