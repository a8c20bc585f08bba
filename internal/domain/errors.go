package domain

import "errors"

// Not-found errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrJobNotFound         = errors.New("job posting not found")
	ErrApplicationNotFound = errors.New("job application not found")
	ErrMessageNotFound     = errors.New("message not found")
)

// Conflict errors
var (
	ErrEmailExists          = errors.New("email already registered")
	ErrDuplicateApplication = errors.New("already applied to this job")
)

// Validation errors
var (
	ErrSalaryOutOfRange         = errors.New("salary expectation must be between 0 and 2147483647")
	ErrMissingCompanyName       = errors.New("company name is required")
	ErrMissingJobType           = errors.New("job type is required")
	ErrMissingExperienceLevel   = errors.New("experience level is required")
	ErrInvalidJobType           = errors.New("invalid job type")
	ErrInvalidExperienceLevel   = errors.New("invalid experience level")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
	ErrInvalidUserType          = errors.New("invalid user type")
	ErrEmptyMessageContent      = errors.New("message content must not be empty")
)
