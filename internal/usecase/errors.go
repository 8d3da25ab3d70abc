package usecase

import "errors"

// Error kinds returned by the services. Handlers map these to HTTP statuses
// with errors.Is; anything else is treated as an internal error.
var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateEmail      = errors.New("email is already in use")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrUserNotFound        = errors.New("invalid email or password")
	ErrReportGeneration    = errors.New("failed to generate report")
)
