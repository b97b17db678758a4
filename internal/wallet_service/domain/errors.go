package domain

import "errors"

var (
	// ErrAccountAlreadyExists indicates a creation attempt for a user that already has an account.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrAccountNotFound indicates the referenced user has no account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAmount indicates a deposit amount that is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrStoreUnavailable indicates an infrastructure failure during the unit of work.
	// The whole operation aborted without side effects and may be retried.
	ErrStoreUnavailable = errors.New("wallet store unavailable")
)
