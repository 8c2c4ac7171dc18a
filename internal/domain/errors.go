package domain

import "errors"

var (
	// Entry errors
	ErrEntryNotFound = errors.New("entry not found")
	ErrMissingTitle  = errors.New("entry title is required")
	ErrMissingDate   = errors.New("entry date is required")
	ErrMissingOwner  = errors.New("entry owner is required")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredit     = errors.New("credit amount must be positive")
)
