package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMemberNotFound  = errors.New("member not found")
)

var (
	// ErrAlreadyRegistered is raised by the ledger when the unique
	// (user_id, session_id) constraint rejects an insert. It is a
	// distinguished outcome, not a generic failure.
	ErrAlreadyRegistered = errors.New("already registered")

	ErrMemberExists = errors.New("member already exists")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrSessionNotOpen = errors.New("session is not open for booking")
)
