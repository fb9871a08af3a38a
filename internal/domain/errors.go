package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
)

// UserNotFoundError reports a lookup for an email with no matching account.
// It unwraps to ErrNotFound so callers can match either way.
type UserNotFoundError struct {
	Email string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("User with given email: %s not found!", e.Email)
}

func (e *UserNotFoundError) Unwrap() error { return ErrNotFound }

// InvalidPasswordError reports a rejected password during a password change:
// either the current password did not match or the confirmation differed.
// Reason is the client-facing message.
type InvalidPasswordError struct {
	Reason string
}

func (e *InvalidPasswordError) Error() string { return e.Reason }
