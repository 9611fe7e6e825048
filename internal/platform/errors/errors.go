package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrNotLoggedIn       = errors.New("no account is logged in")
	ErrUserExists        = errors.New("account already exists")
	ErrBadCredentials    = errors.New("invalid email or password")
	ErrNoActiveTimer     = errors.New("no active timer")
	ErrAssistUnavailable = errors.New("assistant is unavailable")
)
