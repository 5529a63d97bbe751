package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("admin privileges required")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrSelfDelete   = errors.New("admins cannot delete their own account")

	// Note errors
	ErrNoteNotFound = errors.New("note not found")
)
