// internal/pkg/errors/error.go
package xerrors

import "errors"

// Common reusable application errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSellerInactive     = errors.New("seller is inactive")
	ErrMissingPassword    = errors.New("password is required for a new seller")
	ErrSessionExpired     = errors.New("session expired or invalid")
)
