package model

import "errors"

var (
	// Auth related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenExpired       = errors.New("token expired")

	// Usage log errors
	ErrUsageDisabled = errors.New("usage logging disabled")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
