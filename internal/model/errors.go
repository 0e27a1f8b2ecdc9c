package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidRole  = errors.New("invalid role")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Game catalog errors
	ErrGameNotFound = errors.New("game not found")

	// Tournament errors
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrTournamentFull     = errors.New("tournament is full")
)
