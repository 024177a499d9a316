package service

import "errors"

// Service-level errors
var (
	// ErrInvalidCredentials indicates a login attempt with an unknown email
	// or a wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoDecksSelected indicates a quiz was requested without any decks.
	ErrNoDecksSelected = errors.New("no decks selected")
)
