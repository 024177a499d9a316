package study

import "errors"

// Runner state errors
var (
	// ErrAlreadyRevealed is returned when Reveal is called twice for the
	// same card without advancing.
	ErrAlreadyRevealed = errors.New("answer already revealed")

	// ErrNotRevealed is returned when a card is marked or answered before
	// its answer has been revealed.
	ErrNotRevealed = errors.New("answer not yet revealed")

	// ErrSessionFinished is returned when an operation is attempted on a
	// runner that has already completed its pass.
	ErrSessionFinished = errors.New("session already finished")

	// ErrNoCards is returned when a quiz is started over an empty card pool.
	ErrNoCards = errors.New("no cards to study")

	// ErrSessionNotFound is returned by the manager when a session ID does
	// not exist or belongs to another user.
	ErrSessionNotFound = errors.New("study session not found")
)
