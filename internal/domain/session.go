package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// StudySession validation errors
var (
	ErrSessionIDEmpty       = errors.New("session ID cannot be empty")
	ErrSessionUserIDEmpty   = errors.New("session user ID cannot be empty")
	ErrSessionDeckIDEmpty   = errors.New("session deck ID cannot be empty")
	ErrSessionCountNegative = errors.New("session counts cannot be negative")
	ErrSessionCountExceeds  = errors.New("session correct count cannot exceed total count")
)

// StudySession is an immutable record of one completed study pass over a deck,
// with a correct/total tally. Sessions form an append-only log: they are never
// updated or deleted.
type StudySession struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	DeckID       uuid.UUID `json:"deck_id"`
	CorrectCount int       `json:"correct_count"`
	TotalCount   int       `json:"total_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewStudySession creates a new StudySession record for the given user and deck.
// Returns an error if validation fails.
func NewStudySession(userID, deckID uuid.UUID, correctCount, totalCount int) (*StudySession, error) {
	session := &StudySession{
		ID:           uuid.New(),
		UserID:       userID,
		DeckID:       deckID,
		CorrectCount: correctCount,
		TotalCount:   totalCount,
		CreatedAt:    time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the StudySession has valid data.
func (s *StudySession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if s.UserID == uuid.Nil {
		return ErrSessionUserIDEmpty
	}

	if s.DeckID == uuid.Nil {
		return ErrSessionDeckIDEmpty
	}

	if s.CorrectCount < 0 || s.TotalCount < 0 {
		return ErrSessionCountNegative
	}

	if s.CorrectCount > s.TotalCount {
		return ErrSessionCountExceeds
	}

	return nil
}

// SessionRecord is a StudySession row joined with its deck's title, as
// returned by the session store for statistics reporting. The title may be
// empty if the deck has since been deleted.
type SessionRecord struct {
	StudySession
	DeckTitle string `json:"deck_title"`
}
