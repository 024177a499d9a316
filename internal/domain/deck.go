package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Deck validation errors
var (
	ErrDeckIDEmpty     = errors.New("deck ID cannot be empty")
	ErrDeckUserIDEmpty = errors.New("deck user ID cannot be empty")
	ErrDeckTitleEmpty  = errors.New("deck title cannot be empty")
)

// Deck is a named collection of flashcards owned by exactly one user.
type Deck struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDeck creates a new Deck with the given owner and title.
// It generates a new UUID for the deck ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewDeck(userID uuid.UUID, title string) (*Deck, error) {
	deck := &Deck{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDeckIDEmpty
	}

	if d.UserID == uuid.Nil {
		return ErrDeckUserIDEmpty
	}

	if strings.TrimSpace(d.Title) == "" {
		return ErrDeckTitleEmpty
	}

	return nil
}

// Rename updates the deck's title and bumps the UpdatedAt timestamp.
// Returns an error if the new title is empty.
func (d *Deck) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrDeckTitleEmpty
	}

	d.Title = title
	d.UpdatedAt = time.Now().UTC()
	return nil
}
