package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Card validation errors
var (
	ErrCardIDEmpty       = errors.New("card ID cannot be empty")
	ErrCardDeckIDEmpty   = errors.New("card deck ID cannot be empty")
	ErrCardQuestionEmpty = errors.New("card question cannot be empty")
	ErrCardAnswerEmpty   = errors.New("card answer cannot be empty")
)

// Card is a question/answer flashcard belonging to one deck.
// A card never exists without a parent deck; the schema enforces
// the reference with a cascading foreign key.
type Card struct {
	ID        uuid.UUID `json:"id"`
	DeckID    uuid.UUID `json:"deck_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCard creates a new Card in the given deck.
// It generates a new UUID for the card ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewCard(deckID uuid.UUID, question, answer string) (*Card, error) {
	card := &Card{
		ID:        uuid.New(),
		DeckID:    deckID,
		Question:  strings.TrimSpace(question),
		Answer:    strings.TrimSpace(answer),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.DeckID == uuid.Nil {
		return ErrCardDeckIDEmpty
	}

	if strings.TrimSpace(c.Question) == "" {
		return ErrCardQuestionEmpty
	}

	if strings.TrimSpace(c.Answer) == "" {
		return ErrCardAnswerEmpty
	}

	return nil
}

// UpdateContent replaces the card's question and answer and bumps UpdatedAt.
// Returns an error if either field is empty; the card is left unchanged on error.
func (c *Card) UpdateContent(question, answer string) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if question == "" {
		return ErrCardQuestionEmpty
	}
	if answer == "" {
		return ErrCardAnswerEmpty
	}

	c.Question = question
	c.Answer = answer
	c.UpdatedAt = time.Now().UTC()
	return nil
}
