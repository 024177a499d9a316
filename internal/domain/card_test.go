package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewCard(t *testing.T) {
	t.Parallel() // Enable parallel execution
	deckID := uuid.New()

	card, err := NewCard(deckID, "What is Go?", "A programming language")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if card.DeckID != deckID {
		t.Errorf("Expected deck ID %s, got %s", deckID, card.DeckID)
	}

	if card.Question != "What is Go?" {
		t.Errorf("Expected question %q, got %q", "What is Go?", card.Question)
	}

	if card.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test invalid deckID
	_, err = NewCard(uuid.Nil, "q", "a")
	if err != ErrCardDeckIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardDeckIDEmpty, err)
	}

	// Test empty question
	_, err = NewCard(deckID, "   ", "a")
	if err != ErrCardQuestionEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardQuestionEmpty, err)
	}

	// Test empty answer
	_, err = NewCard(deckID, "q", "")
	if err != ErrCardAnswerEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardAnswerEmpty, err)
	}
}

func TestCardUpdateContent(t *testing.T) {
	t.Parallel()
	card, err := NewCard(uuid.New(), "old question", "old answer")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := card.UpdateContent("new question", "new answer"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card.Question != "new question" || card.Answer != "new answer" {
		t.Errorf("Expected updated content, got %q / %q", card.Question, card.Answer)
	}

	// Invalid update must leave the card untouched
	if err := card.UpdateContent("", "answer"); err != ErrCardQuestionEmpty {
		t.Errorf("Expected error %v, got %v", ErrCardQuestionEmpty, err)
	}
	if card.Question != "new question" {
		t.Errorf("Expected question to be unchanged after failed update, got %q", card.Question)
	}
}

func TestCardTrimsWhitespace(t *testing.T) {
	t.Parallel()
	card, err := NewCard(uuid.New(), "  question  ", "  answer  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if card.Question != "question" || card.Answer != "answer" {
		t.Errorf("Expected trimmed fields, got %q / %q", card.Question, card.Answer)
	}
}
