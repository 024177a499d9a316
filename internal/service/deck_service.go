package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// DeckService provides deck CRUD scoped to the owning user.
type DeckService interface {
	// ListDecks returns all of the user's decks, newest first.
	ListDecks(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)

	// CreateDeck creates a new deck owned by the user.
	CreateDeck(ctx context.Context, userID uuid.UUID, title string) (*domain.Deck, error)

	// RenameDeck changes a deck's title. Returns store.ErrDeckNotFound if
	// the deck does not exist or belongs to another user.
	RenameDeck(ctx context.Context, userID, deckID uuid.UUID, title string) (*domain.Deck, error)

	// DeleteDeck removes a deck and, via the schema cascade, all of its
	// cards. Returns store.ErrDeckNotFound if the deck does not exist or
	// belongs to another user.
	DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error
}

// DeckServiceImpl implements the DeckService interface.
type DeckServiceImpl struct {
	deckStore store.DeckStore
	logger    *slog.Logger
}

// NewDeckService creates a new DeckService.
func NewDeckService(deckStore store.DeckStore, logger *slog.Logger) DeckService {
	return &DeckServiceImpl{
		deckStore: deckStore,
		logger:    logger.With("component", "deck_service"),
	}
}

// getOwnedDeck loads a deck and verifies ownership. A deck owned by another
// user is reported as not found so deck IDs don't leak across accounts.
func (s *DeckServiceImpl) getOwnedDeck(
	ctx context.Context,
	userID, deckID uuid.UUID,
) (*domain.Deck, error) {
	deck, err := s.deckStore.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck.UserID != userID {
		return nil, store.ErrDeckNotFound
	}
	return deck, nil
}

// ListDecks returns all of the user's decks.
func (s *DeckServiceImpl) ListDecks(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	decks, err := s.deckStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list decks", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// CreateDeck creates a new deck owned by the user.
func (s *DeckServiceImpl) CreateDeck(
	ctx context.Context,
	userID uuid.UUID,
	title string,
) (*domain.Deck, error) {
	deck, err := domain.NewDeck(userID, title)
	if err != nil {
		s.logger.Debug("deck creation rejected by validation", "error", err)
		return nil, err
	}

	if err := s.deckStore.Create(ctx, deck); err != nil {
		s.logger.Error("failed to create deck", "error", err, "user_id", userID)
		return nil, err
	}

	return deck, nil
}

// RenameDeck changes an owned deck's title.
func (s *DeckServiceImpl) RenameDeck(
	ctx context.Context,
	userID, deckID uuid.UUID,
	title string,
) (*domain.Deck, error) {
	deck, err := s.getOwnedDeck(ctx, userID, deckID)
	if err != nil {
		return nil, err
	}

	if err := deck.Rename(title); err != nil {
		s.logger.Debug("deck rename rejected by validation", "error", err)
		return nil, err
	}

	if err := s.deckStore.Update(ctx, deck); err != nil {
		s.logger.Error("failed to update deck", "error", err, "deck_id", deckID)
		return nil, err
	}

	return deck, nil
}

// DeleteDeck removes an owned deck together with its cards.
func (s *DeckServiceImpl) DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error {
	if _, err := s.getOwnedDeck(ctx, userID, deckID); err != nil {
		return err
	}

	if err := s.deckStore.Delete(ctx, deckID); err != nil {
		s.logger.Error("failed to delete deck", "error", err, "deck_id", deckID)
		return err
	}

	s.logger.Info("deck deleted", "deck_id", deckID, "user_id", userID)
	return nil
}
