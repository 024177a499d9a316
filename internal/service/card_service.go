package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// CardService provides flashcard CRUD scoped to the owning user. Ownership
// runs through the deck: a card is reachable only via a deck the user owns.
type CardService interface {
	// ListCards returns all cards of an owned deck in creation order.
	ListCards(ctx context.Context, userID, deckID uuid.UUID) ([]*domain.Card, error)

	// CreateCard adds a new card to an owned deck.
	CreateCard(ctx context.Context, userID, deckID uuid.UUID, question, answer string) (*domain.Card, error)

	// UpdateCard changes a card's question and answer. Returns
	// store.ErrCardNotFound if the card does not exist or its deck belongs
	// to another user.
	UpdateCard(ctx context.Context, userID, cardID uuid.UUID, question, answer string) (*domain.Card, error)

	// DeleteCard removes a card. Returns store.ErrCardNotFound if the card
	// does not exist or its deck belongs to another user.
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
}

// CardServiceImpl implements the CardService interface.
type CardServiceImpl struct {
	deckStore store.DeckStore
	cardStore store.CardStore
	logger    *slog.Logger
}

// NewCardService creates a new CardService.
func NewCardService(
	deckStore store.DeckStore,
	cardStore store.CardStore,
	logger *slog.Logger,
) CardService {
	return &CardServiceImpl{
		deckStore: deckStore,
		cardStore: cardStore,
		logger:    logger.With("component", "card_service"),
	}
}

// requireDeckOwner verifies the deck exists and belongs to the user.
func (s *CardServiceImpl) requireDeckOwner(ctx context.Context, userID, deckID uuid.UUID) error {
	deck, err := s.deckStore.GetByID(ctx, deckID)
	if err != nil {
		return err
	}
	if deck.UserID != userID {
		return store.ErrDeckNotFound
	}
	return nil
}

// getOwnedCard loads a card and verifies the user owns its deck. A card in
// another user's deck is reported as not found.
func (s *CardServiceImpl) getOwnedCard(
	ctx context.Context,
	userID, cardID uuid.UUID,
) (*domain.Card, error) {
	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	if err := s.requireDeckOwner(ctx, userID, card.DeckID); err != nil {
		return nil, store.ErrCardNotFound
	}

	return card, nil
}

// ListCards returns all cards of an owned deck.
func (s *CardServiceImpl) ListCards(
	ctx context.Context,
	userID, deckID uuid.UUID,
) ([]*domain.Card, error) {
	if err := s.requireDeckOwner(ctx, userID, deckID); err != nil {
		return nil, err
	}

	cards, err := s.cardStore.ListByDeck(ctx, deckID)
	if err != nil {
		s.logger.Error("failed to list cards", "error", err, "deck_id", deckID)
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// CreateCard adds a new card to an owned deck.
func (s *CardServiceImpl) CreateCard(
	ctx context.Context,
	userID, deckID uuid.UUID,
	question, answer string,
) (*domain.Card, error) {
	if err := s.requireDeckOwner(ctx, userID, deckID); err != nil {
		return nil, err
	}

	card, err := domain.NewCard(deckID, question, answer)
	if err != nil {
		s.logger.Debug("card creation rejected by validation", "error", err)
		return nil, err
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		s.logger.Error("failed to create card", "error", err, "deck_id", deckID)
		return nil, err
	}

	return card, nil
}

// UpdateCard changes an owned card's question and answer.
func (s *CardServiceImpl) UpdateCard(
	ctx context.Context,
	userID, cardID uuid.UUID,
	question, answer string,
) (*domain.Card, error) {
	card, err := s.getOwnedCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	if err := card.UpdateContent(question, answer); err != nil {
		s.logger.Debug("card update rejected by validation", "error", err)
		return nil, err
	}

	if err := s.cardStore.Update(ctx, card); err != nil {
		s.logger.Error("failed to update card", "error", err, "card_id", cardID)
		return nil, err
	}

	return card, nil
}

// DeleteCard removes an owned card.
func (s *CardServiceImpl) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	if _, err := s.getOwnedCard(ctx, userID, cardID); err != nil {
		return err
	}

	if err := s.cardStore.Delete(ctx, cardID); err != nil {
		s.logger.Error("failed to delete card", "error", err, "card_id", cardID)
		return err
	}

	return nil
}
