package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

func TestDeckServiceCreate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates valid deck", func(t *testing.T) {
		t.Parallel()
		deckStore := new(MockDeckStore)
		deckStore.On("Create", mock.Anything, mock.AnythingOfType("*domain.Deck")).Return(nil)

		svc := NewDeckService(deckStore, discardLogger())

		deck, err := svc.CreateDeck(context.Background(), userID, "Spanish Vocabulary")
		require.NoError(t, err)
		assert.Equal(t, "Spanish Vocabulary", deck.Title)
		assert.Equal(t, userID, deck.UserID)
	})

	t.Run("rejects empty title before store call", func(t *testing.T) {
		t.Parallel()
		deckStore := new(MockDeckStore)
		svc := NewDeckService(deckStore, discardLogger())

		_, err := svc.CreateDeck(context.Background(), userID, "   ")
		assert.ErrorIs(t, err, domain.ErrDeckTitleEmpty)
		deckStore.AssertNotCalled(t, "Create")
	})
}

func TestDeckServiceOwnership(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	strangerID := uuid.New()
	deck, err := domain.NewDeck(ownerID, "History")
	require.NoError(t, err)

	t.Run("stranger cannot rename", func(t *testing.T) {
		t.Parallel()
		deckStore := new(MockDeckStore)
		deckStore.On("GetByID", mock.Anything, deck.ID).Return(deck, nil)

		svc := NewDeckService(deckStore, discardLogger())

		_, err := svc.RenameDeck(context.Background(), strangerID, deck.ID, "Hijacked")
		assert.ErrorIs(t, err, store.ErrDeckNotFound)
		deckStore.AssertNotCalled(t, "Update")
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		t.Parallel()
		deckStore := new(MockDeckStore)
		deckStore.On("GetByID", mock.Anything, deck.ID).Return(deck, nil)

		svc := NewDeckService(deckStore, discardLogger())

		err := svc.DeleteDeck(context.Background(), strangerID, deck.ID)
		assert.ErrorIs(t, err, store.ErrDeckNotFound)
		deckStore.AssertNotCalled(t, "Delete")
	})

	t.Run("owner renames", func(t *testing.T) {
		t.Parallel()
		ownedDeck, err := domain.NewDeck(ownerID, "Geography")
		require.NoError(t, err)

		deckStore := new(MockDeckStore)
		deckStore.On("GetByID", mock.Anything, ownedDeck.ID).Return(ownedDeck, nil)
		deckStore.On("Update", mock.Anything, mock.AnythingOfType("*domain.Deck")).Return(nil)

		svc := NewDeckService(deckStore, discardLogger())

		renamed, err := svc.RenameDeck(context.Background(), ownerID, ownedDeck.ID, "World Geography")
		require.NoError(t, err)
		assert.Equal(t, "World Geography", renamed.Title)
	})
}

func TestCardServiceOwnership(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	strangerID := uuid.New()

	deck, err := domain.NewDeck(ownerID, "Biology")
	require.NoError(t, err)
	card, err := domain.NewCard(deck.ID, "What is mitosis?", "Cell division")
	require.NoError(t, err)

	t.Run("owner lists cards", func(t *testing.T) {
		t.Parallel()
		deckStore := new(MockDeckStore)
		cardStore := new(MockCardStore)
		deckStore.On("GetByID", mock.Anything, deck.ID).Return(deck, nil)
		cardStore.On("ListByDeck", mock.Anything, deck.ID).Return([]*domain.Card{card}, nil)

		svc := NewCardService(deckStore, cardStore, discardLogger())

		cards, err := svc.ListCards(context.Background(), ownerID, deck.ID)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, card.ID, cards[0].ID)
	})

	t.Run("stranger cannot list cards", func(t *testing.T) {
		t.Parallel()
		deckStore := new(MockDeckStore)
		cardStore := new(MockCardStore)
		deckStore.On("GetByID", mock.Anything, deck.ID).Return(deck, nil)

		svc := NewCardService(deckStore, cardStore, discardLogger())

		_, err := svc.ListCards(context.Background(), strangerID, deck.ID)
		assert.ErrorIs(t, err, store.ErrDeckNotFound)
		cardStore.AssertNotCalled(t, "ListByDeck")
	})

	t.Run("stranger cannot update card", func(t *testing.T) {
		t.Parallel()
		deckStore := new(MockDeckStore)
		cardStore := new(MockCardStore)
		cardStore.On("GetByID", mock.Anything, card.ID).Return(card, nil)
		deckStore.On("GetByID", mock.Anything, deck.ID).Return(deck, nil)

		svc := NewCardService(deckStore, cardStore, discardLogger())

		_, err := svc.UpdateCard(context.Background(), strangerID, card.ID, "q", "a")
		assert.ErrorIs(t, err, store.ErrCardNotFound)
		cardStore.AssertNotCalled(t, "Update")
	})

	t.Run("empty question rejected", func(t *testing.T) {
		t.Parallel()
		deckStore := new(MockDeckStore)
		cardStore := new(MockCardStore)
		deckStore.On("GetByID", mock.Anything, deck.ID).Return(deck, nil)

		svc := NewCardService(deckStore, cardStore, discardLogger())

		_, err := svc.CreateCard(context.Background(), ownerID, deck.ID, "", "an answer")
		assert.ErrorIs(t, err, domain.ErrCardQuestionEmpty)
		cardStore.AssertNotCalled(t, "Create")
	})
}
