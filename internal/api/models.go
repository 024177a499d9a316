package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/stats"
	"github.com/flashdeck/flashdeck-api/internal/study"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh
// endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateDeckRequest defines the payload for creating a deck.
type CreateDeckRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// UpdateDeckRequest defines the payload for renaming a deck.
type UpdateDeckRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// DeckResponse is the JSON shape of a deck.
type DeckResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDeckResponse(deck *domain.Deck) DeckResponse {
	return DeckResponse{
		ID:        deck.ID,
		Title:     deck.Title,
		CreatedAt: deck.CreatedAt,
		UpdatedAt: deck.UpdatedAt,
	}
}

// CreateCardRequest defines the payload for adding a card to a deck.
type CreateCardRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
	Answer   string `json:"answer"   validate:"required,max=2000"`
}

// UpdateCardRequest defines the payload for editing a card.
type UpdateCardRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
	Answer   string `json:"answer"   validate:"required,max=2000"`
}

// CardResponse is the JSON shape of a card as stored in a deck, answer
// included. Study sessions use CardView instead, which withholds the answer
// until revealed.
type CardResponse struct {
	ID        uuid.UUID `json:"id"`
	DeckID    uuid.UUID `json:"deck_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCardResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:        card.ID,
		DeckID:    card.DeckID,
		Question:  card.Question,
		Answer:    card.Answer,
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

// StartTrainingRequest selects the deck to train on.
type StartTrainingRequest struct {
	DeckID uuid.UUID `json:"deck_id" validate:"required"`
}

// MarkRequest records the review decision for the current training card.
type MarkRequest struct {
	NeedsReview bool `json:"needs_review"`
}

// StartQuizRequest selects the decks whose cards are pooled into the quiz.
type StartQuizRequest struct {
	DeckIDs []uuid.UUID `json:"deck_ids" validate:"required,min=1,dive,required"`
}

// AnswerRequest self-scores the current quiz question.
type AnswerRequest struct {
	Correct bool `json:"correct"`
}

// CardView is a card as seen mid-session: the answer is withheld until the
// card is revealed.
type CardView struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer,omitempty"`
}

func toCardView(card *domain.Card, revealed bool) *CardView {
	if card == nil {
		return nil
	}
	view := &CardView{
		ID:       card.ID,
		Question: card.Question,
	}
	if revealed {
		view.Answer = card.Answer
	}
	return view
}

// TrainingResponse is the state of a training session returned after every
// training operation.
type TrainingResponse struct {
	SessionID   uuid.UUID `json:"session_id"`
	Card        *CardView `json:"card,omitempty"`
	Position    int       `json:"position"`
	Total       int       `json:"total"`
	Revealed    bool      `json:"revealed"`
	Finished    bool      `json:"finished"`
	ReviewCount int       `json:"review_count"`
}

func toTrainingResponse(sessionID uuid.UUID, view study.TrainerView) TrainingResponse {
	return TrainingResponse{
		SessionID:   sessionID,
		Card:        toCardView(view.Card, view.Revealed),
		Position:    view.Position,
		Total:       view.Total,
		Revealed:    view.Revealed,
		Finished:    view.Finished,
		ReviewCount: view.ReviewCount,
	}
}

// QuizResponse is the state of a quiz session returned after every quiz
// operation. ScorePercent is meaningful only once Finished is true.
type QuizResponse struct {
	SessionID    uuid.UUID `json:"session_id"`
	Card         *CardView `json:"card,omitempty"`
	Position     int       `json:"position"`
	Total        int       `json:"total"`
	Revealed     bool      `json:"revealed"`
	Finished     bool      `json:"finished"`
	CorrectCount int       `json:"correct_count"`
	ScorePercent int       `json:"score_percent"`
}

func toQuizResponse(sessionID uuid.UUID, view study.QuizView) QuizResponse {
	return QuizResponse{
		SessionID:    sessionID,
		Card:         toCardView(view.Card, view.Revealed),
		Position:     view.Position,
		Total:        view.Total,
		Revealed:     view.Revealed,
		Finished:     view.Finished,
		CorrectCount: view.CorrectCount,
		ScorePercent: view.ScorePercent,
	}
}

// StatsResponse wraps the per-deck statistics list.
type StatsResponse struct {
	Decks []stats.DeckStats `json:"decks"`
}
