package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/stats"
	"github.com/flashdeck/flashdeck-api/internal/store"
	"github.com/flashdeck/flashdeck-api/internal/study"
)

func TestStudyHandlerStartTraining(t *testing.T) {
	t.Parallel()

	t.Run("successful start hides the answer", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		deckID := uuid.New()
		sessionID := uuid.New()
		card := &domain.Card{ID: uuid.New(), DeckID: deckID, Question: "Q1", Answer: "secret"}

		studyService := new(MockStudyService)
		studyService.On("StartTraining", mock.Anything, userID, deckID).
			Return(sessionID, study.TrainerView{Card: card, Position: 1, Total: 3}, nil)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/train",
			StartTrainingRequest{DeckID: deckID}, userID, nil)
		rr := httptest.NewRecorder()
		handler.StartTraining(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp TrainingResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, sessionID, resp.SessionID)
		assert.Equal(t, 1, resp.Position)
		assert.Equal(t, 3, resp.Total)
		require.NotNil(t, resp.Card)
		assert.Equal(t, "Q1", resp.Card.Question)
		assert.Empty(t, resp.Card.Answer)
		assert.NotContains(t, rr.Body.String(), "secret")
	})

	t.Run("someone else's deck looks missing", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		deckID := uuid.New()

		studyService := new(MockStudyService)
		studyService.On("StartTraining", mock.Anything, userID, deckID).
			Return(uuid.Nil, study.TrainerView{}, store.ErrDeckNotFound)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/train",
			StartTrainingRequest{DeckID: deckID}, userID, nil)
		rr := httptest.NewRecorder()
		handler.StartTraining(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing deck id rejected", func(t *testing.T) {
		t.Parallel()
		studyService := new(MockStudyService)
		handler := NewStudyHandler(studyService)

		req := authedRequest(t, http.MethodPost, "/api/study/train",
			map[string]string{}, uuid.New(), nil)
		rr := httptest.NewRecorder()
		handler.StartTraining(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		studyService.AssertNotCalled(t, "StartTraining")
	})
}

func TestStudyHandlerRevealTraining(t *testing.T) {
	t.Parallel()

	t.Run("reveal exposes the answer", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		sessionID := uuid.New()
		card := &domain.Card{ID: uuid.New(), Question: "Q1", Answer: "A1"}

		studyService := new(MockStudyService)
		studyService.On("RevealTraining", mock.Anything, userID, sessionID).
			Return(study.TrainerView{Card: card, Position: 1, Total: 2, Revealed: true}, nil)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/train/"+sessionID.String()+"/reveal",
			nil, userID, map[string]string{"id": sessionID.String()})
		rr := httptest.NewRecorder()
		handler.RevealTraining(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TrainingResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Revealed)
		require.NotNil(t, resp.Card)
		assert.Equal(t, "A1", resp.Card.Answer)
	})

	t.Run("double reveal yields conflict", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		sessionID := uuid.New()

		studyService := new(MockStudyService)
		studyService.On("RevealTraining", mock.Anything, userID, sessionID).
			Return(study.TrainerView{}, study.ErrAlreadyRevealed)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/train/"+sessionID.String()+"/reveal",
			nil, userID, map[string]string{"id": sessionID.String()})
		rr := httptest.NewRecorder()
		handler.RevealTraining(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("unknown session yields not found", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		sessionID := uuid.New()

		studyService := new(MockStudyService)
		studyService.On("RevealTraining", mock.Anything, userID, sessionID).
			Return(study.TrainerView{}, study.ErrSessionNotFound)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/train/"+sessionID.String()+"/reveal",
			nil, userID, map[string]string{"id": sessionID.String()})
		rr := httptest.NewRecorder()
		handler.RevealTraining(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestStudyHandlerMarkTraining(t *testing.T) {
	t.Parallel()

	t.Run("marking for review advances the session", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		sessionID := uuid.New()
		next := &domain.Card{ID: uuid.New(), Question: "Q2", Answer: "A2"}

		studyService := new(MockStudyService)
		studyService.On("MarkTraining", mock.Anything, userID, sessionID, true).
			Return(study.TrainerView{Card: next, Position: 2, Total: 2, ReviewCount: 1}, nil)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/train/"+sessionID.String()+"/mark",
			MarkRequest{NeedsReview: true}, userID,
			map[string]string{"id": sessionID.String()})
		rr := httptest.NewRecorder()
		handler.MarkTraining(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp TrainingResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Position)
		assert.Equal(t, 1, resp.ReviewCount)
		assert.False(t, resp.Revealed)
	})

	t.Run("marking before reveal yields conflict", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		sessionID := uuid.New()

		studyService := new(MockStudyService)
		studyService.On("MarkTraining", mock.Anything, userID, sessionID, false).
			Return(study.TrainerView{}, study.ErrNotRevealed)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/train/"+sessionID.String()+"/mark",
			MarkRequest{}, userID, map[string]string{"id": sessionID.String()})
		rr := httptest.NewRecorder()
		handler.MarkTraining(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestStudyHandlerCloseTraining(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sessionID := uuid.New()

	studyService := new(MockStudyService)
	studyService.On("CloseTraining", mock.Anything, userID, sessionID).Return(nil)

	handler := NewStudyHandler(studyService)
	req := authedRequest(t, http.MethodDelete, "/api/study/train/"+sessionID.String(),
		nil, userID, map[string]string{"id": sessionID.String()})
	rr := httptest.NewRecorder()
	handler.CloseTraining(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	studyService.AssertExpectations(t)
}

func TestStudyHandlerStartQuiz(t *testing.T) {
	t.Parallel()

	t.Run("successful start pools the selected decks", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		deckIDs := []uuid.UUID{uuid.New(), uuid.New()}
		sessionID := uuid.New()
		card := &domain.Card{ID: uuid.New(), Question: "Q1", Answer: "A1"}

		studyService := new(MockStudyService)
		studyService.On("StartQuiz", mock.Anything, userID, deckIDs).
			Return(sessionID, study.QuizView{Card: card, Position: 1, Total: 5}, nil)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/quiz",
			StartQuizRequest{DeckIDs: deckIDs}, userID, nil)
		rr := httptest.NewRecorder()
		handler.StartQuiz(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp QuizResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, sessionID, resp.SessionID)
		assert.Equal(t, 5, resp.Total)
		require.NotNil(t, resp.Card)
		assert.Empty(t, resp.Card.Answer)
	})

	t.Run("empty deck list rejected by validation", func(t *testing.T) {
		t.Parallel()
		studyService := new(MockStudyService)
		handler := NewStudyHandler(studyService)

		req := authedRequest(t, http.MethodPost, "/api/study/quiz",
			StartQuizRequest{DeckIDs: []uuid.UUID{}}, uuid.New(), nil)
		rr := httptest.NewRecorder()
		handler.StartQuiz(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		studyService.AssertNotCalled(t, "StartQuiz")
	})

	t.Run("decks without cards rejected", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		deckIDs := []uuid.UUID{uuid.New()}

		studyService := new(MockStudyService)
		studyService.On("StartQuiz", mock.Anything, userID, deckIDs).
			Return(uuid.Nil, study.QuizView{}, study.ErrNoCards)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/quiz",
			StartQuizRequest{DeckIDs: deckIDs}, userID, nil)
		rr := httptest.NewRecorder()
		handler.StartQuiz(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestStudyHandlerAnswerQuiz(t *testing.T) {
	t.Parallel()

	t.Run("final answer reports the score", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		sessionID := uuid.New()

		studyService := new(MockStudyService)
		studyService.On("AnswerQuiz", mock.Anything, userID, sessionID, true).
			Return(study.QuizView{
				Position:     2,
				Total:        2,
				Finished:     true,
				CorrectCount: 2,
				ScorePercent: 100,
			}, nil)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/quiz/"+sessionID.String()+"/answer",
			AnswerRequest{Correct: true}, userID,
			map[string]string{"id": sessionID.String()})
		rr := httptest.NewRecorder()
		handler.AnswerQuiz(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp QuizResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Finished)
		assert.Equal(t, 2, resp.CorrectCount)
		assert.Equal(t, 100, resp.ScorePercent)
		assert.Nil(t, resp.Card)
	})

	t.Run("answering a finished quiz yields conflict", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		sessionID := uuid.New()

		studyService := new(MockStudyService)
		studyService.On("AnswerQuiz", mock.Anything, userID, sessionID, false).
			Return(study.QuizView{}, study.ErrSessionFinished)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodPost, "/api/study/quiz/"+sessionID.String()+"/answer",
			AnswerRequest{}, userID, map[string]string{"id": sessionID.String()})
		rr := httptest.NewRecorder()
		handler.AnswerQuiz(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestStudyHandlerStats(t *testing.T) {
	t.Parallel()

	t.Run("returns per-deck summaries", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		summaries := []stats.DeckStats{
			{DeckID: uuid.New(), DeckTitle: "Spanish", TotalSessions: 3, SuccessRate: 80},
		}

		studyService := new(MockStudyService)
		studyService.On("Stats", mock.Anything, userID).Return(summaries, nil)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodGet, "/api/stats", nil, userID, nil)
		rr := httptest.NewRecorder()
		handler.Stats(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp StatsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Decks, 1)
		assert.Equal(t, "Spanish", resp.Decks[0].DeckTitle)
		assert.Equal(t, 80, resp.Decks[0].SuccessRate)
	})

	t.Run("no history yields an empty list", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()

		studyService := new(MockStudyService)
		studyService.On("Stats", mock.Anything, userID).Return([]stats.DeckStats{}, nil)

		handler := NewStudyHandler(studyService)
		req := authedRequest(t, http.MethodGet, "/api/stats", nil, userID, nil)
		rr := httptest.NewRecorder()
		handler.Stats(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp StatsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Empty(t, resp.Decks)
	})
}
