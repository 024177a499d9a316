package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/api/shared"
	"github.com/flashdeck/flashdeck-api/internal/service"
	"github.com/flashdeck/flashdeck-api/internal/study"
)

// StudyHandler handles the study-session API: flip training over one deck,
// timed quizzes over several, and the statistics view.
type StudyHandler struct {
	studyService service.StudyService
}

// NewStudyHandler creates a new StudyHandler with the given dependencies.
func NewStudyHandler(studyService service.StudyService) *StudyHandler {
	return &StudyHandler{
		studyService: studyService,
	}
}

// StartTraining handles POST /study/train.
func (h *StudyHandler) StartTraining(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req StartTrainingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sessionID, view, err := h.studyService.StartTraining(r.Context(), userID, req.DeckID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toTrainingResponse(sessionID, view))
}

// trainingOp runs one operation against a live training session and writes
// the resulting view.
func (h *StudyHandler) trainingOp(
	w http.ResponseWriter,
	r *http.Request,
	op func(userID, sessionID uuid.UUID) (study.TrainerView, error),
) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := op(userID, sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toTrainingResponse(sessionID, view))
}

// GetTraining handles GET /study/train/{id}.
func (h *StudyHandler) GetTraining(w http.ResponseWriter, r *http.Request) {
	h.trainingOp(w, r, func(userID, sessionID uuid.UUID) (study.TrainerView, error) {
		return h.studyService.TrainingView(r.Context(), userID, sessionID)
	})
}

// RevealTraining handles POST /study/train/{id}/reveal.
func (h *StudyHandler) RevealTraining(w http.ResponseWriter, r *http.Request) {
	h.trainingOp(w, r, func(userID, sessionID uuid.UUID) (study.TrainerView, error) {
		return h.studyService.RevealTraining(r.Context(), userID, sessionID)
	})
}

// MarkTraining handles POST /study/train/{id}/mark.
func (h *StudyHandler) MarkTraining(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req MarkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.studyService.MarkTraining(r.Context(), userID, sessionID, req.NeedsReview)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toTrainingResponse(sessionID, view))
}

// RestartTraining handles POST /study/train/{id}/restart.
func (h *StudyHandler) RestartTraining(w http.ResponseWriter, r *http.Request) {
	h.trainingOp(w, r, func(userID, sessionID uuid.UUID) (study.TrainerView, error) {
		return h.studyService.RestartTraining(r.Context(), userID, sessionID)
	})
}

// CloseTraining handles DELETE /study/train/{id}.
func (h *StudyHandler) CloseTraining(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.studyService.CloseTraining(r.Context(), userID, sessionID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StartQuiz handles POST /study/quiz.
func (h *StudyHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req StartQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sessionID, view, err := h.studyService.StartQuiz(r.Context(), userID, req.DeckIDs)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toQuizResponse(sessionID, view))
}

// quizOp runs one operation against a live quiz session and writes the
// resulting view.
func (h *StudyHandler) quizOp(
	w http.ResponseWriter,
	r *http.Request,
	op func(userID, sessionID uuid.UUID) (study.QuizView, error),
) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := op(userID, sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toQuizResponse(sessionID, view))
}

// GetQuiz handles GET /study/quiz/{id}.
func (h *StudyHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	h.quizOp(w, r, func(userID, sessionID uuid.UUID) (study.QuizView, error) {
		return h.studyService.QuizView(r.Context(), userID, sessionID)
	})
}

// RevealQuiz handles POST /study/quiz/{id}/reveal.
func (h *StudyHandler) RevealQuiz(w http.ResponseWriter, r *http.Request) {
	h.quizOp(w, r, func(userID, sessionID uuid.UUID) (study.QuizView, error) {
		return h.studyService.RevealQuiz(r.Context(), userID, sessionID)
	})
}

// AnswerQuiz handles POST /study/quiz/{id}/answer.
func (h *StudyHandler) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.studyService.AnswerQuiz(r.Context(), userID, sessionID, req.Correct)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toQuizResponse(sessionID, view))
}

// CloseQuiz handles DELETE /study/quiz/{id}.
func (h *StudyHandler) CloseQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.studyService.CloseQuiz(r.Context(), userID, sessionID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /stats.
func (h *StudyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	summaries, err := h.studyService.Stats(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load statistics")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse{Decks: summaries})
}
