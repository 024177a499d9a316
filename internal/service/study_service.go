package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/stats"
	"github.com/flashdeck/flashdeck-api/internal/store"
	"github.com/flashdeck/flashdeck-api/internal/study"
)

// StudyService runs study sessions over a user's decks: flip-training over a
// single deck, timed quizzes over several decks pooled together, and the
// per-deck statistics view over the recorded session history.
type StudyService interface {
	// StartTraining starts a flip-training session over an owned deck and
	// returns the session ID with the initial view.
	StartTraining(ctx context.Context, userID, deckID uuid.UUID) (uuid.UUID, study.TrainerView, error)

	// TrainingView returns the current state of a live training session.
	TrainingView(ctx context.Context, userID, sessionID uuid.UUID) (study.TrainerView, error)

	// RevealTraining flips the current card to its answer side.
	RevealTraining(ctx context.Context, userID, sessionID uuid.UUID) (study.TrainerView, error)

	// MarkTraining records whether the current card needs review and
	// advances to the next one.
	MarkTraining(ctx context.Context, userID, sessionID uuid.UUID, needsReview bool) (study.TrainerView, error)

	// RestartTraining reshuffles the deck and starts the session over,
	// clearing the review set.
	RestartTraining(ctx context.Context, userID, sessionID uuid.UUID) (study.TrainerView, error)

	// CloseTraining discards a training session.
	CloseTraining(ctx context.Context, userID, sessionID uuid.UUID) error

	// StartQuiz pools the cards of the selected owned decks into a timed
	// quiz and returns the session ID with the initial view. The decks'
	// cards are fetched concurrently; all fetches must succeed.
	StartQuiz(ctx context.Context, userID uuid.UUID, deckIDs []uuid.UUID) (uuid.UUID, study.QuizView, error)

	// QuizView returns the current state of a live quiz session.
	QuizView(ctx context.Context, userID, sessionID uuid.UUID) (study.QuizView, error)

	// RevealQuiz shows the current answer ahead of the countdown.
	RevealQuiz(ctx context.Context, userID, sessionID uuid.UUID) (study.QuizView, error)

	// AnswerQuiz self-scores the current question and advances. When the
	// quiz finishes, one session record per contributing deck is persisted.
	AnswerQuiz(ctx context.Context, userID, sessionID uuid.UUID, correct bool) (study.QuizView, error)

	// CloseQuiz discards a quiz session, cancelling its pending timer.
	// Partial progress is never persisted.
	CloseQuiz(ctx context.Context, userID, sessionID uuid.UUID) error

	// Stats aggregates the user's session history into per-deck statistics,
	// most recently studied deck first.
	Stats(ctx context.Context, userID uuid.UUID) ([]stats.DeckStats, error)
}

// StudyServiceImpl implements the StudyService interface.
type StudyServiceImpl struct {
	deckStore    store.DeckStore
	cardStore    store.CardStore
	sessionStore store.SessionStore
	manager      *study.Manager
	db           *sql.DB
	logger       *slog.Logger
}

// NewStudyService creates a new StudyService.
func NewStudyService(
	deckStore store.DeckStore,
	cardStore store.CardStore,
	sessionStore store.SessionStore,
	manager *study.Manager,
	db *sql.DB,
	logger *slog.Logger,
) StudyService {
	return &StudyServiceImpl{
		deckStore:    deckStore,
		cardStore:    cardStore,
		sessionStore: sessionStore,
		manager:      manager,
		db:           db,
		logger:       logger.With("component", "study_service"),
	}
}

// requireDeckOwner verifies the deck exists and belongs to the user.
func (s *StudyServiceImpl) requireDeckOwner(ctx context.Context, userID, deckID uuid.UUID) error {
	deck, err := s.deckStore.GetByID(ctx, deckID)
	if err != nil {
		return err
	}
	if deck.UserID != userID {
		return store.ErrDeckNotFound
	}
	return nil
}

// fetchDeckCards loads a deck's cards as values for the study runners.
func (s *StudyServiceImpl) fetchDeckCards(ctx context.Context, deckID uuid.UUID) ([]domain.Card, error) {
	cards, err := s.cardStore.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Card, len(cards))
	for i, card := range cards {
		out[i] = *card
	}
	return out, nil
}

// StartTraining starts a flip-training session over an owned deck.
func (s *StudyServiceImpl) StartTraining(
	ctx context.Context,
	userID, deckID uuid.UUID,
) (uuid.UUID, study.TrainerView, error) {
	if err := s.requireDeckOwner(ctx, userID, deckID); err != nil {
		return uuid.Nil, study.TrainerView{}, err
	}

	cards, err := s.fetchDeckCards(ctx, deckID)
	if err != nil {
		s.logger.Error("failed to load cards for training", "error", err, "deck_id", deckID)
		return uuid.Nil, study.TrainerView{}, fmt.Errorf("failed to load cards: %w", err)
	}

	sessionID := s.manager.StartTrainer(userID, cards)

	trainer, err := s.manager.Trainer(userID, sessionID)
	if err != nil {
		return uuid.Nil, study.TrainerView{}, err
	}

	s.logger.Info("training session started",
		"session_id", sessionID,
		"deck_id", deckID,
		"card_count", len(cards))
	return sessionID, trainer.View(), nil
}

// TrainingView returns the current state of a live training session.
func (s *StudyServiceImpl) TrainingView(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.TrainerView, error) {
	trainer, err := s.manager.Trainer(userID, sessionID)
	if err != nil {
		return study.TrainerView{}, err
	}
	return trainer.View(), nil
}

// RevealTraining flips the current card to its answer side.
func (s *StudyServiceImpl) RevealTraining(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.TrainerView, error) {
	trainer, err := s.manager.Trainer(userID, sessionID)
	if err != nil {
		return study.TrainerView{}, err
	}

	if err := trainer.Reveal(); err != nil {
		return study.TrainerView{}, err
	}
	return trainer.View(), nil
}

// MarkTraining records the review decision for the current card and advances.
func (s *StudyServiceImpl) MarkTraining(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	needsReview bool,
) (study.TrainerView, error) {
	trainer, err := s.manager.Trainer(userID, sessionID)
	if err != nil {
		return study.TrainerView{}, err
	}

	if err := trainer.MarkAndAdvance(needsReview); err != nil {
		return study.TrainerView{}, err
	}
	return trainer.View(), nil
}

// RestartTraining reshuffles the deck and starts over.
func (s *StudyServiceImpl) RestartTraining(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.TrainerView, error) {
	trainer, err := s.manager.Trainer(userID, sessionID)
	if err != nil {
		return study.TrainerView{}, err
	}

	trainer.Restart()
	return trainer.View(), nil
}

// CloseTraining discards a training session.
func (s *StudyServiceImpl) CloseTraining(ctx context.Context, userID, sessionID uuid.UUID) error {
	return s.manager.CloseTrainer(userID, sessionID)
}

// StartQuiz verifies ownership of every selected deck, fetches their cards
// concurrently, and starts a timed quiz over the pooled set.
func (s *StudyServiceImpl) StartQuiz(
	ctx context.Context,
	userID uuid.UUID,
	deckIDs []uuid.UUID,
) (uuid.UUID, study.QuizView, error) {
	if len(deckIDs) == 0 {
		return uuid.Nil, study.QuizView{}, ErrNoDecksSelected
	}

	// Drop duplicate selections so a deck contributes its cards only once.
	seen := make(map[uuid.UUID]struct{}, len(deckIDs))
	unique := deckIDs[:0:0]
	for _, deckID := range deckIDs {
		if _, ok := seen[deckID]; ok {
			continue
		}
		seen[deckID] = struct{}{}
		unique = append(unique, deckID)
	}

	for _, deckID := range unique {
		if err := s.requireDeckOwner(ctx, userID, deckID); err != nil {
			return uuid.Nil, study.QuizView{}, err
		}
	}

	cardsByDeck := make(map[uuid.UUID][]domain.Card, len(unique))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, deckID := range unique {
		deckID := deckID
		g.Go(func() error {
			cards, err := s.fetchDeckCards(gctx, deckID)
			if err != nil {
				return fmt.Errorf("failed to load cards for deck %s: %w", deckID, err)
			}

			mu.Lock()
			cardsByDeck[deckID] = cards
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load cards for quiz", "error", err)
		return uuid.Nil, study.QuizView{}, err
	}

	sessionID, err := s.manager.StartQuiz(userID, cardsByDeck)
	if err != nil {
		return uuid.Nil, study.QuizView{}, err
	}

	quiz, err := s.manager.Quiz(userID, sessionID)
	if err != nil {
		return uuid.Nil, study.QuizView{}, err
	}

	view := quiz.View()
	s.logger.Info("quiz session started",
		"session_id", sessionID,
		"deck_count", len(unique),
		"card_count", view.Total)
	return sessionID, view, nil
}

// QuizView returns the current state of a live quiz session.
func (s *StudyServiceImpl) QuizView(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.QuizView, error) {
	quiz, err := s.manager.Quiz(userID, sessionID)
	if err != nil {
		return study.QuizView{}, err
	}
	return quiz.View(), nil
}

// RevealQuiz shows the current answer ahead of the countdown.
func (s *StudyServiceImpl) RevealQuiz(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.QuizView, error) {
	quiz, err := s.manager.Quiz(userID, sessionID)
	if err != nil {
		return study.QuizView{}, err
	}

	if err := quiz.Reveal(); err != nil {
		return study.QuizView{}, err
	}
	return quiz.View(), nil
}

// AnswerQuiz self-scores the current question and advances. On the last card
// the quiz finishes and the per-deck score distribution is written to the
// session log. The finished result is still returned when that write fails;
// losing one history entry must not invalidate the quiz the user just
// completed.
func (s *StudyServiceImpl) AnswerQuiz(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	correct bool,
) (study.QuizView, error) {
	quiz, err := s.manager.Quiz(userID, sessionID)
	if err != nil {
		return study.QuizView{}, err
	}

	if err := quiz.Answer(correct); err != nil {
		return study.QuizView{}, err
	}

	if results, done := quiz.Results(); done {
		if err := s.persistResults(ctx, userID, results); err != nil {
			s.logger.Error("failed to record quiz results",
				"error", err,
				"session_id", sessionID,
				"user_id", userID)
		}
	}

	return quiz.View(), nil
}

// persistResults writes one session record per contributing deck. A
// single-deck quiz is a plain insert; multi-deck results land in one
// transaction so either every deck's record exists or none.
func (s *StudyServiceImpl) persistResults(
	ctx context.Context,
	userID uuid.UUID,
	results []study.DeckResult,
) error {
	sessions := make([]*domain.StudySession, 0, len(results))
	for _, result := range results {
		session, err := domain.NewStudySession(userID, result.DeckID, result.Correct, result.Total)
		if err != nil {
			return fmt.Errorf("invalid session record for deck %s: %w", result.DeckID, err)
		}
		sessions = append(sessions, session)
	}

	if len(sessions) == 1 {
		return s.sessionStore.Create(ctx, sessions[0])
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.sessionStore.WithTx(tx).CreateBatch(ctx, sessions)
	})
}

// CloseQuiz discards a quiz session without persisting anything.
func (s *StudyServiceImpl) CloseQuiz(ctx context.Context, userID, sessionID uuid.UUID) error {
	return s.manager.CloseQuiz(userID, sessionID)
}

// Stats aggregates the user's session history into per-deck statistics.
func (s *StudyServiceImpl) Stats(ctx context.Context, userID uuid.UUID) ([]stats.DeckStats, error) {
	records, err := s.sessionStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load session history", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}

	aggregated := stats.Aggregate(records)
	stats.SortByLastSession(aggregated)
	return aggregated, nil
}
