package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/service"
	"github.com/flashdeck/flashdeck-api/internal/stats"
	"github.com/flashdeck/flashdeck-api/internal/study"
)

// MockUserService mocks the service.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(
	ctx context.Context,
	email, name, password string,
) (*domain.User, *service.TokenPair, error) {
	args := m.Called(ctx, email, name, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	var tokens *service.TokenPair
	if args.Get(1) != nil {
		tokens = args.Get(1).(*service.TokenPair)
	}
	return user, tokens, args.Error(2)
}

func (m *MockUserService) Login(
	ctx context.Context,
	email, password string,
) (*domain.User, *service.TokenPair, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	var tokens *service.TokenPair
	if args.Get(1) != nil {
		tokens = args.Get(1).(*service.TokenPair)
	}
	return user, tokens, args.Error(2)
}

func (m *MockUserService) Refresh(
	ctx context.Context,
	refreshToken string,
) (*service.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

// MockDeckService mocks the service.DeckService interface
type MockDeckService struct {
	mock.Mock
}

func (m *MockDeckService) ListDecks(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Deck, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Deck), args.Error(1)
}

func (m *MockDeckService) CreateDeck(
	ctx context.Context,
	userID uuid.UUID,
	title string,
) (*domain.Deck, error) {
	args := m.Called(ctx, userID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckService) RenameDeck(
	ctx context.Context,
	userID, deckID uuid.UUID,
	title string,
) (*domain.Deck, error) {
	args := m.Called(ctx, userID, deckID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckService) DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error {
	args := m.Called(ctx, userID, deckID)
	return args.Error(0)
}

// MockCardService mocks the service.CardService interface
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) ListCards(
	ctx context.Context,
	userID, deckID uuid.UUID,
) ([]*domain.Card, error) {
	args := m.Called(ctx, userID, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Card), args.Error(1)
}

func (m *MockCardService) CreateCard(
	ctx context.Context,
	userID, deckID uuid.UUID,
	question, answer string,
) (*domain.Card, error) {
	args := m.Called(ctx, userID, deckID, question, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) UpdateCard(
	ctx context.Context,
	userID, cardID uuid.UUID,
	question, answer string,
) (*domain.Card, error) {
	args := m.Called(ctx, userID, cardID, question, answer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

// MockStudyService mocks the service.StudyService interface
type MockStudyService struct {
	mock.Mock
}

func (m *MockStudyService) StartTraining(
	ctx context.Context,
	userID, deckID uuid.UUID,
) (uuid.UUID, study.TrainerView, error) {
	args := m.Called(ctx, userID, deckID)
	return args.Get(0).(uuid.UUID), args.Get(1).(study.TrainerView), args.Error(2)
}

func (m *MockStudyService) TrainingView(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.TrainerView, error) {
	args := m.Called(ctx, userID, sessionID)
	return args.Get(0).(study.TrainerView), args.Error(1)
}

func (m *MockStudyService) RevealTraining(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.TrainerView, error) {
	args := m.Called(ctx, userID, sessionID)
	return args.Get(0).(study.TrainerView), args.Error(1)
}

func (m *MockStudyService) MarkTraining(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	needsReview bool,
) (study.TrainerView, error) {
	args := m.Called(ctx, userID, sessionID, needsReview)
	return args.Get(0).(study.TrainerView), args.Error(1)
}

func (m *MockStudyService) RestartTraining(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.TrainerView, error) {
	args := m.Called(ctx, userID, sessionID)
	return args.Get(0).(study.TrainerView), args.Error(1)
}

func (m *MockStudyService) CloseTraining(ctx context.Context, userID, sessionID uuid.UUID) error {
	args := m.Called(ctx, userID, sessionID)
	return args.Error(0)
}

func (m *MockStudyService) StartQuiz(
	ctx context.Context,
	userID uuid.UUID,
	deckIDs []uuid.UUID,
) (uuid.UUID, study.QuizView, error) {
	args := m.Called(ctx, userID, deckIDs)
	return args.Get(0).(uuid.UUID), args.Get(1).(study.QuizView), args.Error(2)
}

func (m *MockStudyService) QuizView(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.QuizView, error) {
	args := m.Called(ctx, userID, sessionID)
	return args.Get(0).(study.QuizView), args.Error(1)
}

func (m *MockStudyService) RevealQuiz(
	ctx context.Context,
	userID, sessionID uuid.UUID,
) (study.QuizView, error) {
	args := m.Called(ctx, userID, sessionID)
	return args.Get(0).(study.QuizView), args.Error(1)
}

func (m *MockStudyService) AnswerQuiz(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	correct bool,
) (study.QuizView, error) {
	args := m.Called(ctx, userID, sessionID, correct)
	return args.Get(0).(study.QuizView), args.Error(1)
}

func (m *MockStudyService) CloseQuiz(ctx context.Context, userID, sessionID uuid.UUID) error {
	args := m.Called(ctx, userID, sessionID)
	return args.Error(0)
}

func (m *MockStudyService) Stats(
	ctx context.Context,
	userID uuid.UUID,
) ([]stats.DeckStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.DeckStats), args.Error(1)
}
