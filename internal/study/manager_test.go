package study

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestManagerTrainerOwnership(t *testing.T) {
	t.Parallel() // Enable parallel execution
	manager := NewManager(WithRand(rand.New(rand.NewSource(1))))

	owner := uuid.New()
	stranger := uuid.New()

	id := manager.StartTrainer(owner, makeCards(t, 3))

	if _, err := manager.Trainer(owner, id); err != nil {
		t.Fatalf("Expected owner lookup to succeed, got %v", err)
	}

	// Another user's lookup behaves as if the session does not exist
	if _, err := manager.Trainer(stranger, id); err != ErrSessionNotFound {
		t.Errorf("Expected error %v, got %v", ErrSessionNotFound, err)
	}
	if err := manager.CloseTrainer(stranger, id); err != ErrSessionNotFound {
		t.Errorf("Expected error %v, got %v", ErrSessionNotFound, err)
	}

	if err := manager.CloseTrainer(owner, id); err != nil {
		t.Fatalf("Expected close to succeed, got %v", err)
	}
	if _, err := manager.Trainer(owner, id); err != ErrSessionNotFound {
		t.Errorf("Expected error %v after close, got %v", ErrSessionNotFound, err)
	}
}

func TestManagerQuizLifecycle(t *testing.T) {
	t.Parallel()
	manager := NewManager(
		WithRand(rand.New(rand.NewSource(2))),
		WithRevealDelay(time.Hour),
	)
	owner := uuid.New()

	// Empty pool is rejected up front
	if _, err := manager.StartQuiz(owner, nil); err != ErrNoCards {
		t.Errorf("Expected error %v, got %v", ErrNoCards, err)
	}

	id, err := manager.StartQuiz(owner, quizPool(t, 2, 2))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	quiz, err := manager.Quiz(owner, id)
	if err != nil {
		t.Fatalf("Expected lookup to succeed, got %v", err)
	}
	if quiz.View().Total != 4 {
		t.Errorf("Expected pooled total 4, got %d", quiz.View().Total)
	}

	if err := manager.CloseQuiz(owner, id); err != nil {
		t.Fatalf("Expected close to succeed, got %v", err)
	}
	if _, err := manager.Quiz(owner, id); err != ErrSessionNotFound {
		t.Errorf("Expected error %v after close, got %v", ErrSessionNotFound, err)
	}
}

func TestManagerPrunesIdleSessions(t *testing.T) {
	t.Parallel()
	current := time.Now()
	manager := NewManager(
		WithRand(rand.New(rand.NewSource(3))),
		WithSessionTTL(10*time.Minute),
		withClock(func() time.Time { return current }),
	)
	owner := uuid.New()

	stale := manager.StartTrainer(owner, makeCards(t, 2))

	// Starting a new session past the TTL prunes the idle one.
	current = current.Add(11 * time.Minute)
	fresh := manager.StartTrainer(owner, makeCards(t, 2))

	if _, err := manager.Trainer(owner, stale); err != ErrSessionNotFound {
		t.Errorf("Expected stale session to be pruned, got %v", err)
	}
	if _, err := manager.Trainer(owner, fresh); err != nil {
		t.Errorf("Expected fresh session to survive, got %v", err)
	}
}

func TestManagerSessionsShuffleIndependently(t *testing.T) {
	t.Parallel()
	manager := NewManager(
		WithRand(rand.New(rand.NewSource(4))),
		WithRevealDelay(time.Hour),
	)
	owner := uuid.New()

	first, err := manager.Trainer(owner, manager.StartTrainer(owner, makeCards(t, 10)))
	if err != nil {
		t.Fatalf("Expected lookup to succeed, got %v", err)
	}
	second, err := manager.Trainer(owner, manager.StartTrainer(owner, makeCards(t, 10)))
	if err != nil {
		t.Fatalf("Expected lookup to succeed, got %v", err)
	}
	if _, err := manager.StartQuiz(owner, quizPool(t, 5, 5)); err != nil {
		t.Fatalf("Expected quiz start to succeed, got %v", err)
	}

	// Restart reshuffles with the session's own source; concurrent restarts
	// across sessions must not trample each other's state.
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			first.Restart()
		}()
		go func() {
			defer wg.Done()
			second.Restart()
		}()
	}
	wg.Wait()

	if got := first.View().Total; got != 10 {
		t.Errorf("Expected 10 cards after restarts, got %d", got)
	}
	if got := second.View().Total; got != 10 {
		t.Errorf("Expected 10 cards after restarts, got %d", got)
	}
}
