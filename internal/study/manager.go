package study

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// DefaultSessionTTL is how long an idle study session is kept before it is
// discarded.
const DefaultSessionTTL = 30 * time.Minute

// Manager is an in-memory registry of live study sessions. Each session is
// owned by the user that started it; lookups by any other user behave as if
// the session does not exist. Idle sessions are pruned lazily whenever a new
// one is started.
type Manager struct {
	mu          sync.Mutex
	ttl         time.Duration
	revealDelay time.Duration
	rng         *rand.Rand
	now         func() time.Time

	trainers map[uuid.UUID]*trainerEntry
	quizzes  map[uuid.UUID]*quizEntry
}

type trainerEntry struct {
	owner    uuid.UUID
	trainer  *Trainer
	lastSeen time.Time
}

type quizEntry struct {
	owner    uuid.UUID
	quiz     *Quiz
	lastSeen time.Time
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithSessionTTL overrides the idle-session lifetime.
func WithSessionTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithRevealDelay overrides the quiz countdown duration.
func WithRevealDelay(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.revealDelay = d
		}
	}
}

// WithRand injects the root random source. Sessions never share it: each one
// shuffles with its own source seeded from the root, so a fixed root seed
// still gives reproducible permutations.
func WithRand(rng *rand.Rand) ManagerOption {
	return func(m *Manager) {
		m.rng = rng
	}
}

// withClock injects the time source, for expiry tests.
func withClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates an empty session registry.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		ttl:         DefaultSessionTTL,
		revealDelay: DefaultRevealDelay,
		now:         time.Now,
		trainers:    make(map[uuid.UUID]*trainerEntry),
		quizzes:     make(map[uuid.UUID]*quizEntry),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.rng == nil {
		m.rng = newRand()
	}

	return m
}

// StartTrainer creates a new training session over the given cards and
// returns its ID.
func (m *Manager) StartTrainer(owner uuid.UUID, cards []domain.Card) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()

	id := uuid.New()
	m.trainers[id] = &trainerEntry{
		owner:    owner,
		trainer:  NewTrainer(cards, m.sessionRandLocked()),
		lastSeen: m.now(),
	}
	return id
}

// sessionRandLocked derives a random source for one session. rand.Rand is
// not safe for concurrent use and sessions reshuffle under their own locks,
// so the shared root source is only ever touched here, under m.mu.
// Callers must hold m.mu.
func (m *Manager) sessionRandLocked() *rand.Rand {
	return rand.New(rand.NewSource(m.rng.Int63()))
}

// Trainer looks up a live training session owned by the given user.
// Returns ErrSessionNotFound for unknown IDs and sessions owned by others.
func (m *Manager) Trainer(owner, id uuid.UUID) (*Trainer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.trainers[id]
	if !ok || entry.owner != owner {
		return nil, ErrSessionNotFound
	}

	entry.lastSeen = m.now()
	return entry.trainer, nil
}

// CloseTrainer discards a training session and its transient state.
func (m *Manager) CloseTrainer(owner, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.trainers[id]
	if !ok || entry.owner != owner {
		return ErrSessionNotFound
	}

	delete(m.trainers, id)
	return nil
}

// StartQuiz creates a new quiz session over the pooled decks and returns its
// ID. Returns ErrNoCards if the pooled set is empty.
func (m *Manager) StartQuiz(owner uuid.UUID, cardsByDeck map[uuid.UUID][]domain.Card) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()

	quiz, err := NewQuiz(cardsByDeck, m.revealDelay, m.sessionRandLocked())
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	m.quizzes[id] = &quizEntry{
		owner:    owner,
		quiz:     quiz,
		lastSeen: m.now(),
	}
	return id, nil
}

// Quiz looks up a live quiz session owned by the given user.
// Returns ErrSessionNotFound for unknown IDs and sessions owned by others.
func (m *Manager) Quiz(owner, id uuid.UUID) (*Quiz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.quizzes[id]
	if !ok || entry.owner != owner {
		return nil, ErrSessionNotFound
	}

	entry.lastSeen = m.now()
	return entry.quiz, nil
}

// CloseQuiz discards a quiz session, cancelling its pending reveal timer.
func (m *Manager) CloseQuiz(owner, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.quizzes[id]
	if !ok || entry.owner != owner {
		return ErrSessionNotFound
	}

	entry.quiz.Close()
	delete(m.quizzes, id)
	return nil
}

// pruneLocked drops sessions idle for longer than the TTL.
// Callers must hold m.mu.
func (m *Manager) pruneLocked() {
	cutoff := m.now().Add(-m.ttl)

	for id, entry := range m.trainers {
		if entry.lastSeen.Before(cutoff) {
			delete(m.trainers, id)
		}
	}
	for id, entry := range m.quizzes {
		if entry.lastSeen.Before(cutoff) {
			entry.quiz.Close()
			delete(m.quizzes, id)
		}
	}
}
