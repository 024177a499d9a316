package study

import (
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// Trainer walks a user through one shuffled pass over a single deck's cards.
// Each card is shown question-first; after the answer is revealed the user
// marks it as known or needing review. The review set tracks card IDs the
// user flagged during the current pass; marking a card known removes it
// again, so membership toggles rather than accumulates.
//
// A Trainer is safe for concurrent use, though a session is normally driven
// by a single client at a time.
type Trainer struct {
	mu       sync.Mutex
	rng      *rand.Rand
	cards    []domain.Card
	pos      int
	revealed bool
	finished bool
	review   map[uuid.UUID]struct{}
}

// TrainerView is the read-only view-model of a trainer's current state.
// Card is nil once the pass is finished or when the deck was empty.
type TrainerView struct {
	Card        *domain.Card
	Position    int
	Total       int
	Revealed    bool
	Finished    bool
	ReviewCount int
}

// NewTrainer starts a training pass over a copy of cards, shuffled with an
// unbiased Fisher-Yates permutation. A nil rng falls back to a time-seeded
// source. An empty deck yields an immediately finished session.
func NewTrainer(cards []domain.Card, rng *rand.Rand) *Trainer {
	if rng == nil {
		rng = newRand()
	}

	t := &Trainer{rng: rng}
	t.start(cards)
	return t
}

// start resets all transient state and shuffles a fresh working set.
func (t *Trainer) start(cards []domain.Card) {
	t.cards = shuffleCards(cards, t.rng)
	t.pos = 0
	t.revealed = false
	t.finished = len(t.cards) == 0
	t.review = make(map[uuid.UUID]struct{})
}

// Reveal flips the current card to show its answer.
// Returns ErrSessionFinished after the pass is complete and
// ErrAlreadyRevealed if called twice without advancing.
func (t *Trainer) Reveal() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return ErrSessionFinished
	}
	if t.revealed {
		return ErrAlreadyRevealed
	}

	t.revealed = true
	return nil
}

// MarkAndAdvance records the user's verdict on the current card and moves to
// the next one. Marking needsReview adds the card's ID to the review set;
// marking it known removes it. Both directions are idempotent. On the last
// card the session finishes instead of advancing.
// Valid only after Reveal; returns ErrNotRevealed otherwise.
func (t *Trainer) MarkAndAdvance(needsReview bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.finished {
		return ErrSessionFinished
	}
	if !t.revealed {
		return ErrNotRevealed
	}

	cardID := t.cards[t.pos].ID
	if needsReview {
		t.review[cardID] = struct{}{}
	} else {
		delete(t.review, cardID)
	}

	if t.pos == len(t.cards)-1 {
		t.finished = true
		return nil
	}

	t.pos++
	t.revealed = false
	return nil
}

// Restart re-shuffles the same working set and resets position, reveal state
// and the review set, exactly as a fresh start.
func (t *Trainer) Restart() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.start(t.cards)
}

// View returns a snapshot of the trainer's current state.
func (t *Trainer) View() TrainerView {
	t.mu.Lock()
	defer t.mu.Unlock()

	view := TrainerView{
		Position:    t.pos,
		Total:       len(t.cards),
		Revealed:    t.revealed,
		Finished:    t.finished,
		ReviewCount: len(t.review),
	}

	if !t.finished && t.pos < len(t.cards) {
		card := t.cards[t.pos]
		view.Card = &card
	}

	return view
}

// ReviewIDs returns the IDs currently flagged as needing review, in no
// particular order.
func (t *Trainer) ReviewIDs() []uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(t.review))
	for id := range t.review {
		ids = append(ids, id)
	}
	return ids
}
