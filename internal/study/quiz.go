package study

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// DefaultRevealDelay is how long a quiz question is shown before its answer
// is revealed automatically.
const DefaultRevealDelay = 3 * time.Second

// Quiz runs a timed pass over the pooled cards of one or more decks. Each
// question's answer is revealed automatically after the reveal delay, or
// earlier on demand; the user then self-scores the answer as correct or not.
// On completion the aggregate score is distributed proportionally back to the
// contributing decks.
//
// Quiz is safe for concurrent use; the reveal timer fires on its own
// goroutine and every timer callback is tied to a generation counter so a
// stale timer can never reveal a later card.
type Quiz struct {
	mu          sync.Mutex
	revealDelay time.Duration

	cards      []domain.Card
	deckTotals map[uuid.UUID]int

	pos      int
	correct  int
	revealed bool
	finished bool

	// generation increments whenever the current question changes or the
	// quiz ends. A pending timer callback only acts if its captured
	// generation still matches.
	generation uint64
	timer      *time.Timer

	results []DeckResult
}

// DeckResult is one deck's share of a finished quiz.
type DeckResult struct {
	DeckID  uuid.UUID
	Correct int
	Total   int
}

// QuizView is the read-only view-model of a quiz's current state.
// Card is nil once the quiz is finished.
type QuizView struct {
	Card         *domain.Card
	Position     int
	Total        int
	Revealed     bool
	Finished     bool
	CorrectCount int
	ScorePercent int
}

// NewQuiz pools the cards of all selected decks into one shuffled sequence
// and presents the first question, starting its reveal countdown. A
// non-positive revealDelay falls back to DefaultRevealDelay and a nil rng to
// a time-seeded source. Returns ErrNoCards if the pooled set is empty.
func NewQuiz(
	cardsByDeck map[uuid.UUID][]domain.Card,
	revealDelay time.Duration,
	rng *rand.Rand,
) (*Quiz, error) {
	if rng == nil {
		rng = newRand()
	}
	if revealDelay <= 0 {
		revealDelay = DefaultRevealDelay
	}

	var pooled []domain.Card
	deckTotals := make(map[uuid.UUID]int, len(cardsByDeck))
	for deckID, cards := range cardsByDeck {
		if len(cards) == 0 {
			continue
		}
		deckTotals[deckID] = len(cards)
		pooled = append(pooled, cards...)
	}

	if len(pooled) == 0 {
		return nil, ErrNoCards
	}

	q := &Quiz{
		revealDelay: revealDelay,
		cards:       shuffleCards(pooled, rng),
		deckTotals:  deckTotals,
	}

	q.mu.Lock()
	q.scheduleReveal()
	q.mu.Unlock()

	return q, nil
}

// scheduleReveal arms the countdown for the current question.
// Callers must hold q.mu.
func (q *Quiz) scheduleReveal() {
	gen := q.generation
	q.timer = time.AfterFunc(q.revealDelay, func() {
		q.mu.Lock()
		defer q.mu.Unlock()

		// The question changed, or was revealed manually, before the
		// timer fired. Acting now would reveal the wrong card.
		if q.generation != gen || q.revealed || q.finished {
			return
		}
		q.revealed = true
	})
}

// stopTimer cancels any pending reveal countdown. Callers must hold q.mu.
// The generation check in the callback makes this best-effort stop safe even
// when the timer has already fired.
func (q *Quiz) stopTimer() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

// Reveal shows the current answer ahead of the countdown.
// Returns ErrAlreadyRevealed if the answer is already visible.
func (q *Quiz) Reveal() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.finished {
		return ErrSessionFinished
	}
	if q.revealed {
		return ErrAlreadyRevealed
	}

	q.stopTimer()
	q.revealed = true
	return nil
}

// Answer scores the current question and advances. Valid only after the
// answer was revealed; returns ErrNotRevealed otherwise. At the last card the
// quiz finishes and the score distribution becomes available via Results.
func (q *Quiz) Answer(correct bool) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.finished {
		return ErrSessionFinished
	}
	if !q.revealed {
		return ErrNotRevealed
	}

	if correct {
		q.correct++
	}

	if q.pos == len(q.cards)-1 {
		q.finished = true
		q.generation++
		q.stopTimer()
		q.results = q.distribute()
		return nil
	}

	q.pos++
	q.revealed = false
	q.generation++
	q.stopTimer()
	q.scheduleReveal()
	return nil
}

// distribute splits the aggregate correct count proportionally across the
// contributing decks: deckCorrect = round(correct × deckTotal / pooledTotal),
// rounding half away from zero (math.Round). Because each deck's share is
// rounded independently, the per-deck sums may diverge from the aggregate
// correct count by ±1 per additional deck; this is an accepted approximation,
// matching how the overall score is reported. Callers must hold q.mu.
func (q *Quiz) distribute() []DeckResult {
	pooledTotal := len(q.cards)
	results := make([]DeckResult, 0, len(q.deckTotals))

	for deckID, deckTotal := range q.deckTotals {
		deckCorrect := int(math.Round(float64(q.correct) * float64(deckTotal) / float64(pooledTotal)))
		if deckCorrect > deckTotal {
			deckCorrect = deckTotal
		}
		results = append(results, DeckResult{
			DeckID:  deckID,
			Correct: deckCorrect,
			Total:   deckTotal,
		})
	}

	return results
}

// Results returns the per-deck score distribution of a finished quiz.
// The second return value is false while the quiz is still running.
func (q *Quiz) Results() ([]DeckResult, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.finished {
		return nil, false
	}

	out := make([]DeckResult, len(q.results))
	copy(out, q.results)
	return out, true
}

// View returns a snapshot of the quiz's current state.
func (q *Quiz) View() QuizView {
	q.mu.Lock()
	defer q.mu.Unlock()

	view := QuizView{
		Position:     q.pos,
		Total:        len(q.cards),
		Revealed:     q.revealed,
		Finished:     q.finished,
		CorrectCount: q.correct,
	}

	if q.finished {
		view.ScorePercent = int(math.Round(float64(q.correct) / float64(len(q.cards)) * 100))
	} else {
		card := q.cards[q.pos]
		view.Card = &card
	}

	return view
}

// Close cancels any pending reveal timer and invalidates the session.
// Navigating away from a quiz discards all transient state; partial progress
// is never persisted.
func (q *Quiz) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.generation++
	q.stopTimer()
	q.finished = true
}
