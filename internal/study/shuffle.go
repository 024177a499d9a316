package study

import (
	"math/rand"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// newRand returns a time-seeded random source for callers that don't
// inject one of their own.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// shuffleCards returns a uniformly shuffled copy of cards using the
// Fisher-Yates algorithm. The input slice is never modified. The random
// source is injectable so tests can fix the permutation.
func shuffleCards(cards []domain.Card, rng *rand.Rand) []domain.Card {
	out := make([]domain.Card, len(cards))
	copy(out, cards)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
