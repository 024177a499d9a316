// Package stats folds a user's historical study-session records into
// per-deck summaries for the statistics view.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// DeckStats summarizes all of a user's sessions over one deck.
type DeckStats struct {
	DeckID          uuid.UUID `json:"deck_id"`
	DeckTitle       string    `json:"deck_title"`
	TotalSessions   int       `json:"total_sessions"`
	TotalCorrect    int       `json:"total_correct"`
	TotalQuestions  int       `json:"total_questions"`
	SuccessRate     int       `json:"success_rate"` // 0 to 100, rounded to the nearest integer
	LastSessionDate time.Time `json:"last_session_date"`
}

// Aggregate reduces a flat, unordered list of session records into one
// DeckStats per distinct deck in a single pass. The deck title is the first
// non-empty title seen for that deck; the success rate is
// totalCorrect/totalQuestions expressed as a rounded percentage, 0 when no
// questions were answered; the last session date is the maximum creation
// timestamp. Output order is unspecified; callers sort explicitly.
func Aggregate(records []domain.SessionRecord) []DeckStats {
	byDeck := make(map[uuid.UUID]*DeckStats)

	for _, rec := range records {
		agg, ok := byDeck[rec.DeckID]
		if !ok {
			agg = &DeckStats{DeckID: rec.DeckID}
			byDeck[rec.DeckID] = agg
		}

		if agg.DeckTitle == "" && rec.DeckTitle != "" {
			agg.DeckTitle = rec.DeckTitle
		}

		agg.TotalSessions++
		agg.TotalCorrect += rec.CorrectCount
		agg.TotalQuestions += rec.TotalCount

		if rec.CreatedAt.After(agg.LastSessionDate) {
			agg.LastSessionDate = rec.CreatedAt
		}
	}

	out := make([]DeckStats, 0, len(byDeck))
	for _, agg := range byDeck {
		if agg.TotalQuestions > 0 {
			agg.SuccessRate = int(math.Round(float64(agg.TotalCorrect) / float64(agg.TotalQuestions) * 100))
		}
		out = append(out, *agg)
	}

	return out
}

// SortByLastSession orders deck summaries most-recently-studied first,
// breaking ties by deck ID for a stable display order.
func SortByLastSession(summaries []DeckStats) {
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].LastSessionDate.Equal(summaries[j].LastSessionDate) {
			return summaries[i].LastSessionDate.After(summaries[j].LastSessionDate)
		}
		return summaries[i].DeckID.String() < summaries[j].DeckID.String()
	})
}
