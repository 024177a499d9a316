package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// SessionStore defines the interface for study-session record persistence.
// Sessions form an append-only log: there are no update or delete operations.
type SessionStore interface {
	// Create appends a single session record, as produced by a quiz over
	// one deck. Returns ErrInvalidEntity if the user or deck does not
	// exist.
	Create(ctx context.Context, session *domain.StudySession) error

	// CreateBatch appends several session records, as produced by a
	// multi-deck quiz. Run it inside a transaction via WithTx and
	// store.RunInTransaction so either all records land or none.
	CreateBatch(ctx context.Context, sessions []*domain.StudySession) error

	// ListByUser retrieves all of a user's session records joined with
	// their deck titles, in no guaranteed order. Records whose deck has
	// been deleted are not returned; the statistics view only reports
	// decks that still exist.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionRecord, error)

	// WithTx returns a SessionStore bound to the given transaction.
	WithTx(tx *sql.Tx) SessionStore
}
