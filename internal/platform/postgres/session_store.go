package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/platform/logger"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface. If logger is nil, a default logger is used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// WithTx implements store.SessionStore.WithTx
// The returned store shares the receiver's logger but executes every
// statement on the given transaction.
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.SessionStore.Create
// Returns store.ErrInvalidEntity if the user or deck does not exist.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	if err := s.insert(ctx, session); err != nil {
		log.Error("failed to create study session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	log.Info("study session recorded",
		slog.String("session_id", session.ID.String()),
		slog.String("deck_id", session.DeckID.String()),
		slog.Int("correct_count", session.CorrectCount),
		slog.Int("total_count", session.TotalCount))
	return nil
}

// CreateBatch implements store.SessionStore.CreateBatch
// Records are inserted one statement at a time; callers wanting all-or-nothing
// semantics run the batch through WithTx inside store.RunInTransaction.
func (s *PostgresSessionStore) CreateBatch(ctx context.Context, sessions []*domain.StudySession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, session := range sessions {
		if err := session.Validate(); err != nil {
			log.Warn("session validation failed during batch create",
				slog.String("error", err.Error()),
				slog.String("session_id", session.ID.String()))
			return err
		}
	}

	for _, session := range sessions {
		if err := s.insert(ctx, session); err != nil {
			log.Error("failed to create study session in batch",
				slog.String("error", err.Error()),
				slog.String("session_id", session.ID.String()))
			return err
		}
	}

	log.Info("study session batch recorded",
		slog.Int("session_count", len(sessions)))
	return nil
}

// insert writes a single session row, mapping foreign key violations
// to store.ErrInvalidEntity.
func (s *PostgresSessionStore) insert(ctx context.Context, session *domain.StudySession) error {
	query := `
		INSERT INTO study_sessions (id, user_id, deck_id, correct_count, total_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.DeckID,
		session.CorrectCount,
		session.TotalCount,
		session.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s or deck %s not found",
				store.ErrInvalidEntity, session.UserID, session.DeckID)
		}
		return err
	}

	return nil
}

// ListByUser implements store.SessionStore.ListByUser
// The inner join drops sessions whose deck has been deleted, which is what
// the statistics view wants: it only reports decks that still exist.
func (s *PostgresSessionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SessionRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT s.id, s.user_id, s.deck_id, s.correct_count, s.total_count, s.created_at, d.title
		FROM study_sessions s
		JOIN decks d ON d.id = s.deck_id
		WHERE s.user_id = $1
		ORDER BY s.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query study sessions by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var records []domain.SessionRecord
	for rows.Next() {
		var record domain.SessionRecord
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.DeckID,
			&record.CorrectCount,
			&record.TotalCount,
			&record.CreatedAt,
			&record.DeckTitle,
		)
		if err != nil {
			log.Error("failed to scan session row",
				slog.String("error", err.Error()))
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no sessions found
	if records == nil {
		records = []domain.SessionRecord{}
	}

	return records, nil
}
