package main

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/config"
	"github.com/flashdeck/flashdeck-api/internal/platform/postgres"
	"github.com/flashdeck/flashdeck-api/internal/service"
	"github.com/flashdeck/flashdeck-api/internal/service/auth"
	"github.com/flashdeck/flashdeck-api/internal/study"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService   auth.JWTService
	userService  service.UserService
	deckService  service.DeckService
	cardService  service.CardService
	studyService service.StudyService
}

// newApplication wires the stores, services, and the in-memory study-session
// manager from the loaded configuration.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) *application {
	userStore := postgres.NewPostgresUserStore(db, logger)
	deckStore := postgres.NewPostgresDeckStore(db, logger)
	cardStore := postgres.NewPostgresCardStore(db, logger)
	sessionStore := postgres.NewPostgresSessionStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		// The secret length is validated at config load; reaching this
		// means the config and the token service disagree.
		panic(err)
	}

	manager := study.NewManager(
		study.WithRevealDelay(time.Duration(cfg.Study.QuizRevealDelayMs)*time.Millisecond),
		study.WithSessionTTL(time.Duration(cfg.Study.SessionTTLMinutes)*time.Minute),
	)

	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		jwtService: jwtService,
		userService: service.NewUserService(
			userStore,
			jwtService,
			auth.NewBcryptHasher(cfg.Auth.BcryptCost),
			auth.NewBcryptVerifier(),
			logger,
		),
		deckService:  service.NewDeckService(deckStore, logger),
		cardService:  service.NewCardService(deckStore, cardStore, logger),
		studyService: service.NewStudyService(deckStore, cardStore, sessionStore, manager, db, logger),
	}
}
