package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flashdeck/flashdeck-api/internal/api"
	apiMiddleware "github.com/flashdeck/flashdeck-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService)
	deckHandler := api.NewDeckHandler(app.deckService)
	cardHandler := api.NewCardHandler(app.cardService)
	studyHandler := api.NewStudyHandler(app.studyService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Deck endpoints
			r.Get("/decks", deckHandler.ListDecks)
			r.Post("/decks", deckHandler.CreateDeck)
			r.Put("/decks/{id}", deckHandler.UpdateDeck)
			r.Delete("/decks/{id}", deckHandler.DeleteDeck)

			// Card endpoints
			r.Get("/decks/{id}/cards", cardHandler.ListCards)
			r.Post("/decks/{id}/cards", cardHandler.CreateCard)
			r.Put("/cards/{id}", cardHandler.UpdateCard)
			r.Delete("/cards/{id}", cardHandler.DeleteCard)

			// Flip-training endpoints
			r.Post("/study/train", studyHandler.StartTraining)
			r.Get("/study/train/{id}", studyHandler.GetTraining)
			r.Post("/study/train/{id}/reveal", studyHandler.RevealTraining)
			r.Post("/study/train/{id}/mark", studyHandler.MarkTraining)
			r.Post("/study/train/{id}/restart", studyHandler.RestartTraining)
			r.Delete("/study/train/{id}", studyHandler.CloseTraining)

			// Quiz endpoints
			r.Post("/study/quiz", studyHandler.StartQuiz)
			r.Get("/study/quiz/{id}", studyHandler.GetQuiz)
			r.Post("/study/quiz/{id}/reveal", studyHandler.RevealQuiz)
			r.Post("/study/quiz/{id}/answer", studyHandler.AnswerQuiz)
			r.Delete("/study/quiz/{id}", studyHandler.CloseQuiz)

			// Statistics endpoint
			r.Get("/stats", studyHandler.Stats)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
