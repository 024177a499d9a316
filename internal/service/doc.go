// Package service contains the application's use-case layer. Services
// coordinate the domain entities, the persistence stores, and the in-memory
// study sessions, enforcing ownership so one user can never read or mutate
// another user's decks, cards, or sessions.
package service
