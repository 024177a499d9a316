// Package domain contains the core business entities of the application:
// users, decks, flashcards and study-session records. It is independent of
// any specific storage or delivery mechanism.
package domain
