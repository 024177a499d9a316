// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts external clients to the internal
// services, translating HTTP concerns to study, deck, and account operations.
package api
