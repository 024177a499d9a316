// Package store defines the persistence interfaces consumed by the service
// and handler layers, together with the sentinel errors implementations map
// their backend failures onto. Concrete implementations live under
// internal/platform.
package store
