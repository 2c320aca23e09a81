package storage

import "github.com/hawaco/booking-backend/internal/models"

// SessionStore defines the interface for session storage operations
type SessionStore interface {
	// GetOrCreate returns the session for id, creating it on first use.
	// The returned pointer is the live record shared by all callers.
	GetOrCreate(id string) *models.Session

	// Get returns the session for id without creating one.
	Get(id string) (*models.Session, bool)

	// Acquire blocks until the caller holds the turn lock for id and
	// returns the release function. Turns for one session must run one
	// at a time; turns for different sessions run in parallel.
	Acquire(id string) (release func())

	// Count returns the number of sessions currently held (for monitoring)
	Count() int

	// Close stops background cleanup
	Close()
}
