package session

import (
	"time"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData represents the JSON structure for persisted sessions.
// Only the board and its counters survive a restart; cached solutions and
// in-flight solves do not.
type PersistedSessionData struct {
	ID             string    `json:"id"`
	PresetID       string    `json:"preset_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	GridSize       int       `json:"grid_size"`
	Cells          []int     `json:"cells"`
	Moves          int       `json:"moves"`
	Version        int       `json:"version"`
}
