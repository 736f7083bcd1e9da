// Package session provides puzzle session management.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Optional JSON file persistence
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the session registry handling creation, lookup, deletion, and
// cleanup. Session is one live puzzle: its board, preset, move count, state
// version, per-version cached solution, and the cancel hook for an in-flight
// solve.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference, generated from
// cryptographic randomness. Lookups are case-insensitive.
//
// State Versions:
//
// Every board change (click or reset) bumps the session's state version and
// cancels any solve still running against the old board. Solutions are
// cached keyed by the version they were computed for, so a hint or solve
// response always describes the board the caller sees.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session around a shuffled board
//	sess, err := manager.Create("", "classic", preset, board)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve an existing session
//	sess, err = manager.Get(sessionID)
//
//	// List all active sessions
//	sessions := manager.List()
//
// Cleanup:
//
// Sessions can be explicitly deleted or expired by inactivity via
// CleanupExpiredSessions. With persistence enabled, sessions survive
// restarts; cached solutions and in-flight solves do not.
package session
