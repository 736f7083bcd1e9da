package session

import (
	"context"
	"sync"
	"time"

	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/puzzle/solver"
	"github.com/tilelabs/slider/puzzle/state"
)

// Session is one live puzzle: a board, its preset, and solve bookkeeping.
// The state version increases on every board change; cached solutions are
// keyed by the version they were computed for, so a stale solve can never
// be served against a changed board.
type Session struct {
	ID        string
	PresetID  string
	Preset    *config.Preset
	CreatedAt time.Time

	mu            sync.Mutex
	lastAccessed  time.Time
	board         *state.State
	moves         int
	version       int
	cachedVersion int
	cached        *solver.Solution
	cancelSolve   context.CancelFunc
}

// newSession wraps a prepared board in a Session.
func newSession(id, presetID string, preset *config.Preset, board *state.State) *Session {
	now := time.Now()
	return &Session{
		ID:            id,
		PresetID:      presetID,
		Preset:        preset,
		CreatedAt:     now,
		lastAccessed:  now,
		board:         board,
		cachedVersion: -1,
	}
}

// Touch records an access now.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccessed = time.Now()
}

// LastAccessed returns when the session was last touched.
func (s *Session) LastAccessed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccessed
}

// setLastAccessed restores the access time from persisted data.
func (s *Session) setLastAccessed(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccessed = t
}

// Snapshot returns a copy of the board plus the move count and state version
// it was taken at.
func (s *Session) Snapshot() (*state.State, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone(), s.moves, s.version
}

// Version returns the current state version.
func (s *Session) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Moves returns how many elementary slides have been applied.
func (s *Session) Moves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves
}

// ApplyClick resolves a click on target into elementary slides and applies
// them. It bumps the state version and cancels any in-flight solve, whose
// result would describe a board that no longer exists.
func (s *Session) ApplyClick(target state.Position) ([]state.Position, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slides, err := s.board.ResolveChain(target)
	if err != nil {
		return nil, false, err
	}
	for _, pos := range slides {
		if err := s.board.ApplySlide(pos); err != nil {
			return nil, false, err
		}
	}

	s.moves += len(slides)
	s.version++
	s.abandonSolveLocked()
	return slides, s.board.IsSolved(), nil
}

// ResetBoard replaces the board, zeroes the move count, bumps the version,
// and cancels any in-flight solve.
func (s *Session) ResetBoard(board *state.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = board
	s.moves = 0
	s.version++
	s.abandonSolveLocked()
}

// BeginSolve registers a new solve attempt: any previous in-flight solve is
// cancelled, and the returned context is cancelled in turn if the board
// changes before the solve finishes. Callers run the solver on the returned
// board copy and hand the result to CompleteSolve with the returned version.
func (s *Session) BeginSolve(parent context.Context) (context.Context, context.CancelFunc, *state.State, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.abandonSolveLocked()
	ctx, cancel := context.WithCancel(parent)
	s.cancelSolve = cancel
	return ctx, cancel, s.board.Clone(), s.version
}

// CompleteSolve caches sol if the board is still at version. It reports
// whether the result was current.
func (s *Session) CompleteSolve(version int, sol *solver.Solution) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version != s.version {
		return false
	}
	s.cached = sol
	s.cachedVersion = version
	s.cancelSolve = nil
	return true
}

// CachedSolution returns the solution cached for the current board version.
func (s *Session) CachedSolution() (*solver.Solution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil || s.cachedVersion != s.version {
		return nil, false
	}
	return s.cached, true
}

// abandonSolveLocked cancels the in-flight solve, if any. Caller holds s.mu.
func (s *Session) abandonSolveLocked() {
	if s.cancelSolve != nil {
		s.cancelSolve()
		s.cancelSolve = nil
	}
}
