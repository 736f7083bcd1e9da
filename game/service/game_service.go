package service

import (
	"context"

	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/game/session"
	"github.com/tilelabs/slider/puzzle/state"
)

// GameService defines all puzzle-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, presetName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Puzzle Operations
	Move(ctx context.Context, sessionID string, target state.Position) (*MoveResult, error)
	NewGame(ctx context.Context, sessionID string) (*BoardState, error)
	Solve(ctx context.Context, sessionID string) (*SolveResult, error)
	Hint(ctx context.Context, sessionID string) (*HintResult, error)
	Metrics(ctx context.Context, sessionID string) (*MetricsResult, error)

	// Board State
	GetBoardState(ctx context.Context, sessionID string) (*BoardState, error)

	// Presets
	ListPresets(ctx context.Context) ([]*config.PresetInfo, error)
	LoadPreset(ctx context.Context, presetName string) (*config.Preset, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, presetID string, preset *config.Preset, board *state.State) (*session.Session, error)
	Get(id string) (*session.Session, error)
	List() []*session.Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// PresetManager handles puzzle preset loading
type PresetManager interface {
	LoadPreset(name string) (*config.Preset, error)
	ListPresets() ([]*config.PresetInfo, error)
	GetDefault() *config.Preset
}
