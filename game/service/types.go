package service

import (
	"time"

	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/puzzle/state"
)

// BoardState is the wire representation of a session's board
type BoardState struct {
	SessionID string         `json:"session_id"`
	GridSize  int            `json:"grid_size"`
	Grid      [][]int        `json:"grid"`
	EmptyPos  state.Position `json:"empty_pos"`
	Moves     int            `json:"moves"`
	Version   int            `json:"version"`
	Solved    bool           `json:"solved"`
}

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string         `json:"id"`
	PresetID       string         `json:"preset_id"`
	CreatedAt      time.Time      `json:"created_at"`
	LastAccessedAt time.Time      `json:"last_accessed_at"`
	Board          *BoardState    `json:"board"`
	Preset         *config.Preset `json:"preset"`
}

// MoveResult contains the result of a click move
type MoveResult struct {
	Slides []state.Position `json:"slides"`
	Solved bool             `json:"solved"`
	Board  *BoardState      `json:"board"`
}

// SolveResult carries an optimal solution and its search statistics
type SolveResult struct {
	Moves          []state.Position `json:"moves"`
	Length         int              `json:"length"`
	Heuristic      string           `json:"heuristic"`
	NodesExpanded  int              `json:"nodes_expanded"`
	NodesGenerated int              `json:"nodes_generated"`
	DurationMS     float64          `json:"duration_ms"`
	Cached         bool             `json:"cached"`
	Version        int              `json:"version"`
}

// HintResult is the next optimal slide for the current board
type HintResult struct {
	Move      *state.Position `json:"move,omitempty"`
	Remaining int             `json:"remaining"`
	Solved    bool            `json:"solved"`
}

// HeuristicScore is one estimator's value for the current board
type HeuristicScore struct {
	Kind       string  `json:"kind"`
	Value      int     `json:"value"`
	DurationUS float64 `json:"duration_us"`
}

// MetricsResult reports all heuristic estimates for a session's board
type MetricsResult struct {
	SessionID string           `json:"session_id"`
	GridSize  int              `json:"grid_size"`
	Moves     int              `json:"moves"`
	Version   int              `json:"version"`
	Solved    bool             `json:"solved"`
	Scores    []HeuristicScore `json:"scores"`
}
