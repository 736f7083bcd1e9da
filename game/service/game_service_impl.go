package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/game/session"
	"github.com/tilelabs/slider/puzzle/heuristic"
	"github.com/tilelabs/slider/puzzle/shuffle"
	"github.com/tilelabs/slider/puzzle/solver"
	"github.com/tilelabs/slider/puzzle/state"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	presets  PresetManager

	// shuffler guarded separately; *rand.Rand is not goroutine-safe
	shuffleMu sync.Mutex
	shuffler  *shuffle.Shuffler
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, presets PresetManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		presets:  presets,
		shuffler: shuffle.New(time.Now().UnixNano()),
	}
}

// NewGameServiceWithShuffler creates a game service over a caller-supplied
// shuffler, for deterministic tests.
func NewGameServiceWithShuffler(sessions SessionManager, presets PresetManager, shuffler *shuffle.Shuffler) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		presets:  presets,
		shuffler: shuffler,
	}
}

// CreateSession creates a new puzzle session from a preset
func (s *gameServiceImpl) CreateSession(ctx context.Context, presetName string) (*SessionInfo, error) {
	var preset *config.Preset
	var err error
	presetID := presetName
	if presetName != "" {
		preset, err = s.presets.LoadPreset(presetName)
		if err != nil {
			if errors.Is(err, config.ErrPresetNotFound) {
				if infos, listErr := s.presets.ListPresets(); listErr == nil && len(infos) > 0 {
					var ids []string
					for _, info := range infos {
						ids = append(ids, info.PresetID)
					}
					return nil, fmt.Errorf("preset '%s' not found. Available presets: %v", presetName, ids)
				}
				return nil, fmt.Errorf("preset '%s' not found. Use /api/configs to list available presets", presetName)
			}
			return nil, fmt.Errorf("failed to load preset %s: %w", presetName, err)
		}
	} else {
		preset = s.presets.GetDefault()
		presetID = "default"
	}

	board, err := s.shuffledBoard(preset)
	if err != nil {
		return nil, err
	}

	// Let the session manager generate a 4-character ID
	sess, err := s.sessions.Create("", presetID, preset, board)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// Move applies a click to a session's board. The click is resolved into the
// chain of elementary slides between the clicked cell and the empty cell.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, target state.Position) (*MoveResult, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	slides, solved, err := sess.ApplyClick(target)
	if err != nil {
		return nil, err
	}

	// Auto-save session after the move
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: failed to persist session %s after move: %v", sessionID, err)
	}

	return &MoveResult{
		Slides: slides,
		Solved: solved,
		Board:  s.boardState(sess),
	}, nil
}

// NewGame reshuffles a session's board from the solved configuration
func (s *gameServiceImpl) NewGame(ctx context.Context, sessionID string) (*BoardState, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	board, err := s.shuffledBoard(sess.Preset)
	if err != nil {
		return nil, err
	}
	sess.ResetBoard(board)

	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: failed to persist session %s after new game: %v", sessionID, err)
	}

	return s.boardState(sess), nil
}

// Solve finds an optimal slide sequence for a session's current board. The
// result is cached against the board's state version; a repeat call on an
// unchanged board is served from cache, and a board change during the solve
// cancels it.
func (s *gameServiceImpl) Solve(ctx context.Context, sessionID string) (*SolveResult, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	kind := heuristic.Kind(sess.Preset.Heuristic)
	if sol, ok := sess.CachedSolution(); ok {
		return solveResult(sol, kind, sess.Version(), true), nil
	}

	solveCtx, cancel, board, version := sess.BeginSolve(ctx)
	defer cancel()

	if !board.Solvable() {
		return nil, fmt.Errorf("%w: board parity check failed", solver.ErrUnsolvable)
	}

	slv, err := solver.New(solver.Options{
		Heuristic:     kind,
		MaxIterations: sess.Preset.MaxIterations,
	})
	if err != nil {
		return nil, err
	}

	sol, err := slv.Solve(solveCtx, board)
	if err != nil {
		return nil, err
	}

	sess.CompleteSolve(version, sol)
	return solveResult(sol, kind, version, false), nil
}

// Hint returns the next optimal slide for a session's board
func (s *gameServiceImpl) Hint(ctx context.Context, sessionID string) (*HintResult, error) {
	result, err := s.Solve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if result.Length == 0 {
		return &HintResult{Solved: true}, nil
	}

	move := result.Moves[0]
	return &HintResult{
		Move:      &move,
		Remaining: result.Length,
	}, nil
}

// Metrics evaluates every heuristic on a session's current board
func (s *gameServiceImpl) Metrics(ctx context.Context, sessionID string) (*MetricsResult, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	board, moves, version := sess.Snapshot()
	scores := make([]HeuristicScore, 0, len(heuristic.Kinds()))
	for _, kind := range heuristic.Kinds() {
		est, err := heuristic.New(kind)
		if err != nil {
			return nil, err
		}
		began := time.Now()
		value := est.Estimate(board)
		scores = append(scores, HeuristicScore{
			Kind:       string(kind),
			Value:      value,
			DurationUS: float64(time.Since(began).Nanoseconds()) / 1e3,
		})
	}

	return &MetricsResult{
		SessionID: sess.ID,
		GridSize:  board.Size(),
		Moves:     moves,
		Version:   version,
		Solved:    board.IsSolved(),
		Scores:    scores,
	}, nil
}

// GetBoardState retrieves the current board state
func (s *gameServiceImpl) GetBoardState(ctx context.Context, sessionID string) (*BoardState, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return s.boardState(sess), nil
}

// ListPresets returns available puzzle presets
func (s *gameServiceImpl) ListPresets(ctx context.Context) ([]*config.PresetInfo, error) {
	return s.presets.ListPresets()
}

// LoadPreset loads a specific puzzle preset
func (s *gameServiceImpl) LoadPreset(ctx context.Context, presetName string) (*config.Preset, error) {
	return s.presets.LoadPreset(presetName)
}

// shuffledBoard builds a fresh board for preset and scrambles it
func (s *gameServiceImpl) shuffledBoard(preset *config.Preset) (*state.State, error) {
	board, err := state.New(preset.GridSize)
	if err != nil {
		return nil, err
	}

	difficulty, err := shuffle.Parse(preset.Difficulty)
	if err != nil {
		return nil, err
	}

	s.shuffleMu.Lock()
	defer s.shuffleMu.Unlock()
	if _, err := s.shuffler.Shuffle(board, difficulty); err != nil {
		return nil, err
	}
	return board, nil
}

// boardState snapshots a session into its wire representation
func (s *gameServiceImpl) boardState(sess *session.Session) *BoardState {
	board, moves, version := sess.Snapshot()

	size := board.Size()
	cells := board.Cells()
	grid := make([][]int, size)
	for row := 0; row < size; row++ {
		grid[row] = cells[row*size : (row+1)*size]
	}

	return &BoardState{
		SessionID: sess.ID,
		GridSize:  size,
		Grid:      grid,
		EmptyPos:  board.EmptyPos(),
		Moves:     moves,
		Version:   version,
		Solved:    board.IsSolved(),
	}
}

// solveResult converts a solver solution into its wire representation
func solveResult(sol *solver.Solution, kind heuristic.Kind, version int, cached bool) *SolveResult {
	return &SolveResult{
		Moves:          sol.Moves,
		Length:         sol.Length,
		Heuristic:      string(kind),
		NodesExpanded:  sol.Stats.NodesExpanded,
		NodesGenerated: sol.Stats.NodesGenerated,
		DurationMS:     float64(sol.Stats.Duration.Nanoseconds()) / 1e6,
		Cached:         cached,
		Version:        version,
	}
}

// sessionInfo snapshots a session's metadata and board
func (s *gameServiceImpl) sessionInfo(sess *session.Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		PresetID:       sess.PresetID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessed(),
		Board:          s.boardState(sess),
		Preset:         sess.Preset,
	}
}
