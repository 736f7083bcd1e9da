package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/game/service"
	"github.com/tilelabs/slider/game/session"
	"github.com/tilelabs/slider/puzzle/solver"
	"github.com/tilelabs/slider/puzzle/state"
)

// MockGameService implements service.GameService for testing
type MockGameService struct {
	CreateSessionFunc func(ctx context.Context, presetName string) (*service.SessionInfo, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*service.SessionInfo, error)
	ListSessionsFunc  func(ctx context.Context) ([]*service.SessionInfo, error)
	DeleteSessionFunc func(ctx context.Context, sessionID string) error

	MoveFunc    func(ctx context.Context, sessionID string, target state.Position) (*service.MoveResult, error)
	NewGameFunc func(ctx context.Context, sessionID string) (*service.BoardState, error)
	SolveFunc   func(ctx context.Context, sessionID string) (*service.SolveResult, error)
	HintFunc    func(ctx context.Context, sessionID string) (*service.HintResult, error)
	MetricsFunc func(ctx context.Context, sessionID string) (*service.MetricsResult, error)

	GetBoardStateFunc func(ctx context.Context, sessionID string) (*service.BoardState, error)

	ListPresetsFunc func(ctx context.Context) ([]*config.PresetInfo, error)
	LoadPresetFunc  func(ctx context.Context, presetName string) (*config.Preset, error)
}

func testBoard(sessionID string) *service.BoardState {
	return &service.BoardState{
		SessionID: sessionID,
		GridSize:  3,
		Grid:      [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 0}},
		EmptyPos:  state.Position{Row: 2, Col: 2},
		Solved:    true,
	}
}

func (m *MockGameService) CreateSession(ctx context.Context, presetName string) (*service.SessionInfo, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, presetName)
	}
	return &service.SessionInfo{
		ID:        "test-session",
		PresetID:  presetName,
		CreatedAt: time.Now(),
		Board:     testBoard("test-session"),
	}, nil
}

func (m *MockGameService) GetSession(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(ctx, sessionID)
	}
	return &service.SessionInfo{
		ID:        sessionID,
		PresetID:  "classic",
		CreatedAt: time.Now(),
		Board:     testBoard(sessionID),
	}, nil
}

func (m *MockGameService) ListSessions(ctx context.Context) ([]*service.SessionInfo, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc(ctx)
	}
	return []*service.SessionInfo{}, nil
}

func (m *MockGameService) DeleteSession(ctx context.Context, sessionID string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockGameService) Move(ctx context.Context, sessionID string, target state.Position) (*service.MoveResult, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, sessionID, target)
	}
	return &service.MoveResult{
		Slides: []state.Position{target},
		Board:  testBoard(sessionID),
	}, nil
}

func (m *MockGameService) NewGame(ctx context.Context, sessionID string) (*service.BoardState, error) {
	if m.NewGameFunc != nil {
		return m.NewGameFunc(ctx, sessionID)
	}
	return testBoard(sessionID), nil
}

func (m *MockGameService) Solve(ctx context.Context, sessionID string) (*service.SolveResult, error) {
	if m.SolveFunc != nil {
		return m.SolveFunc(ctx, sessionID)
	}
	return &service.SolveResult{
		Moves:     []state.Position{{Row: 2, Col: 1}},
		Length:    1,
		Heuristic: "linear_conflict",
	}, nil
}

func (m *MockGameService) Hint(ctx context.Context, sessionID string) (*service.HintResult, error) {
	if m.HintFunc != nil {
		return m.HintFunc(ctx, sessionID)
	}
	return &service.HintResult{
		Move:      &state.Position{Row: 2, Col: 1},
		Remaining: 1,
	}, nil
}

func (m *MockGameService) Metrics(ctx context.Context, sessionID string) (*service.MetricsResult, error) {
	if m.MetricsFunc != nil {
		return m.MetricsFunc(ctx, sessionID)
	}
	return &service.MetricsResult{
		SessionID: sessionID,
		GridSize:  3,
		Scores: []service.HeuristicScore{
			{Kind: "manhattan", Value: 0},
			{Kind: "linear_conflict", Value: 0},
			{Kind: "enhanced", Value: 0},
		},
	}, nil
}

func (m *MockGameService) GetBoardState(ctx context.Context, sessionID string) (*service.BoardState, error) {
	if m.GetBoardStateFunc != nil {
		return m.GetBoardStateFunc(ctx, sessionID)
	}
	return testBoard(sessionID), nil
}

func (m *MockGameService) ListPresets(ctx context.Context) ([]*config.PresetInfo, error) {
	if m.ListPresetsFunc != nil {
		return m.ListPresetsFunc(ctx)
	}
	return []*config.PresetInfo{{PresetID: "classic", Name: "Classic", GridSize: 4}}, nil
}

func (m *MockGameService) LoadPreset(ctx context.Context, presetName string) (*config.Preset, error) {
	if m.LoadPresetFunc != nil {
		return m.LoadPresetFunc(ctx, presetName)
	}
	return config.DefaultPreset(), nil
}

func newTestServer(mock *MockGameService) *Server {
	return NewServer(mock, nil)
}

func doRequest(t *testing.T, server *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestCreateSessionEndpoint(t *testing.T) {
	server := newTestServer(&MockGameService{})

	rec := doRequest(t, server, "POST", "/api/sessions", map[string]string{"preset_id": "classic"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var info service.SessionInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if info.ID != "test-session" {
		t.Errorf("session ID = %q, want 'test-session'", info.ID)
	}
	if info.PresetID != "classic" {
		t.Errorf("preset ID = %q, want 'classic'", info.PresetID)
	}
}

func TestGetSessionEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server := newTestServer(&MockGameService{})
		rec := doRequest(t, server, "GET", "/api/sessions/abcd", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("not found", func(t *testing.T) {
		server := newTestServer(&MockGameService{
			GetSessionFunc: func(ctx context.Context, sessionID string) (*service.SessionInfo, error) {
				return nil, fmt.Errorf("session not found: %w", session.ErrSessionNotFound)
			},
		})
		rec := doRequest(t, server, "GET", "/api/sessions/missing", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

func TestMoveEndpoint(t *testing.T) {
	t.Run("legal click", func(t *testing.T) {
		var gotTarget state.Position
		server := newTestServer(&MockGameService{
			MoveFunc: func(ctx context.Context, sessionID string, target state.Position) (*service.MoveResult, error) {
				gotTarget = target
				return &service.MoveResult{Slides: []state.Position{target}, Board: testBoard(sessionID)}, nil
			},
		})

		rec := doRequest(t, server, "POST", "/api/sessions/abcd/move", map[string]int{"row": 2, "col": 0})
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if gotTarget != (state.Position{Row: 2, Col: 0}) {
			t.Errorf("target = %v, want {2 0}", gotTarget)
		}
	})

	t.Run("illegal click", func(t *testing.T) {
		server := newTestServer(&MockGameService{
			MoveFunc: func(ctx context.Context, sessionID string, target state.Position) (*service.MoveResult, error) {
				return nil, fmt.Errorf("%w: (0,0) shares no line with the empty cell", state.ErrIllegalMove)
			},
		})

		rec := doRequest(t, server, "POST", "/api/sessions/abcd/move", map[string]int{"row": 0, "col": 0})
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		server := newTestServer(&MockGameService{})
		req := httptest.NewRequest("POST", "/api/sessions/abcd/move", bytes.NewBufferString("{broken"))
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestSolveEndpointErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"iteration limit", fmt.Errorf("%w: budget of 1", solver.ErrIterationLimit), http.StatusRequestTimeout},
		{"cancelled", fmt.Errorf("%w: board changed", solver.ErrCancelled), http.StatusConflict},
		{"unsolvable", fmt.Errorf("%w: parity check failed", solver.ErrUnsolvable), http.StatusUnprocessableEntity},
		{"session missing", fmt.Errorf("session not found: %w", session.ErrSessionNotFound), http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(&MockGameService{
				SolveFunc: func(ctx context.Context, sessionID string) (*service.SolveResult, error) {
					return nil, tc.err
				},
			})

			rec := doRequest(t, server, "POST", "/api/sessions/abcd/solve", nil)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestSolveEndpoint(t *testing.T) {
	server := newTestServer(&MockGameService{})

	rec := doRequest(t, server, "POST", "/api/sessions/abcd/solve", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var result service.SolveResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Length != 1 || len(result.Moves) != 1 {
		t.Errorf("unexpected solve result: %+v", result)
	}
}

func TestHintEndpoint(t *testing.T) {
	server := newTestServer(&MockGameService{})

	rec := doRequest(t, server, "GET", "/api/sessions/abcd/hint", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var hint service.HintResult
	if err := json.Unmarshal(rec.Body.Bytes(), &hint); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if hint.Move == nil || hint.Remaining != 1 {
		t.Errorf("unexpected hint: %+v", hint)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(&MockGameService{})

	rec := doRequest(t, server, "GET", "/api/sessions/abcd/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var metrics service.MetricsResult
	if err := json.Unmarshal(rec.Body.Bytes(), &metrics); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(metrics.Scores) != 3 {
		t.Errorf("expected 3 scores, got %d", len(metrics.Scores))
	}
}

func TestShuffleEndpoint(t *testing.T) {
	server := newTestServer(&MockGameService{})

	rec := doRequest(t, server, "POST", "/api/sessions/abcd/shuffle", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestListSessionsEndpoint(t *testing.T) {
	now := time.Now()
	server := newTestServer(&MockGameService{
		ListSessionsFunc: func(ctx context.Context) ([]*service.SessionInfo, error) {
			return []*service.SessionInfo{
				{ID: "old", CreatedAt: now.Add(-time.Hour), LastAccessedAt: now.Add(-time.Hour)},
				{ID: "new", CreatedAt: now, LastAccessedAt: now},
			}, nil
		},
	})

	rec := doRequest(t, server, "GET", "/api/sessions?limit=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Count    int                    `json:"count"`
		Sessions []*service.SessionInfo `json:"sessions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 || len(resp.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", resp.Count)
	}
	// Default sort is most recently accessed first.
	if resp.Sessions[0].ID != "new" {
		t.Errorf("expected most recent session first, got %q", resp.Sessions[0].ID)
	}
}

func TestListPresetsEndpoint(t *testing.T) {
	server := newTestServer(&MockGameService{})

	rec := doRequest(t, server, "GET", "/api/configs", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var infos []*config.PresetInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(infos) != 1 || infos[0].PresetID != "classic" {
		t.Errorf("unexpected presets: %+v", infos)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(&MockGameService{})

	rec := doRequest(t, server, "GET", "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want 'healthy'", body["status"])
	}
}
