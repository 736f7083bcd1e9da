package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tilelabs/slider/game/config"
	"github.com/tilelabs/slider/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Sliding Tile Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sliding Tile Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Arrange the tiles in ascending order, left to right, top to bottom, with the
empty cell in the bottom-right corner. Click any cell in the empty cell's row
or column to slide the whole run of tiles toward the gap.

AVAILABLE TOOLS:
- create_session: Create a new puzzle session (optionally pick a preset)
- puzzle_state: Show the current board
- move: Click a cell to slide tiles
- shuffle: Reshuffle the board to a fresh solvable scramble
- solve: Compute the optimal move sequence for the current board
- hint: Get the next optimal move
- heuristics: Show heuristic lower bounds for the current board
- list_sessions: List all active sessions
- list_configs: List available presets

TIP: solve and hint return clicks in (row, col) form; feed them straight
back into the move tool.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session with optional preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"preset_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the preset to use (optional, defaults to classic 4x4)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	// Puzzle operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_state",
		Description: "Get the current board state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePuzzleState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Click a cell to slide tiles toward the empty cell. The cell must share a row or column with the empty cell.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the clicked cell (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the clicked cell (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "shuffle",
		Description: "Reshuffle the board to a fresh solvable scramble at the session's difficulty",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleShuffle)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "solve",
		Description: "Compute the optimal move sequence for the current board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSolve)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "hint",
		Description: "Get the next optimal move for the current board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleHint)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "heuristics",
		Description: "Show heuristic lower bounds (manhattan, linear_conflict, enhanced) for the current board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleHeuristics)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"].(string); ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	presetID, _ := args["preset_id"].(string)

	body := map[string]string{}
	if presetID != "" {
		body["preset_id"] = presetID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nPreset: %s\n\n%s",
		session.ID, session.PresetID, formatBoard(session.Board))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Preset: %s, Created: %s)\n",
			s.ID, s.PresetID, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var board service.BoardState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &board)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBoard(&board)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))

	body := map[string]int{
		"row": row,
		"col": col,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Clicked (%d,%d): %d tile(s) slid\n", row, col, len(result.Slides))
	if result.Solved {
		response += "\n🎉 SOLVED!\n"
	}
	response += "\n" + formatBoard(result.Board)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleShuffle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var board service.BoardState
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/shuffle", sessionID), nil, &board)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Board reshuffled\n\n" + formatBoard(&board)), nil
}

func (c *Client) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.SolveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/solve", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSolveResult(&result)), nil
}

func (c *Client) handleHint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var hint service.HintResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/hint", sessionID), nil, &hint)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if hint.Solved || hint.Move == nil {
		return mcp.NewToolResultText("Board is already solved - no hint needed."), nil
	}

	result := fmt.Sprintf("Next move: click (%d,%d)\nMoves remaining on the optimal path: %d",
		hint.Move.Row, hint.Move.Col, hint.Remaining)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleHeuristics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var metrics service.MetricsResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/metrics", sessionID), nil, &metrics)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Heuristic estimates (%dx%d board, %d moves played):\n\n",
		metrics.GridSize, metrics.GridSize, metrics.Moves))
	for _, score := range metrics.Scores {
		b.WriteString(fmt.Sprintf("- %-16s %3d  (%.0fµs)\n", score.Kind, score.Value, score.DurationUS))
	}
	if metrics.Solved {
		b.WriteString("\nBoard is solved.")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var presets []config.PresetInfo
	err := c.apiCall("GET", "/api/configs", nil, &presets)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Presets:\n\n"
	for _, preset := range presets {
		result += fmt.Sprintf("• %s\n  %s\n  Grid: %dx%d, Difficulty: %s, Heuristic: %s\n\n",
			preset.PresetID, preset.Description,
			preset.GridSize, preset.GridSize, preset.Difficulty, preset.Heuristic)
	}

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

// formatBoard renders the board as an aligned grid with the empty cell as dots.
func formatBoard(board *service.BoardState) string {
	if board == nil {
		return "No board state available"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Board %dx%d | Moves: %d | Version: %d\n",
		board.GridSize, board.GridSize, board.Moves, board.Version))
	if board.Solved {
		b.WriteString("Status: SOLVED\n")
	}
	b.WriteString("\n")

	// Wide enough for the largest tile number.
	width := len(fmt.Sprintf("%d", board.GridSize*board.GridSize-1))
	for _, row := range board.Grid {
		for i, tile := range row {
			if i > 0 {
				b.WriteString(" ")
			}
			if tile == 0 {
				b.WriteString(strings.Repeat(".", width))
			} else {
				b.WriteString(fmt.Sprintf("%*d", width, tile))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatSolveResult(result *service.SolveResult) string {
	var b strings.Builder

	if result.Length == 0 {
		b.WriteString("Board is already solved.\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Optimal solution: %d move(s)\n", result.Length))
	b.WriteString(fmt.Sprintf("Heuristic: %s", result.Heuristic))
	if result.Cached {
		b.WriteString(" (cached)")
	}
	b.WriteString("\n")
	if result.NodesExpanded > 0 {
		b.WriteString(fmt.Sprintf("Nodes: %d expanded, %d generated in %.1fms\n",
			result.NodesExpanded, result.NodesGenerated, result.DurationMS))
	}

	b.WriteString("\nMoves (click each in order):\n")
	for i, move := range result.Moves {
		b.WriteString(fmt.Sprintf("%d. (%d,%d)\n", i+1, move.Row, move.Col))
	}

	return b.String()
}
