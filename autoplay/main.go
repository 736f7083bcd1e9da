// Command autoplay drives a sliding-tile puzzle session to completion over the
// REST API. It supports two strategies: "solver" asks the server for the
// optimal move sequence and replays it, while "greedy" picks clicks locally by
// hill-climbing on Manhattan distance with random restarts.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type BoardState struct {
	SessionID string   `json:"session_id"`
	GridSize  int      `json:"grid_size"`
	Grid      [][]int  `json:"grid"`
	EmptyPos  Position `json:"empty_pos"`
	Moves     int      `json:"moves"`
	Version   int      `json:"version"`
	Solved    bool     `json:"solved"`
}

type SessionResponse struct {
	ID       string      `json:"id"`
	PresetID string      `json:"preset_id"`
	Board    *BoardState `json:"board"`
}

type MoveResponse struct {
	Slides []Position  `json:"slides"`
	Solved bool        `json:"solved"`
	Board  *BoardState `json:"board"`
}

type SolveResponse struct {
	Moves     []Position `json:"moves"`
	Length    int        `json:"length"`
	Heuristic string     `json:"heuristic"`
	Cached    bool       `json:"cached"`
	Version   int        `json:"version"`
}

type Client struct {
	baseURL   string
	sessionID string
	client    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) CreateSession(presetID string) (*BoardState, error) {
	var reqBody []byte
	var err error

	if presetID != "" {
		reqBody, err = json.Marshal(map[string]string{"preset_id": presetID})
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
	}

	resp, err := c.client.Post(c.baseURL+"/api/sessions", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create session failed: %s - %s", resp.Status, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("parse session response: %w", err)
	}

	c.sessionID = session.ID
	return session.Board, nil
}

func (c *Client) GetState() (*BoardState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/state", c.baseURL, c.sessionID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get state failed: %s - %s", resp.Status, string(body))
	}

	var board BoardState
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("parse state: %w", err)
	}

	return &board, nil
}

func (c *Client) Move(target Position) (*MoveResponse, error) {
	body, err := json.Marshal(map[string]int{"row": target.Row, "col": target.Col})
	if err != nil {
		return nil, fmt.Errorf("marshal move: %w", err)
	}

	url := fmt.Sprintf("%s/api/sessions/%s/move", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("execute move: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("move failed: %s - %s", resp.Status, string(respBody))
	}

	var moveResp MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&moveResp); err != nil {
		return nil, fmt.Errorf("parse move response: %w", err)
	}

	return &moveResp, nil
}

func (c *Client) Shuffle() (*BoardState, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/shuffle", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("shuffle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("shuffle failed: %s - %s", resp.Status, string(body))
	}

	var board BoardState
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return nil, fmt.Errorf("parse shuffle response: %w", err)
	}

	return &board, nil
}

func (c *Client) Solve() (*SolveResponse, error) {
	url := fmt.Sprintf("%s/api/sessions/%s/solve", c.baseURL, c.sessionID)
	resp, err := c.client.Post(url, "application/json", nil)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("solve failed: %s - %s", resp.Status, string(body))
	}

	var solveResp SolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&solveResp); err != nil {
		return nil, fmt.Errorf("parse solve response: %w", err)
	}

	return &solveResp, nil
}

func main() {
	serverURL := flag.String("url", "http://localhost:8080", "Puzzle server URL")
	presetID := flag.String("preset", "", "Preset ID (classic, starter, expert)")
	continueSession := flag.String("continue", "", "Resume an existing session by ID")
	strategy := flag.String("strategy", "solver", "Play strategy: solver or greedy")
	maxMoves := flag.Int("max-moves", 5000, "Maximum moves per attempt (greedy)")
	maxAttempts := flag.Int("max-attempts", 20, "Maximum attempts before giving up (greedy)")
	verbose := flag.Bool("v", false, "Verbose output")
	delayMs := flag.Int("delay", 0, "Delay between moves in milliseconds (0 = no delay)")
	flag.Parse()

	log.Printf("Connecting to puzzle server at %s", *serverURL)
	client := NewClient(*serverURL)

	var board *BoardState
	var err error

	// Check for saved session ID
	sessionFile := ".session"
	savedSessionID := ""

	if *continueSession != "" {
		savedSessionID = *continueSession
	} else {
		if data, err := os.ReadFile(sessionFile); err == nil {
			savedSessionID = string(bytes.TrimSpace(data))
		}
	}

	if savedSessionID != "" {
		// Resume existing session
		client.sessionID = savedSessionID
		log.Printf("Resuming session: %s", client.sessionID)
		board, err = client.GetState()
		if err != nil {
			log.Printf("Failed to resume session (may be expired): %v", err)
			log.Printf("Creating new session...")
			savedSessionID = ""
		} else {
			log.Printf("Session resumed - Grid: %dx%d, Moves: %d",
				board.GridSize, board.GridSize, board.Moves)
		}
	}

	if savedSessionID == "" {
		board, err = client.CreateSession(*presetID)
		if err != nil {
			log.Fatalf("Failed to create session: %v", err)
		}
		log.Printf("Session created: %s", client.sessionID)
		log.Printf("Grid size: %dx%d", board.GridSize, board.GridSize)

		// Save session ID for next run
		if err := os.WriteFile(sessionFile, []byte(client.sessionID), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	}

	if board.Solved {
		log.Printf("Board already solved, reshuffling...")
		board, err = client.Shuffle()
		if err != nil {
			log.Fatalf("Failed to shuffle: %v", err)
		}
	}

	switch *strategy {
	case "solver":
		playWithSolver(client, *verbose, *delayMs)
	case "greedy":
		playGreedy(client, board, *maxMoves, *maxAttempts, *verbose, *delayMs)
	default:
		log.Fatalf("Unknown strategy: %s. Use 'solver' or 'greedy'", *strategy)
	}
}

// playWithSolver asks the server for the optimal sequence and replays it.
func playWithSolver(client *Client, verbose bool, delayMs int) {
	solution, err := client.Solve()
	if err != nil {
		log.Fatalf("Failed to solve: %v", err)
	}

	log.Printf("Server found an optimal solution: %d move(s) via %s",
		solution.Length, solution.Heuristic)

	for i, move := range solution.Moves {
		resp, err := client.Move(move)
		if err != nil {
			log.Fatalf("Move %d failed: %v", i+1, err)
		}

		if verbose {
			log.Printf("Move %d/%d: clicked (%d,%d), %d tile(s) slid",
				i+1, solution.Length, move.Row, move.Col, len(resp.Slides))
		}

		if resp.Solved {
			log.Printf("\n🎉 SOLVED in %d moves (optimal)!", i+1)
			log.Printf("Session: %s", client.sessionID)
			os.Exit(0)
		}

		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}
	}

	log.Printf("Replayed the full sequence without reaching the goal - board changed mid-run?")
	os.Exit(1)
}

// playGreedy hill-climbs locally and reshuffles between failed attempts.
func playGreedy(client *Client, board *BoardState, maxMoves, maxAttempts int, verbose bool, delayMs int) {
	strategy := NewGreedyStrategy(time.Now().UnixNano())

	attemptNum := 0
	for attemptNum < maxAttempts {
		attemptNum++

		if attemptNum > 1 {
			var err error
			board, err = client.Shuffle()
			if err != nil {
				log.Printf("Failed to reshuffle: %v", err)
				break
			}
			strategy.Reset()
		}

		log.Printf("\n=== Attempt %d/%d ===", attemptNum, maxAttempts)

		moveCount := 0
		for !board.Solved && moveCount < maxMoves {
			if verbose && moveCount%100 == 0 {
				log.Printf("Move %d, distance %d", moveCount, manhattanSum(board))
			}

			target, ok := strategy.NextClick(board)
			if !ok {
				log.Printf("Strategy has no further candidate clicks")
				break
			}

			resp, err := client.Move(target)
			if err != nil {
				log.Printf("Move failed: %v", err)
				break
			}
			board = resp.Board
			moveCount++

			if delayMs > 0 {
				time.Sleep(time.Duration(delayMs) * time.Millisecond)
			}
		}

		log.Printf("Attempt %d: moves=%d, remaining distance=%d",
			attemptNum, moveCount, manhattanSum(board))

		if board.Solved {
			log.Printf("\n🎉 SOLVED in attempt %d with %d moves!", attemptNum, moveCount)
			log.Printf("Session: %s", client.sessionID)
			os.Exit(0)
		}
	}

	log.Printf("\nFailed to solve after %d attempts", attemptNum)
	log.Printf("Session: %s", client.sessionID)
	os.Exit(1)
}
