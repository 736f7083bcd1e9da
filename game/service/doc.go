// Package service provides the business logic layer for the puzzle server.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Click-to-move resolution into elementary slides
//   - Difficulty-driven shuffling
//   - Optimal solving with per-version result caching
//   - Hints and heuristic metrics
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. PresetManager manages puzzle preset loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the puzzle core, providing session isolation, preset management, and
// solve orchestration. Each session owns an independent board.
//
// Solving:
//
// Solve runs the A* solver configured by the session's preset against a
// snapshot of the board, under a context tied to the session's state
// version: if the board changes mid-solve, the stale solve is cancelled.
// Results are cached per state version, so repeated Solve and Hint calls on
// an unchanged board cost one search.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	presetMgr, _ := config.NewManager("presets")
//	gameService := service.NewGameService(sessionMgr, presetMgr)
//
//	info, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Click a tile on the empty cell's row or column
//	result, err := gameService.Move(ctx, info.ID, state.Position{Row: 3, Col: 1})
package service
