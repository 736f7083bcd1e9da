// Package mcp provides a Model Context Protocol interface for the puzzle service.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for puzzle operations
//   - A thin proxy that forwards every tool call to the REST API
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create a new puzzle session with preset selection
//   - puzzle_state: Get the current board with grid visualization
//   - move: Click a cell to slide tiles toward the empty cell
//   - shuffle: Reshuffle the board to a fresh solvable scramble
//   - solve: Compute the optimal move sequence
//   - hint: Get the next optimal move
//   - heuristics: Show heuristic lower bounds for the board
//   - list_sessions: List all active sessions
//   - list_configs: List available presets
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//
//	// Stdio mode
//	server.ServeStdio(client.GetMCPServer())
//
//	// HTTP mode
//	httpServer := server.NewStreamableHTTPServer(client.GetMCPServer())
//	mux.Handle("/mcp", httpServer)
//
// Because the MCP layer speaks only to the REST API, any number of MCP
// processes can attach to a single running game server and share sessions.
package mcp
