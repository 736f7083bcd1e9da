// Package websocket provides real-time board broadcasts for puzzle sessions.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Board state broadcasting after moves, shuffles, and solves
//   - Connection lifecycle management with ping/pong keepalive
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a pair of
// goroutines (read pump, write pump) that manage I/O and cleanup. All
// session-map mutation happens on the hub's Run loop; producers hand
// messages to the loop through channels.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//   - Board updates: {session_id, event: "board_update", board: {...}}
//   - Events:        {session_id, event: "solve_complete", data: {...}}
//
// Incoming messages are currently ignored; clients drive the game through
// the REST API and use the socket as a read-only update stream.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab12) when
// establishing the connection. Updates are broadcast only to clients
// subscribed to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful move
//	hub.BroadcastBoard(sessionID, board)
package websocket
