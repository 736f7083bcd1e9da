// Package api provides the HTTP REST surface for the sliding-tile service.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Preset listing and lookup
//   - WebSocket upgrade handling for board broadcasts
//
// Endpoints:
//
// Session Management:
//   - POST   /api/sessions       - Create a session (optional preset_id)
//   - GET    /api/sessions       - List sessions (sort, order, limit params)
//   - GET    /api/sessions/{id}  - Get a session
//   - DELETE /api/sessions/{id}  - Delete a session
//
// Puzzle Operations:
//   - GET  /api/sessions/{id}/state   - Current board state
//   - POST /api/sessions/{id}/move    - Click a cell: {"row": r, "col": c}
//   - POST /api/sessions/{id}/shuffle - Reshuffle to a fresh board
//   - POST /api/sessions/{id}/solve   - Compute the optimal move sequence
//   - GET  /api/sessions/{id}/hint    - Next optimal move
//   - GET  /api/sessions/{id}/metrics - Heuristic estimates for the board
//
// Presets:
//   - GET /api/configs        - List available presets
//   - GET /api/configs/{name} - Get a preset by id
//
// WebSocket:
//   - GET /ws?session={id} - Subscribe to board updates for a session
//
// All endpoints accept and return JSON. Errors are returned as JSON with
// an HTTP status derived from the failure:
//
//	404 - session or preset not found
//	408 - solver exceeded its iteration budget
//	409 - solve superseded by a newer board version
//	422 - unsolvable board or illegal move
//
//	{
//	  "error": "error message",
//	  "code": 422
//	}
package api
