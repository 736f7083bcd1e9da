package heuristic

import "github.com/tilelabs/slider/puzzle/state"

// enhanced layers two empirically tuned penalties on top of linearConflict.
//
// Corner tiles are the most constrained placements: when a corner tile is out
// of home and both of its solved-order neighbors are also out of home, the
// corner typically costs ~3 extra moves to rebuild, so +3 is charged.
// Tiles belonging to the last row or column have little room to maneuver;
// when two or more of the tiles currently in such a line do not belong to it,
// +2 is charged per offender.
//
// These penalties are tuned, not proven: strict admissibility has no formal
// argument, so this estimator is not the solver default. The heuristic test
// suite cross-checks it against brute-force ground truth on small grids.
type enhanced struct{}

func (enhanced) Kind() Kind { return Enhanced }

func (enhanced) Estimate(s *state.State) int {
	return linearConflict{}.Estimate(s) + cornerPenalty(s) + edgePenalty(s)
}

// cornerPenalty charges +3 per displaced corner tile whose two solved-order
// neighbors are displaced as well. The bottom-right corner is the empty
// cell's home and has no tile of its own.
func cornerPenalty(s *state.State) int {
	n := s.Size()
	corners := []struct{ corner, sideA, sideB state.Position }{
		{state.Position{Row: 0, Col: 0}, state.Position{Row: 0, Col: 1}, state.Position{Row: 1, Col: 0}},
		{state.Position{Row: 0, Col: n - 1}, state.Position{Row: 0, Col: n - 2}, state.Position{Row: 1, Col: n - 1}},
		{state.Position{Row: n - 1, Col: 0}, state.Position{Row: n - 2, Col: 0}, state.Position{Row: n - 1, Col: 1}},
	}

	penalty := 0
	for _, c := range corners {
		if tileAtHome(s, c.corner) || tileAtHome(s, c.sideA) || tileAtHome(s, c.sideB) {
			continue
		}
		penalty += 3
	}
	return penalty
}

// tileAtHome reports whether the tile whose home is home currently sits there.
func tileAtHome(s *state.State, home state.Position) bool {
	tile, ok := s.TileAt(home)
	return ok && tile.Home == home
}

// edgePenalty charges +2 per tile stuck in the last row (or column) that does
// not belong to it, once at least two such tiles crowd the same line.
func edgePenalty(s *state.State) int {
	n := s.Size()
	penalty := 0

	lastRowWrong := 0
	for col := 0; col < n; col++ {
		tile, ok := s.TileAt(state.Position{Row: n - 1, Col: col})
		if ok && tile.Home.Row != n-1 {
			lastRowWrong++
		}
	}
	if lastRowWrong > 1 {
		penalty += 2 * lastRowWrong
	}

	lastColWrong := 0
	for row := 0; row < n; row++ {
		tile, ok := s.TileAt(state.Position{Row: row, Col: n - 1})
		if ok && tile.Home.Col != n-1 {
			lastColWrong++
		}
	}
	if lastColWrong > 1 {
		penalty += 2 * lastColWrong
	}

	return penalty
}
