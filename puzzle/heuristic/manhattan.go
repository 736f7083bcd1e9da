package heuristic

import "github.com/tilelabs/slider/puzzle/state"

// manhattan sums |Δrow| + |Δcol| between every tile's current and home
// position. Each elementary slide moves one tile by one grid step, so the sum
// drops by at most 1 per move: the estimate never overshoots the true cost.
type manhattan struct{}

func (manhattan) Kind() Kind { return Manhattan }

func (manhattan) Estimate(s *state.State) int {
	n := s.Size()
	total := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			tile, ok := s.TileAt(state.Position{Row: row, Col: col})
			if !ok {
				continue
			}
			total += abs(row-tile.Home.Row) + abs(col-tile.Home.Col)
		}
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
