package heuristic

import "github.com/tilelabs/slider/puzzle/state"

// linearConflict refines Manhattan with the cost of tiles blocking each other
// inside a shared line. Two tiles conflict when both sit in the line their
// homes share and their order along it is reversed: at least one of them must
// leave the line and re-enter, adding 2 moves beyond Manhattan.
//
// Conflicts are charged per evicted tile, not per reversed pair: within each
// line we repeatedly evict the tile with the most remaining conflicts and add
// 2 for it. Pair counting would overcharge three mutually reversed tiles
// (3 pairs, but 2 evictions suffice) and break admissibility; eviction
// counting keeps the estimate a true lower bound and consistent across
// single slides.
type linearConflict struct{}

func (linearConflict) Kind() Kind { return LinearConflict }

func (linearConflict) Estimate(s *state.State) int {
	return manhattan{}.Estimate(s) + 2*conflictEvictions(s)
}

// lineTile is a tile inside the line its home belongs to: its coordinate
// along the line and its home coordinate along the same axis.
type lineTile struct {
	at   int
	home int
}

// conflictEvictions counts, over all rows and columns, the minimum number of
// tiles that must leave their home line to untangle reversed orderings.
func conflictEvictions(s *state.State) int {
	n := s.Size()
	evictions := 0

	for row := 0; row < n; row++ {
		var tiles []lineTile
		for col := 0; col < n; col++ {
			tile, ok := s.TileAt(state.Position{Row: row, Col: col})
			if ok && tile.Home.Row == row {
				tiles = append(tiles, lineTile{at: col, home: tile.Home.Col})
			}
		}
		evictions += lineEvictions(tiles)
	}

	for col := 0; col < n; col++ {
		var tiles []lineTile
		for row := 0; row < n; row++ {
			tile, ok := s.TileAt(state.Position{Row: row, Col: col})
			if ok && tile.Home.Col == col {
				tiles = append(tiles, lineTile{at: row, home: tile.Home.Row})
			}
		}
		evictions += lineEvictions(tiles)
	}

	return evictions
}

// lineEvictions computes the eviction count for one line by greedily removing
// the most-conflicted tile until no reversed pair remains.
func lineEvictions(tiles []lineTile) int {
	if len(tiles) < 2 {
		return 0
	}

	// conflicts[i][j]: tiles i and j appear in reversed relative order.
	conflicts := make([][]bool, len(tiles))
	counts := make([]int, len(tiles))
	for i := range tiles {
		conflicts[i] = make([]bool, len(tiles))
	}
	for i := 0; i < len(tiles); i++ {
		for j := i + 1; j < len(tiles); j++ {
			a, b := tiles[i], tiles[j]
			if (a.at < b.at && a.home > b.home) || (a.at > b.at && a.home < b.home) {
				conflicts[i][j] = true
				conflicts[j][i] = true
				counts[i]++
				counts[j]++
			}
		}
	}

	evictions := 0
	for {
		worst, max := -1, 0
		for i, c := range counts {
			if c > max {
				worst, max = i, c
			}
		}
		if worst < 0 {
			return evictions
		}
		evictions++
		counts[worst] = 0
		for j := range conflicts[worst] {
			if conflicts[worst][j] {
				conflicts[worst][j] = false
				conflicts[j][worst] = false
				counts[j]--
			}
		}
	}
}
