package state

const (
	// MinSize is the smallest supported grid dimension.
	MinSize = 3
	// MaxSize is the largest supported grid dimension. Cell values are packed
	// into a byte, and the key tables in hash.go are sized for this bound.
	MaxSize = 15

	// emptyCell marks the unoccupied grid position in the cell slice.
	emptyCell = 0
)

// Position is a grid coordinate (row, col), zero-based from the top-left.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Tile is a labeled cell value together with its home position in the solved
// ordering. Tiles are pure values; two tiles are the same tile when their
// values match.
type Tile struct {
	Value int      `json:"value"`
	Home  Position `json:"home"`
}

// homeOf returns the solved-order position of tile value v on a size×size grid.
func homeOf(v, size int) Position {
	return Position{Row: (v - 1) / size, Col: (v - 1) % size}
}

// adjacent reports whether a and b share an edge.
func adjacent(a, b Position) bool {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}
