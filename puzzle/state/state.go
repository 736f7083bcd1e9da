package state

import "fmt"

// State is an N×N sliding-tile board. The zero value is not usable; construct
// with New or NewFromCells.
type State struct {
	size  int
	cells []uint8 // row-major; emptyCell marks the hole
	empty Position
}

// New creates a board of the given dimension in the solved configuration:
// tiles 1..N²−1 in reading order with the empty cell bottom-right.
func New(size int) (*State, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (supported: %d..%d)", ErrSizeOutOfRange, size, MinSize, MaxSize)
	}

	cells := make([]uint8, size*size)
	for i := 0; i < size*size-1; i++ {
		cells[i] = uint8(i + 1)
	}
	cells[size*size-1] = emptyCell

	return &State{
		size:  size,
		cells: cells,
		empty: Position{Row: size - 1, Col: size - 1},
	}, nil
}

// NewFromCells creates a board from explicit cell contents in row-major order.
// The cells must contain each of 1..N²−1 exactly once plus exactly one 0 for
// the empty cell.
func NewFromCells(size int, cells []int) (*State, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (supported: %d..%d)", ErrSizeOutOfRange, size, MinSize, MaxSize)
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidCells, len(cells), size*size)
	}

	seen := make([]bool, size*size)
	empty := Position{Row: -1, Col: -1}
	packed := make([]uint8, size*size)

	for i, v := range cells {
		if v < 0 || v > size*size-1 {
			return nil, fmt.Errorf("%w: value %d out of range at index %d", ErrInvalidCells, v, i)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: duplicate value %d", ErrInvalidCells, v)
		}
		seen[v] = true
		packed[i] = uint8(v)
		if v == emptyCell {
			empty = Position{Row: i / size, Col: i % size}
		}
	}
	if empty.Row < 0 {
		return nil, fmt.Errorf("%w: no empty cell", ErrInvalidCells)
	}

	return &State{size: size, cells: packed, empty: empty}, nil
}

// Size returns the grid dimension N.
func (s *State) Size() int {
	return s.size
}

// EmptyPos returns the position of the empty cell.
func (s *State) EmptyPos() Position {
	return s.empty
}

// Clone returns a deep copy of the board.
func (s *State) Clone() *State {
	cells := make([]uint8, len(s.cells))
	copy(cells, s.cells)
	return &State{size: s.size, cells: cells, empty: s.empty}
}

// Cells returns the board contents in row-major order, 0 for the empty cell.
func (s *State) Cells() []int {
	out := make([]int, len(s.cells))
	for i, v := range s.cells {
		out[i] = int(v)
	}
	return out
}

// TileAt returns the tile at pos, or ok=false for the empty cell.
func (s *State) TileAt(pos Position) (Tile, bool) {
	v := s.cells[pos.Row*s.size+pos.Col]
	if v == emptyCell {
		return Tile{}, false
	}
	return Tile{Value: int(v), Home: homeOf(int(v), s.size)}, true
}

// IsSolved reports whether every tile sits at its home position.
func (s *State) IsSolved() bool {
	for i := 0; i < s.size*s.size-1; i++ {
		if s.cells[i] != uint8(i+1) {
			return false
		}
	}
	return true
}

// ApplySlide performs one elementary slide: the tile at pos moves into the
// adjacent empty cell. It returns ErrIllegalMove when pos is not adjacent to
// the empty cell. Given the same board and position the outcome is always
// identical.
func (s *State) ApplySlide(pos Position) error {
	if pos.Row < 0 || pos.Row >= s.size || pos.Col < 0 || pos.Col >= s.size {
		return fmt.Errorf("%w: (%d,%d) outside the grid", ErrIllegalMove, pos.Row, pos.Col)
	}
	if !adjacent(pos, s.empty) {
		return fmt.Errorf("%w: (%d,%d) not adjacent to empty cell (%d,%d)",
			ErrIllegalMove, pos.Row, pos.Col, s.empty.Row, s.empty.Col)
	}

	from := pos.Row*s.size + pos.Col
	to := s.empty.Row*s.size + s.empty.Col
	s.cells[to] = s.cells[from]
	s.cells[from] = emptyCell
	s.empty = pos
	return nil
}

// LegalSlides returns every position whose tile may slide into the empty
// cell: 2 when the empty cell is at a corner, 3 on a non-corner edge, 4 when
// fully surrounded. The result depends only on the empty cell's coordinates
// and the grid bounds.
func (s *State) LegalSlides() []Position {
	moves := make([]Position, 0, 4)
	if s.empty.Row > 0 {
		moves = append(moves, Position{Row: s.empty.Row - 1, Col: s.empty.Col})
	}
	if s.empty.Row < s.size-1 {
		moves = append(moves, Position{Row: s.empty.Row + 1, Col: s.empty.Col})
	}
	if s.empty.Col > 0 {
		moves = append(moves, Position{Row: s.empty.Row, Col: s.empty.Col - 1})
	}
	if s.empty.Col < s.size-1 {
		moves = append(moves, Position{Row: s.empty.Row, Col: s.empty.Col + 1})
	}
	return moves
}

// String renders the board for logs and test failures.
func (s *State) String() string {
	out := ""
	for r := 0; r < s.size; r++ {
		for c := 0; c < s.size; c++ {
			v := s.cells[r*s.size+c]
			if v == emptyCell {
				out += "  ."
			} else {
				out += fmt.Sprintf("%3d", v)
			}
		}
		out += "\n"
	}
	return out
}
