package state

import "fmt"

// ResolveChain expands a click on target into the ordered elementary slides
// that realize it. A target adjacent to the empty cell resolves to itself; a
// target elsewhere on the empty cell's row or column resolves to the run of
// tiles between it and the empty cell, nearest-the-empty first. Any other
// target returns ErrIllegalMove.
func (s *State) ResolveChain(target Position) ([]Position, error) {
	if target.Row < 0 || target.Row >= s.size || target.Col < 0 || target.Col >= s.size {
		return nil, fmt.Errorf("%w: (%d,%d) outside the grid", ErrIllegalMove, target.Row, target.Col)
	}
	if target == s.empty {
		return nil, fmt.Errorf("%w: (%d,%d) is the empty cell", ErrIllegalMove, target.Row, target.Col)
	}
	if target.Row != s.empty.Row && target.Col != s.empty.Col {
		return nil, fmt.Errorf("%w: (%d,%d) shares no line with empty cell (%d,%d)",
			ErrIllegalMove, target.Row, target.Col, s.empty.Row, s.empty.Col)
	}

	if adjacent(target, s.empty) {
		return []Position{target}, nil
	}

	var moves []Position
	if target.Row == s.empty.Row {
		if target.Col < s.empty.Col {
			for col := s.empty.Col - 1; col >= target.Col; col-- {
				moves = append(moves, Position{Row: target.Row, Col: col})
			}
		} else {
			for col := s.empty.Col + 1; col <= target.Col; col++ {
				moves = append(moves, Position{Row: target.Row, Col: col})
			}
		}
	} else {
		if target.Row < s.empty.Row {
			for row := s.empty.Row - 1; row >= target.Row; row-- {
				moves = append(moves, Position{Row: row, Col: target.Col})
			}
		} else {
			for row := s.empty.Row + 1; row <= target.Row; row++ {
				moves = append(moves, Position{Row: row, Col: target.Col})
			}
		}
	}
	return moves, nil
}

// ApplyChain resolves target into elementary slides and applies them in order.
// It returns the applied slides so callers can record or animate them.
func (s *State) ApplyChain(target Position) ([]Position, error) {
	moves, err := s.ResolveChain(target)
	if err != nil {
		return nil, err
	}
	for _, pos := range moves {
		if err := s.ApplySlide(pos); err != nil {
			return nil, err
		}
	}
	return moves, nil
}
