package state

import "errors"

var (
	// ErrSizeOutOfRange is returned by constructors when the requested grid
	// dimension is outside [MinSize, MaxSize].
	ErrSizeOutOfRange = errors.New("grid size out of range")

	// ErrInvalidCells is returned by NewFromCells when the supplied cells are
	// not a permutation of 1..N²−1 plus exactly one empty cell.
	ErrInvalidCells = errors.New("invalid cell contents")

	// ErrIllegalMove is returned when a slide targets a cell that is not
	// adjacent to the empty cell, or a chain move targets a cell outside the
	// empty cell's row and column.
	ErrIllegalMove = errors.New("illegal move")
)
