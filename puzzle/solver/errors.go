package solver

import "errors"

var (
	// ErrIterationLimit is returned when the search budget is exhausted
	// before the goal is reached.
	ErrIterationLimit = errors.New("solver: iteration limit exceeded")

	// ErrUnsolvable is returned when the open set empties without reaching
	// the goal. A board shuffled by legal slides never triggers this; it
	// guards against externally supplied unreachable boards.
	ErrUnsolvable = errors.New("solver: puzzle is unsolvable")

	// ErrCancelled is returned when the caller's context is cancelled
	// mid-search.
	ErrCancelled = errors.New("solver: cancelled")
)
