package solver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/tilelabs/slider/puzzle/heuristic"
	"github.com/tilelabs/slider/puzzle/state"
)

// IDAStar is an iterative-deepening A* searcher: repeated depth-first probes
// under a growing f-bound. It keeps only the current path in memory, trading
// re-expansion of shallow nodes for O(depth) space, and finds the same
// optimal lengths as Solver.
type IDAStar struct {
	estimator      heuristic.Estimator
	maxIterations  int
	cancelInterval int
}

// NewIDAStar creates an IDA* searcher from opts.
func NewIDAStar(opts Options) (*IDAStar, error) {
	kind := opts.Heuristic
	if kind == "" {
		kind = heuristic.LinearConflict
	}
	est, err := heuristic.New(kind)
	if err != nil {
		return nil, err
	}

	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	cancelInterval := opts.CancelCheckInterval
	if cancelInterval <= 0 {
		cancelInterval = defaultCancelInterval
	}

	return &IDAStar{
		estimator:      est,
		maxIterations:  maxIterations,
		cancelInterval: cancelInterval,
	}, nil
}

// idaSearch carries the mutable pieces of one Solve call through the
// recursive probes.
type idaSearch struct {
	solver  *IDAStar
	ctx     context.Context
	visited int
	path    []state.Position
}

// Solve finds a minimum-length slide sequence from start to the solved
// configuration. Error contract matches Solver.Solve.
func (s *IDAStar) Solve(ctx context.Context, start *state.State) (*Solution, error) {
	began := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
	}
	if start.IsSolved() {
		return &Solution{Stats: Stats{Duration: time.Since(began)}}, nil
	}

	search := &idaSearch{solver: s, ctx: ctx}
	bound := s.estimator.Estimate(start)

	for {
		found, nextBound, err := search.probe(start.Clone(), 0, bound, state.Position{Row: -1, Col: -1})
		if err != nil {
			return nil, err
		}
		if found {
			moves := make([]state.Position, len(search.path))
			copy(moves, search.path)
			return &Solution{
				Moves:  moves,
				Length: len(moves),
				Stats: Stats{
					NodesExpanded:  search.visited,
					NodesGenerated: search.visited,
					Duration:       time.Since(began),
				},
			}, nil
		}
		if nextBound == math.MaxInt {
			return nil, fmt.Errorf("%w: no states under any bound", ErrUnsolvable)
		}
		if search.visited > s.maxIterations {
			return nil, fmt.Errorf("%w: budget of %d expansions", ErrIterationLimit, s.maxIterations)
		}
		bound = nextBound
	}
}

// probe runs one depth-first descent. prevEmpty is the empty cell's position
// before the slide that produced board; sliding it back would only revisit
// the parent, so that branch is pruned. Returns found=true with the winning
// path recorded in s.path, or the minimum f-score that exceeded the bound.
func (s *idaSearch) probe(board *state.State, g, bound int, prevEmpty state.Position) (bool, int, error) {
	s.visited++
	if s.visited%s.solver.cancelInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			return false, 0, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(s.ctx))
		}
	}
	if s.visited > s.solver.maxIterations {
		return false, 0, fmt.Errorf("%w: budget of %d expansions", ErrIterationLimit, s.solver.maxIterations)
	}

	f := g + s.solver.estimator.Estimate(board)
	if f > bound {
		return false, f, nil
	}
	if board.IsSolved() {
		return true, 0, nil
	}

	minExceeded := math.MaxInt
	empty := board.EmptyPos()
	for _, pos := range board.LegalSlides() {
		if pos == prevEmpty {
			continue
		}

		next := board.Clone()
		if err := next.ApplySlide(pos); err != nil {
			return false, 0, err
		}

		s.path = append(s.path, pos)
		found, exceeded, err := s.probe(next, g+1, bound, empty)
		if err != nil {
			return false, 0, err
		}
		if found {
			return true, 0, nil
		}
		s.path = s.path[:len(s.path)-1]

		if exceeded < minExceeded {
			minExceeded = exceeded
		}
	}

	return false, minExceeded, nil
}
