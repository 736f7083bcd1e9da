package solver

import (
	"container/heap"
	"context"
	"fmt"
	"time"

	"github.com/tilelabs/slider/puzzle/heuristic"
	"github.com/tilelabs/slider/puzzle/state"
)

const (
	// DefaultMaxIterations bounds the number of node expansions per Solve
	// call. Generous enough for every solvable 4×4 board under the default
	// heuristic.
	DefaultMaxIterations = 1_000_000

	// defaultCancelInterval is how many expansions pass between context
	// checks. Cancellation is cooperative: the loop only looks at the
	// context on these boundaries.
	defaultCancelInterval = 1000

	// arenaCapacityHint presizes the node store to avoid early regrowth.
	arenaCapacityHint = 4096
)

// Options configures a searcher. The zero value selects the LinearConflict
// heuristic and the default budget.
type Options struct {
	// Heuristic selects the distance estimator. Empty means LinearConflict,
	// the strongest estimator with a proven admissibility bound.
	Heuristic heuristic.Kind

	// MaxIterations caps node expansions; 0 means DefaultMaxIterations.
	MaxIterations int

	// CancelCheckInterval is the expansion count between context checks;
	// 0 means the default of 1000.
	CancelCheckInterval int
}

// Stats describes the work one search performed.
type Stats struct {
	NodesExpanded  int           `json:"nodes_expanded"`
	NodesGenerated int           `json:"nodes_generated"`
	Duration       time.Duration `json:"duration_ns"`
}

// Solution is an optimal answer: the elementary slides that transform the
// start board into the solved board, in execution order.
type Solution struct {
	Moves  []state.Position `json:"moves"`
	Length int              `json:"length"`
	Stats  Stats            `json:"stats"`
}

// Solver runs best-first A* searches. It is stateless between calls and safe
// for concurrent use.
type Solver struct {
	estimator      heuristic.Estimator
	maxIterations  int
	cancelInterval int
}

// New creates a solver from opts.
func New(opts Options) (*Solver, error) {
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

	return &Solver{
		estimator:      est,
		maxIterations:  maxIterations,
		cancelInterval: cancelInterval,
	}, nil
}

// Heuristic returns the kind of estimator the solver searches with.
func (s *Solver) Heuristic() heuristic.Kind {
	return s.estimator.Kind()
}

// Solve finds a minimum-length slide sequence from start to the solved
// configuration. The start board is not mutated. It returns ErrUnsolvable
// when the state graph is exhausted, ErrIterationLimit when the expansion
// budget runs out, and ErrCancelled when ctx is cancelled.
func (s *Solver) Solve(ctx context.Context, start *state.State) (*Solution, error) {
	began := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
	}
	if start.IsSolved() {
		return &Solution{Stats: Stats{Duration: time.Since(began)}}, nil
	}

	nodes := newArena(arenaCapacityHint)
	open := make(openSet, 0, arenaCapacityHint)
	closed := make(map[uint64]struct{})
	bestG := make(map[uint64]int)

	rootBoard := start.Clone()
	root := node{
		board:  rootBoard,
		key:    rootBoard.Key(),
		g:      0,
		h:      s.estimator.Estimate(rootBoard),
		parent: noParent,
	}
	rootIdx := nodes.alloc(root)
	heap.Push(&open, openEntry{f: root.f(), h: root.h, idx: rootIdx})
	bestG[root.key] = 0

	iterations := 0
	for open.Len() > 0 {
		entry := heap.Pop(&open).(openEntry)
		iterations++

		if iterations%s.cancelInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
			}
		}
		if iterations > s.maxIterations {
			return nil, fmt.Errorf("%w: budget of %d expansions", ErrIterationLimit, s.maxIterations)
		}

		current := nodes.at(entry.idx)
		if current.board.IsSolved() {
			return &Solution{
				Moves:  nodes.path(entry.idx),
				Length: current.g,
				Stats: Stats{
					NodesExpanded:  iterations,
					NodesGenerated: nodes.len(),
					Duration:       time.Since(began),
				},
			}, nil
		}

		// A state can be queued more than once before its first expansion;
		// later pops are stale.
		if _, done := closed[current.key]; done {
			continue
		}
		closed[current.key] = struct{}{}

		for _, pos := range current.board.LegalSlides() {
			s.expand(nodes, &open, closed, bestG, entry.idx, pos)
		}
	}

	return nil, fmt.Errorf("%w: open set exhausted after %d expansions", ErrUnsolvable, iterations)
}

// expand applies one slide to the node at parentIdx and queues the resulting
// state unless a path at least as short already reached it.
func (s *Solver) expand(nodes *arena, open *openSet, closed map[uint64]struct{}, bestG map[uint64]int, parentIdx int, pos state.Position) {
	parent := nodes.at(parentIdx)
	board := parent.board.Clone()
	if err := board.ApplySlide(pos); err != nil {
		// LegalSlides only yields adjacent cells; a rejection here would be a
		// board bug, not a search condition.
		return
	}

	key := board.Key()
	if _, done := closed[key]; done {
		return
	}
	g := parent.g + 1
	if prev, seen := bestG[key]; seen && prev <= g {
		return
	}
	bestG[key] = g

	next := node{
		board:  board,
		key:    key,
		g:      g,
		h:      s.estimator.Estimate(board),
		parent: parentIdx,
		move:   pos,
	}
	idx := nodes.alloc(next)
	heap.Push(open, openEntry{f: next.f(), h: next.h, idx: idx})
}
