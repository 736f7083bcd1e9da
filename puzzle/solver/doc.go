// Package solver finds minimum-length slide sequences from a shuffled board
// back to the solved configuration.
//
// Two optimal searchers are provided:
//
//   - Solver: best-first A* search. Nodes live in a single growable arena
//     owned by the call, referenced by index rather than pointer, so memory
//     stays bounded by the number of distinct states explored and is released
//     in full when Solve returns. A visited map keyed by the board's 64-bit
//     key prunes re-expansion.
//   - IDAStar: iterative-deepening A*. Depth-first probes under a growing
//     f-bound; O(depth) memory at the cost of re-expanding shallow nodes.
//     Same optimality guarantee and the same error contract.
//
// Every search is a single-threaded, side-effect-free computation: one call,
// one arena, one result. Concurrent Solve calls on different boards need no
// locking. The engine never spawns goroutines; callers wanting a responsive
// surface run Solve on their own goroutine and cancel through the context,
// which the loop observes at a fixed expansion interval.
//
//	sv, err := solver.New(solver.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	sol, err := sv.Solve(ctx, board)
//	if err != nil {
//		// solver.ErrIterationLimit, ErrUnsolvable or ErrCancelled
//	}
//	for _, pos := range sol.Moves {
//		board.ApplySlide(pos)
//	}
package solver
