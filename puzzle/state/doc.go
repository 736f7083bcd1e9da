// Package state models the board of a sliding-tile puzzle.
//
// A State is an N×N grid holding the tiles 1..N²−1 plus exactly one empty
// cell. The package implements:
//   - Board construction (solved order or explicit cells) with size and
//     permutation validation
//   - Elementary slides: one tile moving into the adjacent empty cell
//   - Legal-move enumeration driven by the empty cell's coordinates
//   - Chain-move resolution: a click anywhere on the empty cell's row or
//     column expands into an ordered sequence of elementary slides
//   - A fixed-width state key for hash-based deduplication
//   - A permutation-parity solvability check
//
// Usage:
//
//	board, err := state.New(4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := board.ApplySlide(state.Position{Row: 3, Col: 2}); err != nil {
//		// not adjacent to the empty cell
//	}
//
//	for _, pos := range board.LegalSlides() {
//		next := board.Clone()
//		next.ApplySlide(pos)
//	}
//
// State is not safe for concurrent mutation; callers that share a board across
// goroutines must Clone it or serialize access.
package state
