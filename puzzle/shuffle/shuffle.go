// Package shuffle scrambles boards by applying random legal slides. Because
// every step is a legal slide from the solved configuration, a shuffled board
// is always solvable. Difficulty levels target an entropy threshold measured
// by the linear-conflict estimator, scaled to the grid size.
package shuffle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/tilelabs/slider/puzzle/heuristic"
	"github.com/tilelabs/slider/puzzle/state"
)

// ErrUnknownDifficulty is returned for a difficulty outside the known set.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects how scrambled a shuffled board should be.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Parse maps a difficulty name to its Difficulty.
func Parse(name string) (Difficulty, error) {
	switch Difficulty(name) {
	case Easy, Medium, Hard:
		return Difficulty(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
	}
}

// Difficulties lists the known difficulty levels.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// threshold is the linear-conflict score a shuffle aims for, scaled by the
// grid size so a hard 4x4 and a hard 8x8 feel comparably scrambled.
func (d Difficulty) threshold(size int) (int, error) {
	switch d {
	case Easy:
		return size, nil
	case Medium:
		return 2 * size, nil
	case Hard:
		return 3 * size, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
	}
}

// Shuffler applies random slide walks using its own random source.
type Shuffler struct {
	rng       *rand.Rand
	estimator heuristic.Estimator
}

// New creates a Shuffler seeded from seed. Equal seeds reproduce walks.
func New(seed int64) *Shuffler {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a Shuffler over a caller-supplied random source.
func NewWithRand(rng *rand.Rand) *Shuffler {
	est, _ := heuristic.New(heuristic.LinearConflict)
	return &Shuffler{rng: rng, estimator: est}
}

// Shuffle slides tiles at random until board's linear-conflict score reaches
// the difficulty threshold, never undoing the previous slide. It mutates
// board in place and returns the number of slides applied. A safety cap on
// the walk length keeps pathological small grids from looping forever.
func (s *Shuffler) Shuffle(board *state.State, d Difficulty) (int, error) {
	target, err := d.threshold(board.Size())
	if err != nil {
		return 0, err
	}

	maxSteps := board.Size() * board.Size() * 200
	steps := 0
	prevEmpty := state.Position{Row: -1, Col: -1}
	for s.estimator.Estimate(board) < target && steps < maxSteps {
		_, prevEmpty = s.step(board, prevEmpty)
		steps++
	}
	return steps, nil
}

// ShuffleN applies exactly n random slides with no immediate backtrack and
// returns the slide positions in order.
func (s *Shuffler) ShuffleN(board *state.State, n int) []state.Position {
	moves := make([]state.Position, 0, n)
	prevEmpty := state.Position{Row: -1, Col: -1}
	for i := 0; i < n; i++ {
		pick, empty := s.step(board, prevEmpty)
		prevEmpty = empty
		moves = append(moves, pick)
	}
	return moves
}

// step applies one random legal slide, excluding avoid (the empty cell's
// position before the previous slide, whose tile would undo it). It returns
// the slid position and the empty position from before this slide.
func (s *Shuffler) step(board *state.State, avoid state.Position) (state.Position, state.Position) {
	slides := board.LegalSlides()
	candidates := slides[:0:0]
	for _, pos := range slides {
		if pos != avoid {
			candidates = append(candidates, pos)
		}
	}
	pick := candidates[s.rng.Intn(len(candidates))]
	empty := board.EmptyPos()
	// Positions returned by LegalSlides are always legal to slide.
	_ = board.ApplySlide(pick)
	return pick, empty
}
