package main

import (
	"math/rand"
)

// GreedyStrategy picks the legal click that most reduces the board's total
// Manhattan distance, with a short memory of recent boards to avoid cycling
// and a random tie-break so restarts explore different lines. It makes no
// optimality promise; it exists as a server-independent fallback when the
// solver endpoint is out of budget for very large boards.
type GreedyStrategy struct {
	rng    *rand.Rand
	recent map[string]int
}

func NewGreedyStrategy(seed int64) *GreedyStrategy {
	return &GreedyStrategy{
		rng:    rand.New(rand.NewSource(seed)),
		recent: make(map[string]int),
	}
}

// Reset clears the cycle memory between attempts.
func (g *GreedyStrategy) Reset() {
	g.recent = make(map[string]int)
}

// NextClick returns the next cell to click, or false when every candidate
// leads back to a board seen too often this attempt.
func (g *GreedyStrategy) NextClick(board *BoardState) (Position, bool) {
	candidates := legalClicks(board)
	if len(candidates) == 0 {
		return Position{}, false
	}

	g.recent[boardKey(board)]++

	type scored struct {
		click Position
		score int
	}

	var best []scored
	bestScore := 1 << 30

	for _, click := range candidates {
		after := applyClick(board, click)
		key := boardKey(after)

		// Penalize boards we keep returning to.
		score := manhattanSum(after) + 3*g.recent[key]

		if score < bestScore {
			bestScore = score
			best = best[:0]
			best = append(best, scored{click, score})
		} else if score == bestScore {
			best = append(best, scored{click, score})
		}
	}

	pick := best[g.rng.Intn(len(best))]
	return pick.click, true
}

// legalClicks lists every cell sharing a row or column with the empty cell.
func legalClicks(board *BoardState) []Position {
	var clicks []Position
	empty := board.EmptyPos

	for col := 0; col < board.GridSize; col++ {
		if col != empty.Col {
			clicks = append(clicks, Position{Row: empty.Row, Col: col})
		}
	}
	for row := 0; row < board.GridSize; row++ {
		if row != empty.Row {
			clicks = append(clicks, Position{Row: row, Col: empty.Col})
		}
	}

	return clicks
}

// applyClick simulates a chain click on a copy of the board.
func applyClick(board *BoardState, click Position) *BoardState {
	after := &BoardState{
		GridSize: board.GridSize,
		EmptyPos: board.EmptyPos,
		Grid:     make([][]int, len(board.Grid)),
	}
	for i, row := range board.Grid {
		after.Grid[i] = append([]int(nil), row...)
	}

	empty := after.EmptyPos
	switch {
	case click.Row == empty.Row:
		step := 1
		if click.Col < empty.Col {
			step = -1
		}
		for col := empty.Col; col != click.Col; col += step {
			after.Grid[empty.Row][col] = after.Grid[empty.Row][col+step]
		}
		after.Grid[click.Row][click.Col] = 0
	case click.Col == empty.Col:
		step := 1
		if click.Row < empty.Row {
			step = -1
		}
		for row := empty.Row; row != click.Row; row += step {
			after.Grid[row][empty.Col] = after.Grid[row+step][empty.Col]
		}
		after.Grid[click.Row][click.Col] = 0
	}

	after.EmptyPos = click
	return after
}

// manhattanSum totals each tile's distance to its goal cell.
func manhattanSum(board *BoardState) int {
	size := board.GridSize
	sum := 0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			tile := board.Grid[row][col]
			if tile == 0 {
				continue
			}
			goalRow := (tile - 1) / size
			goalCol := (tile - 1) % size
			sum += abs(row-goalRow) + abs(col-goalCol)
		}
	}
	return sum
}

func boardKey(board *BoardState) string {
	buf := make([]byte, 0, board.GridSize*board.GridSize)
	for _, row := range board.Grid {
		for _, tile := range row {
			buf = append(buf, byte(tile))
		}
	}
	return string(buf)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
