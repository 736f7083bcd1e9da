package state

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, size int) *State {
	t.Helper()
	s, err := New(size)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", size, err)
	}
	return s
}

func TestNewSolved(t *testing.T) {
	s := mustNew(t, 4)

	if !s.IsSolved() {
		t.Error("new board should be solved")
	}
	if got := s.EmptyPos(); got != (Position{Row: 3, Col: 3}) {
		t.Errorf("empty cell at %v, want (3,3)", got)
	}
	tile, ok := s.TileAt(Position{Row: 0, Col: 0})
	if !ok || tile.Value != 1 {
		t.Errorf("tile at (0,0) = %v, want value 1", tile)
	}
	if _, ok := s.TileAt(Position{Row: 3, Col: 3}); ok {
		t.Error("expected no tile at the empty cell")
	}
}

func TestNewSizeOutOfRange(t *testing.T) {
	for _, size := range []int{-1, 0, 2, 16, 100} {
		if _, err := New(size); !errors.Is(err, ErrSizeOutOfRange) {
			t.Errorf("New(%d) error = %v, want ErrSizeOutOfRange", size, err)
		}
	}
	for _, size := range []int{MinSize, 5, MaxSize} {
		if _, err := New(size); err != nil {
			t.Errorf("New(%d) failed: %v", size, err)
		}
	}
}

func TestNewFromCells(t *testing.T) {
	s, err := NewFromCells(3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	if err != nil {
		t.Fatalf("NewFromCells failed: %v", err)
	}
	if got := s.EmptyPos(); got != (Position{Row: 2, Col: 1}) {
		t.Errorf("empty cell at %v, want (2,1)", got)
	}
	if s.IsSolved() {
		t.Error("board should not be solved")
	}
}

func TestNewFromCellsRejectsBadContents(t *testing.T) {
	cases := []struct {
		name  string
		size  int
		cells []int
	}{
		{"wrong length", 3, []int{1, 2, 3}},
		{"duplicate tile", 3, []int{1, 1, 3, 4, 5, 6, 7, 8, 0}},
		{"no empty cell", 3, []int{1, 2, 3, 4, 5, 6, 7, 8, 8}},
		{"value out of range", 3, []int{1, 2, 3, 4, 5, 6, 7, 9, 0}},
		{"negative value", 3, []int{1, 2, 3, 4, 5, 6, 7, -1, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewFromCells(tc.size, tc.cells); !errors.Is(err, ErrInvalidCells) {
				t.Errorf("error = %v, want ErrInvalidCells", err)
			}
		})
	}
}

func TestApplySlide(t *testing.T) {
	s := mustNew(t, 4)

	if err := s.ApplySlide(Position{Row: 3, Col: 2}); err != nil {
		t.Fatalf("slide failed: %v", err)
	}
	if got := s.EmptyPos(); got != (Position{Row: 3, Col: 2}) {
		t.Errorf("empty cell at %v, want (3,2)", got)
	}
	tile, ok := s.TileAt(Position{Row: 3, Col: 3})
	if !ok || tile.Value != 15 {
		t.Errorf("tile at (3,3) = %v, want value 15", tile)
	}
	if s.IsSolved() {
		t.Error("board should no longer be solved")
	}
}

func TestApplySlideRejectsNonAdjacent(t *testing.T) {
	s := mustNew(t, 4)

	for _, pos := range []Position{
		{Row: 0, Col: 0},
		{Row: 2, Col: 2}, // diagonal neighbor of the empty cell
		{Row: 3, Col: 3}, // the empty cell itself
		{Row: 4, Col: 3}, // outside the grid
	} {
		if err := s.ApplySlide(pos); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("ApplySlide(%v) error = %v, want ErrIllegalMove", pos, err)
		}
	}
	if !s.IsSolved() {
		t.Error("rejected slides must not mutate the board")
	}
}

func TestApplySlideDeterministic(t *testing.T) {
	a := mustNew(t, 3)
	b := mustNew(t, 3)

	move := Position{Row: 2, Col: 1}
	if err := a.ApplySlide(move); err != nil {
		t.Fatal(err)
	}
	if err := b.ApplySlide(move); err != nil {
		t.Fatal(err)
	}
	if a.Key() != b.Key() {
		t.Error("same board and move must produce identical results")
	}
}

func TestLegalSlidesBranchingFactor(t *testing.T) {
	cases := []struct {
		name  string
		empty Position
		want  int
	}{
		{"corner", Position{Row: 0, Col: 0}, 2},
		{"edge", Position{Row: 0, Col: 1}, 3},
		{"interior", Position{Row: 1, Col: 1}, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustNew(t, 4)
			// Walk the empty cell to the position under test.
			for s.EmptyPos() != tc.empty {
				cur := s.EmptyPos()
				next := cur
				if cur.Row > tc.empty.Row {
					next.Row--
				} else if cur.Col > tc.empty.Col {
					next.Col--
				}
				if err := s.ApplySlide(next); err != nil {
					t.Fatalf("walk failed: %v", err)
				}
			}
			if got := len(s.LegalSlides()); got != tc.want {
				t.Errorf("LegalSlides() returned %d moves, want %d", got, tc.want)
			}
		})
	}
}

func TestResolveChainHorizontal(t *testing.T) {
	s := mustNew(t, 4) // empty at (3,3)

	moves, err := s.ResolveChain(Position{Row: 3, Col: 0})
	if err != nil {
		t.Fatalf("ResolveChain failed: %v", err)
	}
	want := []Position{{Row: 3, Col: 2}, {Row: 3, Col: 1}, {Row: 3, Col: 0}}
	if len(moves) != len(want) {
		t.Fatalf("got %d slides, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("slide %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestResolveChainVertical(t *testing.T) {
	s := mustNew(t, 4)

	moves, err := s.ResolveChain(Position{Row: 0, Col: 3})
	if err != nil {
		t.Fatalf("ResolveChain failed: %v", err)
	}
	want := []Position{{Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 0, Col: 3}}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("slide %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestResolveChainAdjacentIsSingleSlide(t *testing.T) {
	s := mustNew(t, 4)

	moves, err := s.ResolveChain(Position{Row: 3, Col: 2})
	if err != nil {
		t.Fatalf("ResolveChain failed: %v", err)
	}
	if len(moves) != 1 || moves[0] != (Position{Row: 3, Col: 2}) {
		t.Errorf("got %v, want single slide (3,2)", moves)
	}
}

func TestResolveChainRejectsOffLine(t *testing.T) {
	s := mustNew(t, 4)

	if _, err := s.ResolveChain(Position{Row: 1, Col: 1}); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("error = %v, want ErrIllegalMove", err)
	}
	if _, err := s.ResolveChain(s.EmptyPos()); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("clicking the empty cell: error = %v, want ErrIllegalMove", err)
	}
}

func TestApplyChainMovesEmptyToTarget(t *testing.T) {
	s := mustNew(t, 4)

	moves, err := s.ApplyChain(Position{Row: 3, Col: 0})
	if err != nil {
		t.Fatalf("ApplyChain failed: %v", err)
	}
	if len(moves) != 3 {
		t.Errorf("applied %d slides, want 3", len(moves))
	}
	if got := s.EmptyPos(); got != (Position{Row: 3, Col: 0}) {
		t.Errorf("empty cell at %v, want (3,0)", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustNew(t, 3)
	c := s.Clone()

	if err := c.ApplySlide(Position{Row: 2, Col: 1}); err != nil {
		t.Fatal(err)
	}
	if !s.IsSolved() {
		t.Error("mutating a clone must not affect the original")
	}
	if s.Key() == c.Key() {
		t.Error("diverged boards should have different keys")
	}
}

func TestKeyStability(t *testing.T) {
	a := mustNew(t, 4)
	b := mustNew(t, 4)

	if a.Key() != b.Key() {
		t.Error("identical boards must produce identical keys")
	}
	if a.Key() != a.Key() {
		t.Error("key must be deterministic")
	}
}

func TestKeyUniquenessSample(t *testing.T) {
	// Distinct states reached by a fixed walk must all produce distinct keys.
	s := mustNew(t, 4)
	seen := map[uint64]string{}
	seen[s.Key()] = s.String()

	walk := []Position{
		{Row: 3, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 1},
		{Row: 1, Col: 2}, {Row: 0, Col: 2}, {Row: 0, Col: 1}, {Row: 1, Col: 1},
		{Row: 1, Col: 0}, {Row: 2, Col: 0},
	}
	for i, pos := range walk {
		if err := s.ApplySlide(pos); err != nil {
			t.Fatalf("walk step %d: %v", i, err)
		}
		key := s.Key()
		if prev, dup := seen[key]; dup {
			t.Fatalf("key collision at step %d between:\n%s\nand:\n%s", i, prev, s.String())
		}
		seen[key] = s.String()
	}
}

func TestSolvable(t *testing.T) {
	if !mustNew(t, 3).Solvable() {
		t.Error("solved 3×3 must be solvable")
	}
	if !mustNew(t, 4).Solvable() {
		t.Error("solved 4×4 must be solvable")
	}

	// Swapping two tiles flips parity, making the board unreachable.
	odd, err := NewFromCells(3, []int{2, 1, 3, 4, 5, 6, 7, 8, 0})
	if err != nil {
		t.Fatal(err)
	}
	if odd.Solvable() {
		t.Error("3×3 with tiles 1 and 2 swapped must be unsolvable")
	}

	even, err := NewFromCells(4, []int{
		2, 1, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if even.Solvable() {
		t.Error("4×4 with tiles 1 and 2 swapped must be unsolvable")
	}
}

func TestSolvablePreservedBySlides(t *testing.T) {
	s := mustNew(t, 4)
	walk := []Position{
		{Row: 3, Col: 2}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 1, Col: 3},
		{Row: 1, Col: 2}, {Row: 0, Col: 2},
	}
	for i, pos := range walk {
		if err := s.ApplySlide(pos); err != nil {
			t.Fatalf("walk step %d: %v", i, err)
		}
		if !s.Solvable() {
			t.Fatalf("board became unsolvable after legal slide %d", i)
		}
	}
}
