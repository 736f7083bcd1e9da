package state

// Solvable reports whether the board can reach the solved configuration
// through legal slides. It uses the permutation-parity rule: on odd-width
// grids the tile permutation must have an even number of inversions; on
// even-width grids the inversion count plus the empty cell's row counted from
// the bottom (1-based) must be odd.
//
// Boards produced by shuffling the solved state with legal slides always
// satisfy this; the check exists for boards supplied from the outside.
func (s *State) Solvable() bool {
	inversions := 0
	flat := make([]int, 0, len(s.cells)-1)
	for _, v := range s.cells {
		if v != emptyCell {
			flat = append(flat, int(v))
		}
	}
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				inversions++
			}
		}
	}

	if s.size%2 == 1 {
		return inversions%2 == 0
	}
	rowFromBottom := s.size - s.empty.Row
	return (inversions+rowFromBottom)%2 == 1
}
