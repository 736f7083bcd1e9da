package state

import "math/rand"

// Zobrist key tables: one 64-bit key per (cell index, cell value) pair.
// Seeded with a fixed constant so the same board always produces the same key
// across processes and sessions.
var zobristKeys [MaxSize * MaxSize][MaxSize * MaxSize]uint64

func init() {
	rng := rand.New(rand.NewSource(0x51D3_7113))
	for cell := range zobristKeys {
		for value := range zobristKeys[cell] {
			zobristKeys[cell][value] = rng.Uint64()
		}
	}
}

// Key reduces the board to a fixed-width integer for visited-set membership
// and open-set deduplication. Boards with identical cells produce identical
// keys; an accidental collision between two distinct boards is possible but
// vanishingly unlikely, and is an accepted approximation rather than a
// correctness guarantee.
func (s *State) Key() uint64 {
	var h uint64
	for i, v := range s.cells {
		h ^= zobristKeys[i][v]
	}
	return h
}
