package solver

import "github.com/tilelabs/slider/puzzle/state"

// noParent marks the root node's parent index.
const noParent = -1

// node is one explored search state. Nodes reference their parent by arena
// index, never by pointer: the arena exclusively owns every node allocated
// during a Solve call, so parent chains cannot cycle or share exponentially
// and the whole store is dropped at once when the call returns.
type node struct {
	board  *state.State
	key    uint64
	g      int
	h      int
	parent int
	move   state.Position // slide that produced this state; unset on the root
}

func (n *node) f() int {
	return n.g + n.h
}

// arena is the growable node store for a single search.
type arena struct {
	nodes []node
}

func newArena(capacityHint int) *arena {
	return &arena{nodes: make([]node, 0, capacityHint)}
}

// alloc appends n and returns its index.
func (a *arena) alloc(n node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

func (a *arena) at(i int) *node {
	return &a.nodes[i]
}

func (a *arena) len() int {
	return len(a.nodes)
}

// path reconstructs the slide sequence that leads from the root to goalIdx by
// walking parent indices, then reverses it into forward execution order. Its
// length equals the goal node's g-score.
func (a *arena) path(goalIdx int) []state.Position {
	var moves []state.Position
	for idx := goalIdx; a.at(idx).parent != noParent; idx = a.at(idx).parent {
		moves = append(moves, a.at(idx).move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
