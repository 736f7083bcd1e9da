package solver

// openEntry queues an arena index with the scores it was inserted under.
// Scores are copied into the entry so reordering never touches the arena.
type openEntry struct {
	f   int
	h   int
	idx int
}

// openSet is a binary min-heap over live node indices ordered by f = g + h.
// Equal f-scores are broken by smaller h, preferring nodes nearer the goal.
// It implements container/heap.Interface.
type openSet []openEntry

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].h < o[j].h
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x any) {
	*o = append(*o, x.(openEntry))
}

func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	entry := old[n-1]
	*o = old[:n-1]
	return entry
}
