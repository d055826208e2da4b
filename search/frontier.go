package search

// frontierEntry references an open cell by arena index. seq is a
// monotonically increasing insertion counter: ties on f break toward
// the earlier insertion, giving deterministic ordering independent of
// cell identity.
type frontierEntry struct {
	idx int
	f   float64
	seq uint64
}

func (a frontierEntry) less(b frontierEntry) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// frontier is a binary min-heap over (f, seq). Cost improvements
// re-push a fresh entry rather than re-keying in place; stale entries
// are skipped on pop via the cell's Visited guard.
type frontier []frontierEntry

func (h *frontier) push(e frontierEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].less((*h)[i]) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *frontier) pop() frontierEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].less((*h)[left]) {
			smallest = right
		}
		if (*h)[i].less((*h)[smallest]) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}
