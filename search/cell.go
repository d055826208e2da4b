package search

// Cell holds the per-position search state plus the static terrain
// token it was built from. Cells live in a flat arena indexed
// y*width+x and mutate only inside the expansion loop.
//
// Lifecycle is monotonic: undiscovered → open → visited. A visited
// cell's G is final and the cell is never re-examined.
type Cell struct {
	Terrain rune

	G float64 // Best known path cost from start; meaningless until discovered
	H float64 // Heuristic distance to goal, computed once on discovery
	F float64 // G + H, the frontier priority key

	// Arena index of the predecessor on the best known path, -1 for
	// none. Acyclic: only ever set to the cell currently being
	// expanded, and expansion order is cost-non-decreasing.
	Parent int

	Open    bool // Pending in the frontier
	Visited bool // Fully expanded
}
