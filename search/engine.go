package search

import (
	"fmt"

	"github.com/lixenwraith/coinmaze/core"
	"github.com/lixenwraith/coinmaze/maze"
)

// Engine owns one best-first search over a loaded grid: the cell
// arena, the frontier, and path reconstruction. Build a fresh Engine
// per search; a run mutates the arena and the engine is not reusable.
type Engine struct {
	width, height int
	cells         []Cell
	start, goal   core.Point

	frontier frontier
	seq      uint64
}

// New allocates the cell arena for g with every cell undiscovered
func New(g *maze.Grid) *Engine {
	cells := make([]Cell, g.Width*g.Height)
	for i, t := range g.Terrain {
		cells[i] = Cell{Terrain: t, Parent: -1}
	}
	return &Engine{
		width:  g.Width,
		height: g.Height,
		cells:  cells,
		start:  g.Start,
		goal:   g.Goal,
	}
}

// Cell returns the search state at p for inspection after a run
func (e *Engine) Cell(p core.Point) *Cell {
	return &e.cells[e.index(p)]
}

// PathCost returns the accumulated step cost of the found route, 0
// before a successful FindPath
func (e *Engine) PathCost() float64 {
	return e.cells[e.index(e.goal)].G
}

// FindPath runs the priority-ordered expansion loop from start toward
// goal and returns the route start..goal inclusive, or nil when the
// goal is unreachable.
//
// Termination is on goal discovery: the search returns as soon as the
// goal turns up as a neighbor of the cell being expanded, not when
// the goal itself is popped from the frontier.
func (e *Engine) FindPath() []core.Point {
	goalIdx := e.index(e.goal)

	startCell := &e.cells[e.index(e.start)]
	startCell.G = 0
	startCell.H = core.Distance(e.start, e.goal)
	startCell.F = startCell.H
	startCell.Open = true
	e.push(e.index(e.start), startCell.F)

	for len(e.frontier) > 0 {
		entry := e.frontier.pop()
		current := &e.cells[entry.idx]
		if current.Visited {
			continue // Stale lazy-deletion entry
		}
		current.Open = false
		currentPos := e.position(entry.idx)

		for _, n := range core.Neighbors(currentPos, e.width, e.height) {
			nIdx := e.index(n)

			if nIdx == goalIdx {
				goalCell := &e.cells[nIdx]
				goalCell.G = current.G + core.Distance(currentPos, n)
				goalCell.F = goalCell.G
				goalCell.Parent = entry.idx
				return e.reconstruct(nIdx)
			}

			neighbor := &e.cells[nIdx]
			if neighbor.Terrain == maze.Wall {
				continue
			}

			g := current.G + core.Distance(currentPos, n)
			switch {
			case neighbor.Open:
				if f := g + neighbor.H; f < neighbor.F {
					neighbor.G = g
					neighbor.F = f
					neighbor.Parent = entry.idx
					// Fresh entry at the lower key; the superseded one
					// is skipped on pop by the Visited guard
					e.push(nIdx, f)
				}
			case !neighbor.Visited:
				neighbor.G = g
				neighbor.H = core.Distance(n, e.goal)
				neighbor.F = g + neighbor.H
				neighbor.Parent = entry.idx
				neighbor.Open = true
				e.push(nIdx, neighbor.F)
			}
			// Visited neighbors are final, never re-opened
		}

		current.Visited = true
	}

	return nil
}

func (e *Engine) push(idx int, f float64) {
	e.frontier.push(frontierEntry{idx: idx, f: f, seq: e.seq})
	e.seq++
}

func (e *Engine) index(p core.Point) int {
	if !core.InBounds(p, e.width, e.height) {
		panic(fmt.Sprintf("search: position %d,%d outside %dx%d grid", p.X, p.Y, e.width, e.height))
	}
	return p.Y*e.width + p.X
}

func (e *Engine) position(idx int) core.Point {
	if idx < 0 || idx >= len(e.cells) {
		panic(fmt.Sprintf("search: arena index %d outside %d cells", idx, len(e.cells)))
	}
	return core.Point{X: idx % e.width, Y: idx / e.width}
}

// reconstruct walks parent links from idx back to the start cell and
// reverses the result
func (e *Engine) reconstruct(idx int) []core.Point {
	path := make([]core.Point, 0, 16)
	for i := idx; i >= 0; i = e.cells[i].Parent {
		if len(path) > len(e.cells) {
			panic("search: parent chain longer than arena")
		}
		path = append(path, e.position(i))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
