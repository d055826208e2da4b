package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/coinmaze/core"
)

// Config controls stochastic maze generation
type Config struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze/tree) to 1.0 (no dead ends).
	// Higher values add cycles; the no-plaza/no-pillar constraints
	// take precedence.
	Braiding float64

	// CoinDensity: probability that an open floor cell carries a
	// coin digit. Clamped to [0, 1].
	CoinDensity float64

	Seed int64 // 0 = time-based
}

// Generate creates a solvable-by-construction coin maze. Dimensions
// round down to odd so the wall lattice stays intact. Start lands at
// the top-left room, goal at the bottom-right room.
func Generate(cfg Config) *Grid {
	rows := ensureOdd(cfg.Height)
	cols := ensureOdd(cfg.Width)

	// Filled with walls; the backtracker carves passages
	walls := make([]bool, rows*cols)
	for i := range walls {
		walls[i] = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := core.Point{X: 1, Y: 1}
	goal := core.Point{X: cols - 2, Y: rows - 2}

	carve(walls, cols, rows, start, rng)
	if cfg.Braiding > 0 {
		braid(walls, cols, rows, cfg.Braiding, rng)
	}

	// The backtracker reaches every odd-coordinate room, so start and
	// goal are connected without a separate solve pass
	walls[start.Y*cols+start.X] = false
	walls[goal.Y*cols+goal.X] = false

	g := &Grid{
		Width:   cols,
		Height:  rows,
		Terrain: make([]rune, rows*cols),
		Start:   start,
		Goal:    goal,
	}

	density := cfg.CoinDensity
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}

	for i, isWall := range walls {
		switch {
		case isWall:
			g.Terrain[i] = Wall
		case density > 0 && rng.Float64() < density:
			g.Terrain[i] = rune('1' + rng.Intn(9))
		default:
			g.Terrain[i] = Floor
		}
	}
	g.Terrain[start.Y*cols+start.X] = Start
	g.Terrain[goal.Y*cols+goal.X] = Goal
	return g
}

// --- Core generation ---

// carve runs an iterative recursive backtracker over the odd-node
// lattice, producing a uniform spanning tree of rooms
func carve(walls []bool, cols, rows int, start core.Point, rng *rand.Rand) {
	stack := []core.Point{start}
	walls[start.Y*cols+start.X] = false

	dirs := [4][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([][2]int, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d[0], curr.Y+d[1]
			// Leave a 1-cell wall border
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && walls[ny*cols+nx] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		walls[(curr.Y+d[1]/2)*cols+curr.X+d[0]/2] = false
		next := core.Point{X: curr.X + d[0], Y: curr.Y + d[1]}
		walls[next.Y*cols+next.X] = false
		stack = append(stack, next)
	}
}

// braid removes walls at dead ends with the given probability,
// introducing cycles while keeping the topology constraints
func braid(walls []bool, cols, rows int, probability float64, rng *rand.Rand) {
	ortho := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jump := [4][2]int{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if walls[y*cols+x] {
				continue
			}

			// Dead end: exactly one open orthogonal neighbor
			exits := 0
			for _, d := range ortho {
				if !walls[(y+d[1])*cols+x+d[0]] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]core.Point, 0, 4)
			for _, jd := range jump {
				nx, ny := x+jd[0], y+jd[1]
				wx, wy := x+jd[0]/2, y+jd[1]/2
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if !walls[ny*cols+nx] && walls[wy*cols+wx] && canRemoveWall(walls, cols, rows, wx, wy) {
					candidates = append(candidates, core.Point{X: wx, Y: wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				walls[c.Y*cols+c.X] = false
			}
		}
	}
}

// canRemoveWall rejects removals that create prohibited topology:
// plazas (2x2 open areas) or pillars (isolated wall cells)
func canRemoveWall(walls []bool, cols, rows, x, y int) bool {
	open := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false // Out of bounds counts as wall
		}
		return !walls[ty*cols+tx]
	}

	// Plaza check: the four 2x2 quadrants containing (x,y)
	if open(x-1, y-1) && open(x, y-1) && open(x-1, y) {
		return false
	}
	if open(x, y-1) && open(x+1, y-1) && open(x+1, y) {
		return false
	}
	if open(x-1, y) && open(x-1, y+1) && open(x, y+1) {
		return false
	}
	if open(x+1, y) && open(x, y+1) && open(x+1, y+1) {
		return false
	}

	// Pillar check: no orthogonal wall neighbor may lose its last
	// wall connection when (x,y) opens
	ortho := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range ortho {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || !walls[ny*cols+nx] {
			continue
		}
		connections := 0
		for _, d2 := range ortho {
			nnx, nny := nx+d2[0], ny+d2[1]
			if nnx == x && nny == y {
				continue // About to become a passage
			}
			if nnx >= 0 && nnx < cols && nny >= 0 && nny < rows && walls[nny*cols+nnx] {
				connections++
			}
		}
		if connections == 0 {
			return false
		}
	}

	return true
}

func ensureOdd(n int) int {
	if n < 5 {
		return 5
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
