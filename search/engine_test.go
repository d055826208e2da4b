package search

import (
	"math"
	"strings"
	"testing"

	"github.com/lixenwraith/coinmaze/core"
	"github.com/lixenwraith/coinmaze/maze"
)

func mustParse(t *testing.T, text string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

func solve(t *testing.T, text string) (*maze.Grid, *Engine, []core.Point) {
	t.Helper()
	g := mustParse(t, text)
	e := New(g)
	return g, e, e.FindPath()
}

func checkEndpoints(t *testing.T, g *maze.Grid, path []core.Point) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("Expected a route, got none")
	}
	if path[0] != g.Start {
		t.Errorf("Expected path to begin at start %v, got %v", g.Start, path[0])
	}
	if path[len(path)-1] != g.Goal {
		t.Errorf("Expected path to end at goal %v, got %v", g.Goal, path[len(path)-1])
	}
}

func TestRoutesAroundCenterWall(t *testing.T) {
	// Wall in the center; the engine must route around it. With 8-way
	// movement the optimal detour cuts two diagonals, giving a 4-cell
	// route (a cardinal-only walk would need 5).
	g, _, path := solve(t, "S..\n.X.\n..G\n")
	checkEndpoints(t, g, path)

	if len(path) != 4 {
		t.Errorf("Expected 4-cell route, got %d: %v", len(path), path)
	}
	for _, p := range path {
		if g.At(p.X, p.Y) == maze.Wall {
			t.Errorf("Route passes through wall at %v", p)
		}
	}
}

func TestCorridorCollectsAllCoins(t *testing.T) {
	g, _, path := solve(t, "S123G\n")
	checkEndpoints(t, g, path)

	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}
	if len(path) != len(want) {
		t.Fatalf("Expected %d cells, got %d: %v", len(want), len(path), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("Expected cell %d to be %v, got %v", i, want[i], path[i])
		}
	}

	if coins := CoinTotal(g, path); coins != 6 {
		t.Errorf("Expected 6 coins, got %d", coins)
	}
}

func TestDiagonalDetourAroundWall(t *testing.T) {
	// Goal two cells from start with a wall directly between; the only
	// way around is through the open row below
	g, e, path := solve(t, "SXG\n...\n")
	checkEndpoints(t, g, path)

	want := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}
	if len(path) != len(want) {
		t.Fatalf("Expected %d cells, got %d: %v", len(want), len(path), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("Expected cell %d to be %v, got %v", i, want[i], path[i])
		}
	}

	step := e.Cell(path[1]).G
	if math.Abs(step-math.Sqrt2) > 1e-9 {
		t.Errorf("Expected diagonal step cost ≈ 1.414, got %v", step)
	}
}

func TestEnclosedStartIsUnreachable(t *testing.T) {
	g, _, path := solve(t, "SX.\nXX.\n..G\n")
	if path != nil {
		t.Errorf("Expected no route, got %v", path)
	}
	if coins := CoinTotal(g, path); coins != 0 {
		t.Errorf("Expected 0 coins for unreachable goal, got %d", coins)
	}
}

func TestStepCostsMatchEuclideanDistance(t *testing.T) {
	_, e, path := solve(t, "S....\n.XXX.\n.X9X.\n.XXX.\n....G\n")
	if len(path) == 0 {
		t.Fatal("Expected a route, got none")
	}

	for i := 1; i < len(path)-1; i++ {
		delta := e.Cell(path[i]).G - e.Cell(path[i-1]).G
		want := core.Distance(path[i-1], path[i])
		if math.Abs(delta-want) > 1e-9 {
			t.Errorf("Step %d: expected g delta %v, got %v", i, want, delta)
		}
	}
}

func TestSearchIsIdempotent(t *testing.T) {
	const text = "S..4.\n.XX..\n..5X.\n.XXX.\n....G\n"

	g1 := mustParse(t, text)
	e1 := New(g1)
	p1 := e1.FindPath()

	g2 := mustParse(t, text)
	e2 := New(g2)
	p2 := e2.FindPath()

	if len(p1) != len(p2) {
		t.Fatalf("Expected identical routes, got %d and %d cells", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Errorf("Cell %d differs: %v vs %v", i, p1[i], p2[i])
		}
	}
	if c1, c2 := CoinTotal(g1, p1), CoinTotal(g2, p2); c1 != c2 {
		t.Errorf("Expected identical coin totals, got %d and %d", c1, c2)
	}
}

func TestAdjacentGoalReturnsTwoCellRoute(t *testing.T) {
	g, e, path := solve(t, "SG\n")
	checkEndpoints(t, g, path)
	if len(path) != 2 {
		t.Fatalf("Expected 2-cell route, got %d: %v", len(path), path)
	}
	if cost := e.PathCost(); math.Abs(cost-1.0) > 1e-9 {
		t.Errorf("Expected route cost 1.0, got %v", cost)
	}
}

func TestVisitedCellsAreNeverReopened(t *testing.T) {
	// Open field: plenty of cost improvements and stale frontier
	// entries along the way
	_, e, path := solve(t, "S....\n.....\n.....\n.....\n....G\n")
	if len(path) == 0 {
		t.Fatal("Expected a route, got none")
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := e.Cell(core.Point{X: x, Y: y})
			if c.Visited && c.Open {
				t.Errorf("Cell %d,%d is both visited and open", x, y)
			}
		}
	}
}
