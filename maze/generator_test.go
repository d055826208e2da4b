package maze_test

import (
	"testing"

	"github.com/lixenwraith/coinmaze/maze"
	"github.com/lixenwraith/coinmaze/search"
)

func TestGenerateProducesSolvableMaze(t *testing.T) {
	g := maze.Generate(maze.Config{Width: 21, Height: 15, Braiding: 0.2, CoinDensity: 0.2, Seed: 42})

	starts, goals := 0, 0
	for _, tok := range g.Terrain {
		switch tok {
		case maze.Start:
			starts++
		case maze.Goal:
			goals++
		}
	}
	if starts != 1 || goals != 1 {
		t.Errorf("Expected exactly one start and goal, got %d and %d", starts, goals)
	}

	if path := search.New(g).FindPath(); len(path) == 0 {
		t.Error("Expected generated maze to be solvable")
	}
}

func TestGenerateKeepsWallBorder(t *testing.T) {
	g := maze.Generate(maze.Config{Width: 15, Height: 11, Seed: 7})

	for x := 0; x < g.Width; x++ {
		if g.At(x, 0) != maze.Wall || g.At(x, g.Height-1) != maze.Wall {
			t.Errorf("Expected wall border at column %d", x)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.At(0, y) != maze.Wall || g.At(g.Width-1, y) != maze.Wall {
			t.Errorf("Expected wall border at row %d", y)
		}
	}
}

func TestGenerateRoundsDimensionsDownToOdd(t *testing.T) {
	g := maze.Generate(maze.Config{Width: 20, Height: 16, Seed: 3})
	if g.Width != 19 || g.Height != 15 {
		t.Errorf("Expected 19x15 grid, got %dx%d", g.Width, g.Height)
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := maze.Generate(maze.Config{Width: 21, Height: 15, Braiding: 0.3, CoinDensity: 0.2, Seed: 99})
	b := maze.Generate(maze.Config{Width: 21, Height: 15, Braiding: 0.3, CoinDensity: 0.2, Seed: 99})

	if string(a.Terrain) != string(b.Terrain) {
		t.Error("Expected identical terrain for identical seeds")
	}
}

func TestGenerateZeroCoinDensity(t *testing.T) {
	g := maze.Generate(maze.Config{Width: 21, Height: 15, CoinDensity: 0, Seed: 5})
	for i, tok := range g.Terrain {
		if maze.CoinValue(tok) > 0 {
			t.Errorf("Expected no coins at density 0, found %q at index %d", tok, i)
		}
	}
}
