package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/coinmaze/core"
)

// Load reads a maze file into a Grid. Any structural problem (ragged
// rows, missing or duplicate markers) fails here, before a search
// engine can be built on the grid.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse reads maze text from r: one token per column, one row per
// line, all rows the same length, exactly one Start and one Goal.
func Parse(r io.Reader) (*Grid, error) {
	g := &Grid{}
	starts, goals := 0, 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := []rune(strings.TrimRight(scanner.Text(), "\r"))
		if g.Height == 0 {
			g.Width = len(row)
		} else if len(row) != g.Width {
			return nil, fmt.Errorf("row %d has %d columns, want %d", g.Height, len(row), g.Width)
		}

		for x, t := range row {
			switch t {
			case Start:
				starts++
				g.Start = core.Point{X: x, Y: g.Height}
			case Goal:
				goals++
				g.Goal = core.Point{X: x, Y: g.Height}
			}
		}

		g.Terrain = append(g.Terrain, row...)
		g.Height++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read maze: %w", err)
	}

	if g.Width == 0 || g.Height == 0 {
		return nil, fmt.Errorf("maze is empty")
	}
	if starts != 1 {
		return nil, fmt.Errorf("maze needs exactly one '%c' marker, found %d", Start, starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("maze needs exactly one '%c' marker, found %d", Goal, goals)
	}
	return g, nil
}

// Write serializes a Grid back to maze text, one row per line
func Write(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		row := g.Terrain[y*g.Width : (y+1)*g.Width]
		bw.WriteString(string(row))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
