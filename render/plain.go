package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lixenwraith/coinmaze/core"
	"github.com/lixenwraith/coinmaze/maze"
)

// PathMarker overlays route cells in plain output. Start, goal and
// coin tokens keep their own glyphs.
const PathMarker = '*'

// Plain writes the maze with the route overlaid, plus a summary, to
// w. No color, suitable for piping. An empty path renders as
// "no route found" rather than an error.
func Plain(w io.Writer, g *maze.Grid, path []core.Point, coins int) error {
	onPath := make(map[core.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t := g.At(x, y)
			if onPath[core.Point{X: x, Y: y}] && t == maze.Floor {
				t = PathMarker
			}
			bw.WriteRune(t)
		}
		bw.WriteByte('\n')
	}

	if len(path) == 0 {
		fmt.Fprintln(bw, "No route found.")
	} else {
		fmt.Fprintf(bw, "Route: %d cells.\n", len(path))
	}
	fmt.Fprintf(bw, "Collected %d coins.\n", coins)
	return bw.Flush()
}
