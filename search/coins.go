package search

import (
	"github.com/lixenwraith/coinmaze/core"
	"github.com/lixenwraith/coinmaze/maze"
)

// CoinTotal sums the coin values collected along a route. A pure fold
// over the path: digit terrain contributes its face value, everything
// else contributes nothing. An empty path totals 0.
func CoinTotal(g *maze.Grid, path []core.Point) int {
	total := 0
	for _, p := range path {
		total += maze.CoinValue(g.At(p.X, p.Y))
	}
	return total
}
