package maze

import (
	"github.com/lixenwraith/coinmaze/core"
)

// Terrain tokens. Digits '0'-'9' are collectible coins worth their
// face value; any rune outside this alphabet is walkable floor.
const (
	Wall  = 'X'
	Start = 'S'
	Goal  = 'G'
	Floor = '.'
)

// Grid is a rectangular terrain field with exactly one start and one
// goal token. Terrain is flat, indexed y*Width+x.
type Grid struct {
	Width, Height int
	Terrain       []rune
	Start, Goal   core.Point
}

// At returns the terrain token at (x, y)
func (g *Grid) At(x, y int) rune {
	return g.Terrain[y*g.Width+x]
}

// CoinValue returns the coin value of a terrain token, 0 for
// non-digit tokens (walls and markers included)
func CoinValue(t rune) int {
	if t >= '0' && t <= '9' {
		return int(t - '0')
	}
	return 0
}
