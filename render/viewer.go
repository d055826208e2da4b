package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coinmaze/core"
	"github.com/lixenwraith/coinmaze/maze"
)

// Cell background styles. Cells draw two columns wide so the grid
// reads roughly square in a terminal.
var (
	styleWall  = tcell.StyleDefault.Background(tcell.ColorRed)
	styleStart = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleGoal  = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
	stylePath  = tcell.StyleDefault.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)
	styleFloor = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	styleText  = tcell.StyleDefault
)

// View shows the maze with the route highlighted in a full-screen
// tcell session and blocks until q, Esc or Ctrl-C. An empty path
// displays as "no route found"; the viewer performs no search logic.
func View(g *maze.Grid, path []core.Point, coins int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	onPath := make(map[core.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	draw := func() {
		screen.Clear()
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				t := g.At(x, y)
				style := styleFloor
				switch {
				case t == maze.Wall:
					style = styleWall
				case t == maze.Start:
					style = styleStart
				case t == maze.Goal:
					style = styleGoal
				case onPath[core.Point{X: x, Y: y}]:
					style = stylePath
				}

				// Coin digits stay visible on whichever background
				glyph := ' '
				if maze.CoinValue(t) > 0 {
					glyph = t
				}
				screen.SetContent(x*2, y, glyph, nil, style)
				screen.SetContent(x*2+1, y, ' ', nil, style)
			}
		}

		summary := fmt.Sprintf("Collected %d coins. Route: %d cells.", coins, len(path))
		if len(path) == 0 {
			summary = "No route found."
		}
		drawText(screen, 0, g.Height+1, summary+" Press q to quit.")
		screen.Show()
	}

	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			draw()
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, styleText)
	}
}
