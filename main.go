package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/coinmaze/audio"
	"github.com/lixenwraith/coinmaze/maze"
	"github.com/lixenwraith/coinmaze/render"
	"github.com/lixenwraith/coinmaze/search"
)

func main() {
	plain := flag.Bool("plain", false, "print the maze and route without colors")
	sound := flag.Bool("sound", false, "play a chime when a route is found")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <maze-file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	grid, err := maze.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "coinmaze: %v\n", err)
		os.Exit(1)
	}

	engine := search.New(grid)
	path := engine.FindPath()
	coins := search.CoinTotal(grid, path)

	if *sound && len(path) > 0 {
		if err := audio.Chime(); err != nil {
			// Non-fatal, the result still renders
			log.Printf("chime failed: %v", err)
		}
	}

	if *plain {
		err = render.Plain(os.Stdout, grid, path, coins)
	} else {
		err = render.View(grid, path, coins)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "coinmaze: render: %v\n", err)
		os.Exit(1)
	}
}
