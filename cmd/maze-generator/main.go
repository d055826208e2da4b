package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/coinmaze/maze"
	"github.com/lixenwraith/coinmaze/render"
	"github.com/lixenwraith/coinmaze/search"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== COIN MAZE GENERATOR ===")

		w := getInt(reader, "Width [odd preferred] (default 35): ", 35)
		h := getInt(reader, "Height [odd preferred] (default 19): ", 19)
		braid := getFloat(reader, "Braiding factor [0.0 - 1.0] (default 0.2): ", 0.2)
		coins := getFloat(reader, "Coin density [0.0 - 1.0] (default 0.15): ", 0.15)
		seed := getInt(reader, "Seed (default 0 = random): ", 0)

		cfg := maze.Config{
			Width:       w,
			Height:      h,
			Braiding:    braid,
			CoinDensity: coins,
			Seed:        int64(seed),
		}

		grid := maze.Generate(cfg)

		// The backtracker guarantees connectivity; solve anyway so the
		// preview shows the route and the coin haul
		engine := search.New(grid)
		path := engine.FindPath()
		if path == nil {
			fmt.Println("Status: unsolvable - this is a generator bug, please report the seed")
		}

		if err := render.Plain(os.Stdout, grid, path, search.CoinTotal(grid, path)); err != nil {
			fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
			os.Exit(1)
		}

		fmt.Print("\nWrite to file (empty = skip): ")
		name, _ := reader.ReadString('\n')
		name = strings.TrimSpace(name)
		if name != "" {
			if err := writeFile(name, grid); err != nil {
				fmt.Fprintf(os.Stderr, "maze-generator: %v\n", err)
			} else {
				fmt.Printf("Wrote %s\n", name)
			}
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func writeFile(name string, g *maze.Grid) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return maze.Write(f, g)
}

// --- Input helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
