package main

import (
	"bytes"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/coinmaze/core"
	"github.com/lixenwraith/coinmaze/maze"
	"github.com/lixenwraith/coinmaze/search"
)

// SolveResponse reports one search outcome. Path is nil when no
// route exists; that is a normal outcome, not an error.
type SolveResponse struct {
	Found           bool         `json:"found"`
	Path            []core.Point `json:"path"`
	Coins           int          `json:"coins"`
	Cost            float64      `json:"cost"`
	ExecutionTimeMs float64      `json:"executionTimeMs"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// solveHandler accepts raw maze text and runs one search over it.
// Each request gets its own engine; nothing is shared between runs.
func solveHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	grid, err := maze.Parse(bytes.NewReader(body))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	engine := search.New(grid)
	path := engine.FindPath()
	elapsed := time.Since(start).Seconds() * 1000

	c.JSON(http.StatusOK, SolveResponse{
		Found:           path != nil,
		Path:            path,
		Coins:           search.CoinTotal(grid, path),
		Cost:            engine.PathCost(),
		ExecutionTimeMs: elapsed,
	})
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.POST("/api/solve", solveHandler)
	return router
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	log.Printf("solve-server listening on %s", *addr)
	if err := newRouter().Run(*addr); err != nil {
		log.Fatalf("solve-server: %v", err)
	}
}
