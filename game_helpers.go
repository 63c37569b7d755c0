package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mochiFnana/patternlife/model"
	"github.com/mochiFnana/patternlife/rules"
	"github.com/mochiFnana/patternlife/utils"
)

// initializeGame sets up the initial game state: rule table, seeded grid,
// renderer and stats
func initializeGame(config utils.Config) (
	*model.Grid,
	rules.Table,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	table, err := config.RuleTable()
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	grid := model.NewGrid(config.Width, config.Height)
	grid.Randomize(rng, config.SeedDensity)

	renderer := model.NewTerminalRenderer(config.AliveGlyph, config.DeadGlyph)
	stats := utils.NewStats()

	return grid, table, pool, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Rules: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells(), len(config.Rules))
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the stats and history and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	// Update performance stats
	stats.Update(generation, livingCells, time.Since(lastFrameTime))

	// Check against history before recording the current state
	status := "Active"
	if grid.IsStagnant() {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	grid.UpdateHistory()

	return livingCells, density, status
}

// displayGameStatus shows the current game status
func displayGameStatus(generation, livingCells int, density float64, status string, stats *utils.Stats) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// recycleGrid returns a grid to the pool for reuse
func recycleGrid(grid *model.Grid, pool *model.GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}
