package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"

	"github.com/mochiFnana/patternlife/model"
	"github.com/mochiFnana/patternlife/rules"
	"github.com/mochiFnana/patternlife/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON configuration file")
		headless   = flag.Bool("headless", false, "run max_generations without rendering and print the final grid")
	)
	flag.Parse()

	// Load configuration - fall back to defaults if the file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Println("Invalid configuration:", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	grid, table, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Println("Failed to initialize:", err)
		os.Exit(1)
	}

	if *headless {
		runHeadless(config, grid, table, pool, renderer, stats)
		return
	}

	runInteractive(config, grid, table, pool, renderer, stats)
}

// runInteractive renders every generation with a fixed delay until the
// process is signalled or the generation limit is reached
func runInteractive(
	config utils.Config,
	grid *model.Grid,
	table rules.Table,
	pool *model.GridPool,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) {
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with the loop
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		displayGameStatus(generation, livingCells, density, status, stats)
		renderer.Display(grid)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Calculate the next generation from the untouched current grid
		next := grid.NextGeneration(table, config, pool)
		recycleGrid(grid, pool)
		grid = next

		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
	recycleGrid(grid, pool)
}

// runHeadless advances the simulation without per-frame rendering, showing
// a progress bar instead, and prints the final grid once
func runHeadless(
	config utils.Config,
	grid *model.Grid,
	table rules.Table,
	pool *model.GridPool,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) {
	generations := config.MaxGenerations
	if generations <= 0 {
		fmt.Println("Headless mode requires max_generations > 0")
		os.Exit(1)
	}

	var (
		bar           = pb.StartNew(generations)
		lastFrameTime = time.Now()
	)
	for generation := 1; generation <= generations; generation++ {
		next := grid.NextGeneration(table, config, pool)
		recycleGrid(grid, pool)
		grid = next

		stats.Update(generation, grid.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()
		bar.Increment()
	}
	bar.Finish()

	renderer.Display(grid)
	fmt.Printf("Ran %d generations in %.1f seconds | Living: %d | Avg Pop: %.1f\n",
		generations, time.Since(stats.StartTime).Seconds(),
		grid.CountLivingCells(), stats.AveragePopulation)
	recycleGrid(grid, pool)
}
