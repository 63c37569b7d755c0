package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mochiFnana/patternlife/rules"
	"github.com/mochiFnana/patternlife/utils"
)

// Grid represents the automaton board. The bounds are fixed and do not
// wrap: cells outside them are permanently dead, so Get reports false for
// them and Set ignores them.
type Grid struct {
	width   int
	height  int
	cells   [][]bool
	history []string // Store recent state hashes for cycle detection
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height
	g.history = nil

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = false
		}
	}
	g.history = nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell; out-of-bounds cells are dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

/*
EncodePattern summarizes the 3x3 block centered at (x, y) as a pattern key.

The block is scanned in row-major order, positions 1 through 9 with the
center at position 5. Alive cells at odd positions (the diagonals) add 1
to the real axis, alive cells at even positions (the orthogonals) add 1 to
the imaginary axis, and an alive center adds rules.CenterWeight to the
real axis. Cells outside the grid contribute nothing.
*/
func (g *Grid) EncodePattern(x, y int) rules.PatternKey {
	var (
		key rules.PatternKey
		pos = 0
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			pos++
			if !g.Get(x+dx, y+dy) {
				continue
			}
			switch {
			case dx == 0 && dy == 0:
				key.Re += rules.CenterWeight
			case pos%2 == 1:
				key.Re++
			default:
				key.Im++
			}
		}
	}
	return key
}

// NextGenerationSequential calculates the next generation with a plain scan
func (g *Grid) NextGenerationSequential(table rules.Table, pool *GridPool) *Grid {
	next := g.successor(pool)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if table.Next(g.EncodePattern(x, y)) {
				next.cells[y][x] = true
			}
		}
	}

	return next
}

// NextGenerationParallel calculates the next generation with one worker per
// CPU handling a band of rows. Workers only read the current grid and write
// disjoint rows of the next one, so the result matches the sequential scan.
func (g *Grid) NextGenerationParallel(table rules.Table, pool *GridPool) *Grid {
	next := g.successor(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					if table.Next(g.EncodePattern(x, y)) {
						next.cells[y][x] = true
					}
				}
			}
			return nil
		})
	}

	// Workers never fail; Wait only synchronizes completion.
	_ = eg.Wait()

	return next
}

// NextGeneration calculates the next generation based on configuration. The
// returned grid is always freshly built from the untouched current one.
func (g *Grid) NextGeneration(table rules.Table, config utils.Config, pool *GridPool) *Grid {
	if config.UseParallel {
		return g.NextGenerationParallel(table, pool)
	}
	return g.NextGenerationSequential(table, pool)
}

// successor obtains an empty grid of identical dimensions
func (g *Grid) successor(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.width, g.height)
	}
	return NewGrid(g.width, g.height)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// StateHash returns an MD5 hash of the current grid state
func (g *Grid) StateHash() string {
	h := md5.New()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current state to the history and maintains its size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.StateHash())

	// Keep only the last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant checks whether the grid repeats a recent state, either static
// or cycling with a period of up to 3 generations
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.StateHash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}

	return false
}

// Randomize fills the grid, making each cell alive with probability density
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.Set(x, y, rng.Float64() < density)
		}
	}
}
