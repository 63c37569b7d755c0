package model

import "fmt"

const (
	defaultAliveGlyph = "0"
	defaultDeadGlyph  = "·"
)

// TerminalRenderer writes the grid to the terminal as text, one row per line
type TerminalRenderer struct {
	alive string
	dead  string
}

// NewTerminalRenderer builds a renderer with the given cell glyphs, falling
// back to the defaults for empty strings
func NewTerminalRenderer(alive, dead string) *TerminalRenderer {
	if alive == "" {
		alive = defaultAliveGlyph
	}
	if dead == "" {
		dead = defaultDeadGlyph
	}
	return &TerminalRenderer{alive: alive, dead: dead}
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				fmt.Print(r.alive)
			} else {
				fmt.Print(r.dead)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Print("\033[H\033[2J")
}
