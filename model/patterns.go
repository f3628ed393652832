package model

import "github.com/pkg/errors"

var (
	gliderPattern = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	blinkerPattern = [][]bool{
		{true, true, true},
	}
	blockPattern = [][]bool{
		{true, true},
		{true, true},
	}
)

// AddGlider stamps a glider with its top-left corner at (row, col).
func (g *Grid) AddGlider(row, col int) error {
	return errors.Wrap(g.stamp(row, col, gliderPattern), "[AddGlider]")
}

// AddBlinker stamps a horizontal blinker starting at (row, col).
func (g *Grid) AddBlinker(row, col int) error {
	return errors.Wrap(g.stamp(row, col, blinkerPattern), "[AddBlinker]")
}

// AddBlock stamps a 2x2 still-life block with its top-left corner at (row, col).
func (g *Grid) AddBlock(row, col int) error {
	return errors.Wrap(g.stamp(row, col, blockPattern), "[AddBlock]")
}

// stamp writes every cell of pattern, dead ones included. Nothing is written
// unless the whole pattern fits.
func (g *Grid) stamp(row, col int, pattern [][]bool) error {
	lastRow, lastCol := row+len(pattern)-1, col+len(pattern[0])-1
	if err := g.checkBounds("stamp", row, col); err != nil {
		return err
	}
	if err := g.checkBounds("stamp", lastRow, lastCol); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for dr, line := range pattern {
		for dc, alive := range line {
			state := Dead
			if alive {
				state = Alive
			}
			g.cells[row+dr][col+dc].setState(state)
		}
	}
	return nil
}
