package model

import "github.com/sheikhrachel/go-gol-env/rules"

// State is the binary state of a cell.
type State uint8

const (
	Dead State = iota
	Alive
)

// Valid reports whether s is Dead or Alive.
func (s State) Valid() bool {
	return s == Dead || s == Alive
}

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "invalid"
	}
}

// Pos addresses a cell in the grid arena.
type Pos struct {
	Row, Col int
}

// StateReader reads the state of the cell at a position.
type StateReader interface {
	StateAt(p Pos) State
}

// Cell holds a binary state and the positions of its neighbors.
type Cell struct {
	state     State
	neighbors []Pos
}

// State returns the current state of the cell.
func (c *Cell) State() State {
	return c.state
}

func (c *Cell) setState(s State) {
	c.state = s
}

// SetNeighbors replaces the neighbor set with a copy of neighbors.
func (c *Cell) SetNeighbors(neighbors []Pos) {
	c.neighbors = append(make([]Pos, 0, len(neighbors)), neighbors...)
}

// Neighbors returns a copy of the neighbor positions, in enumeration order.
func (c *Cell) Neighbors() []Pos {
	return append([]Pos(nil), c.neighbors...)
}

// NextState computes the state of the cell in the next generation from the
// current states visible through r. It does not mutate anything.
func (c *Cell) NextState(r StateReader) State {
	aliveCount := 0
	for _, p := range c.neighbors {
		if r.StateAt(p) == Alive {
			aliveCount++
		}
	}
	if rules.ApplyConwayRules(aliveCount, c.state == Alive) {
		return Alive
	}
	return Dead
}

// arena is the row-major cell storage owned by a Grid.
type arena [][]Cell

func newArena(rows, cols int) arena {
	cells := make(arena, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return cells
}

func (a arena) StateAt(p Pos) State {
	return a[p.Row][p.Col].state
}
