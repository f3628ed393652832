package model

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultRows and DefaultCols are the size used when no dimensions are configured.
	DefaultRows = 50
	DefaultCols = 50

	// maxHistory is the number of previous generation hashes kept for cycle detection.
	maxHistory = 5
)

// Grid is a fixed-size Game of Life environment. All methods are safe for
// concurrent use; commands apply atomically so readers only ever observe
// complete generations.
type Grid struct {
	mu sync.RWMutex

	rows  int
	cols  int
	cells arena

	bits     BitSource
	pool     *StatePool
	parallel bool
	bounded  bool

	generation uint64
	history    []string // Hashes of recent previous generations
}

// NewGrid creates a grid with the given dimensions, builds every cell's
// neighbor set and randomizes the initial generation.
func NewGrid(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows=%d cols=%d", rows, cols)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:     rows,
		cols:     cols,
		cells:    newArena(rows, cols),
		bits:     o.bits,
		pool:     o.pool,
		parallel: o.parallel,
		bounded:  o.bounded,
	}
	g.cells.setupNeighbors(rows, cols)
	if o.randomize {
		g.randomize()
	}
	return g, nil
}

// Dimensions returns the number of rows and columns.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Generation returns the number of steps since construction, Reset or Randomize.
func (g *Grid) Generation() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.generation
}

func (g *Grid) checkBounds(fn string, row, col int) error {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return errors.Wrapf(ErrOutOfRange, "[%s] (%d,%d) outside %dx%d grid", fn, row, col, g.rows, g.cols)
	}
	return nil
}

// CellState returns the state of the cell at (row, col).
func (g *Grid) CellState(row, col int) (State, error) {
	if err := g.checkBounds("CellState", row, col); err != nil {
		return Dead, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[row][col].state, nil
}

// NeighborsOf returns a copy of the neighbor positions of the cell at (row, col).
func (g *Grid) NeighborsOf(row, col int) ([]Pos, error) {
	if err := g.checkBounds("NeighborsOf", row, col); err != nil {
		return nil, err
	}
	// Topology is immutable after construction.
	return g.cells[row][col].Neighbors(), nil
}

// SetCellState overrides the state of a single cell.
func (g *Grid) SetCellState(row, col int, state State) error {
	if err := g.checkBounds("SetCellState", row, col); err != nil {
		return err
	}
	if !state.Valid() {
		return errors.Wrapf(ErrInvalidState, "[SetCellState] state=%d", state)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells[row][col].setState(state)
	return nil
}

// Step advances the grid exactly one generation. Every next state is staged
// from the current generation before any cell is updated. A failure in a
// parallel staging band is re-raised as a panic on the calling goroutine.
func (g *Grid) Step() {
	g.mu.Lock()
	defer g.mu.Unlock()

	var next *StateBuffer
	if g.pool != nil {
		next = g.pool.Get(g.rows, g.cols)
	} else {
		next = newStateBuffer(g.rows, g.cols)
	}
	defer bufferToPool(next, g.pool)

	switch {
	case g.bounded:
		g.stageBounded(next)
	case g.parallel:
		if err := g.stageParallel(next); err != nil {
			panic(err)
		}
	default:
		g.stageRows(next, 0, g.rows)
	}

	g.pushHistory(g.hash())
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col].setState(next.states[row][col])
		}
	}
	g.generation++
}

// stageRows computes next states for rows [startRow, endRow) into next.
func (g *Grid) stageRows(next *StateBuffer, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range g.cols {
			next.states[row][col] = g.cells[row][col].NextState(g.cells)
		}
	}
}

// stageParallel splits staging into row bands, one per CPU. Staging only
// reads cells and each band writes disjoint rows of next. A panicking band
// is reported as an error rather than crashing its goroutine.
func (g *Grid) stageParallel(next *StateBuffer) error {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = errors.Errorf("[stageParallel] rows %d-%d: %v", startRow, endRow-1, r)
				}
			}()
			g.stageRows(next, startRow, endRow)
			return nil
		})
	}

	return eg.Wait()
}

// bounds is the bounding box of living cells.
type bounds struct {
	minRow, maxRow, minCol, maxCol int
	valid                          bool
}

// size returns the number of cells inside the box.
func (b bounds) size() int {
	if !b.valid {
		return 0
	}
	return (b.maxRow - b.minRow + 1) * (b.maxCol - b.minCol + 1)
}

// activeBounds calculates the bounding box of living cells
func (g *Grid) activeBounds() (b bounds) {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col].state != Alive {
				continue
			}
			if !b.valid {
				b = bounds{minRow: row, maxRow: row, minCol: col, maxCol: col, valid: true}
				continue
			}
			b.minRow = min(b.minRow, row)
			b.maxRow = max(b.maxRow, row)
			b.minCol = min(b.minCol, col)
			b.maxCol = max(b.maxCol, col)
		}
	}
	return b
}

// stageBounded computes next states only in the active region plus a
// one-cell margin. Every other cell is dead with no live neighbors, so it
// keeps the Dead value the buffer was cleared to.
func (g *Grid) stageBounded(next *StateBuffer) {
	b := g.activeBounds()
	if !b.valid {
		return
	}

	minRow := max(0, b.minRow-1)
	maxRow := min(g.rows-1, b.maxRow+1)
	minCol := max(0, b.minCol-1)
	maxCol := min(g.cols-1, b.maxCol+1)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			next.states[row][col] = g.cells[row][col].NextState(g.cells)
		}
	}
}

// BoundingBoxSize returns the number of cells in the smallest rectangle
// holding every living cell, or 0 when none are alive.
func (g *Grid) BoundingBoxSize() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.activeBounds().size()
}

// Reset sets every cell to Dead.
func (g *Grid) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.fill(func() State { return Dead })
}

// Randomize sets every cell to Alive or Dead with an independent uniform draw.
func (g *Grid) Randomize() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.randomize()
}

func (g *Grid) randomize() {
	g.fill(func() State {
		if g.bits.Bool() {
			return Alive
		}
		return Dead
	})
}

// fill assigns every cell in row-major order and starts a new run.
func (g *Grid) fill(next func() State) {
	for row := range g.rows {
		for col := range g.cols {
			g.cells[row][col].setState(next())
		}
	}
	g.generation = 0
	g.history = nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col].state == Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the current generation.
func (g *Grid) Hash() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.hash()
}

func (g *Grid) hash() string {
	h := md5.New()
	row := make([]byte, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			row[c] = byte(g.cells[r][c].state)
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// pushHistory records a generation hash, keeping only the most recent ones.
func (g *Grid) pushHistory(hash string) {
	g.history = append(g.history, hash)
	if len(g.history) > maxHistory {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three, i.e. the grid is static or in a cycle of period 2 or 3.
func (g *Grid) IsStagnant() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	current := g.hash()
	for i := 1; i <= 3 && i <= len(g.history); i++ {
		if g.history[len(g.history)-i] == current {
			return true
		}
	}
	return false
}

// Snapshot returns an immutable copy of the current generation.
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Snapshot{
		Rows:       g.rows,
		Cols:       g.cols,
		Generation: g.generation,
		states:     make([]State, g.rows*g.cols),
	}
	for row := range g.rows {
		for col := range g.cols {
			s.states[row*g.cols+col] = g.cells[row][col].state
		}
	}
	return s
}
