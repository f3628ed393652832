package model

// Snapshot is a read-only copy of one complete generation.
type Snapshot struct {
	Rows       int
	Cols       int
	Generation uint64

	states []State // row-major
}

// StateAt returns the state at p. It panics if p is outside the snapshot.
func (s Snapshot) StateAt(p Pos) State {
	return s.states[p.Row*s.Cols+p.Col]
}

// Alive reports whether the cell at (row, col) is alive. Coordinates outside
// the snapshot are reported as dead.
func (s Snapshot) Alive(row, col int) bool {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return false
	}
	i := row*s.Cols + col
	return i < len(s.states) && s.states[i] == Alive
}

// CountAlive returns the number of living cells in the snapshot.
func (s Snapshot) CountAlive() (count int) {
	for _, st := range s.states {
		if st == Alive {
			count++
		}
	}
	return
}

// Equal reports whether two snapshots hold the same dimensions and states.
// Generation counters are not compared.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Rows != o.Rows || s.Cols != o.Cols || len(s.states) != len(o.states) {
		return false
	}
	for i := range s.states {
		if s.states[i] != o.states[i] {
			return false
		}
	}
	return true
}
