package model

import (
	"slices"
	"testing"
)

func cmpPos(a, b Pos) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

func TestNeighborCardinality(t *testing.T) {
	sizes := [][2]int{{3, 3}, {3, 7}, {7, 3}, {4, 4}, {5, 9}, {10, 6}}

	for _, size := range sizes {
		rows, cols := size[0], size[1]
		g, err := NewGrid(rows, cols, WithoutRandomize())
		if err != nil {
			t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
		}

		for row := range rows {
			for col := range cols {
				neighbors, err := g.NeighborsOf(row, col)
				if err != nil {
					t.Fatalf("NeighborsOf(%d, %d): %v", row, col, err)
				}

				boundaryRow := row == 0 || row == rows-1
				boundaryCol := col == 0 || col == cols-1
				want := 8
				switch {
				case boundaryRow && boundaryCol:
					want = 3
				case boundaryRow || boundaryCol:
					want = 5
				}
				if len(neighbors) != want {
					t.Errorf("%dx%d cell (%d,%d): %d neighbors, want %d", rows, cols, row, col, len(neighbors), want)
				}

				seen := map[Pos]bool{}
				for _, p := range neighbors {
					if p == (Pos{row, col}) {
						t.Errorf("%dx%d cell (%d,%d) lists itself as a neighbor", rows, cols, row, col)
					}
					if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
						t.Errorf("%dx%d cell (%d,%d) has out-of-bounds neighbor %v", rows, cols, row, col, p)
					}
					if seen[p] {
						t.Errorf("%dx%d cell (%d,%d) lists %v twice", rows, cols, row, col, p)
					}
					seen[p] = true
				}
			}
		}
	}
}

func TestExplicitEnumerationMatchesClipped(t *testing.T) {
	for _, size := range [][2]int{{3, 3}, {4, 5}, {8, 8}} {
		rows, cols := size[0], size[1]
		cells := newArena(rows, cols)
		cells.setupNeighbors(rows, cols)

		for row := range rows {
			for col := range cols {
				got := cells[row][col].Neighbors()
				want := appendClipped(nil, rows, cols, row, col)
				slices.SortFunc(got, cmpPos)
				slices.SortFunc(want, cmpPos)
				if !slices.Equal(got, want) {
					t.Errorf("%dx%d cell (%d,%d): got %v, want %v", rows, cols, row, col, got, want)
				}
			}
		}
	}
}

func TestCornerEnumerationOrder(t *testing.T) {
	g, err := NewGrid(4, 5, WithoutRandomize())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		row, col int
		want     []Pos
	}{
		{0, 0, []Pos{{0, 1}, {1, 0}, {1, 1}}},
		{0, 4, []Pos{{0, 3}, {1, 3}, {1, 4}}},
		{3, 0, []Pos{{2, 0}, {2, 1}, {3, 1}}},
		{3, 4, []Pos{{2, 3}, {2, 4}, {3, 3}}},
		{0, 2, []Pos{{0, 1}, {0, 3}, {1, 1}, {1, 2}, {1, 3}}},
		{3, 2, []Pos{{3, 1}, {3, 3}, {2, 1}, {2, 2}, {2, 3}}},
		{1, 4, []Pos{{0, 3}, {0, 4}, {1, 3}, {2, 3}, {2, 4}}},
		{2, 0, []Pos{{1, 0}, {1, 1}, {2, 1}, {3, 0}, {3, 1}}},
		{1, 1, []Pos{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
	}

	for _, tt := range tests {
		got, err := g.NeighborsOf(tt.row, tt.col)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("cell (%d,%d): got %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestDegenerateGridNeighbors(t *testing.T) {
	tests := []struct {
		rows, cols int
		row, col   int
		want       int
	}{
		{1, 1, 0, 0, 0},
		{1, 5, 0, 0, 1},
		{1, 5, 0, 2, 2},
		{5, 1, 4, 0, 1},
		{2, 2, 1, 1, 3},
		{2, 5, 0, 0, 3},
		{2, 5, 1, 2, 5},
		{5, 2, 2, 1, 5},
	}

	for _, tt := range tests {
		g, err := NewGrid(tt.rows, tt.cols, WithoutRandomize())
		if err != nil {
			t.Fatalf("NewGrid(%d, %d): %v", tt.rows, tt.cols, err)
		}
		got, err := g.NeighborsOf(tt.row, tt.col)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("%dx%d cell (%d,%d): %d neighbors %v, want %d", tt.rows, tt.cols, tt.row, tt.col, len(got), got, tt.want)
		}
	}
}

func TestDegenerateGridStep(t *testing.T) {
	line := newEmptyGrid(t, 1, 3)
	setAlive(t, line, Pos{0, 0}, Pos{0, 1}, Pos{0, 2})
	line.Step()
	// Ends have one live neighbor, the middle has two.
	expectAlive(t, line, "1x3 after step", Pos{0, 1})
	line.Step()
	expectAlive(t, line, "1x3 after second step")

	square := newEmptyGrid(t, 2, 2)
	all := []Pos{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	setAlive(t, square, all...)
	square.Step()
	expectAlive(t, square, "2x2 block", all...)

	pair := newEmptyGrid(t, 2, 3)
	setAlive(t, pair, Pos{0, 0}, Pos{0, 1}, Pos{0, 2})
	pair.Step()
	// (1,1) is born from three neighbors; (0,1) survives on two.
	expectAlive(t, pair, "2x3 after step", Pos{0, 1}, Pos{1, 1})
}
