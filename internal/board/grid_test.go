package board

import (
	"reflect"
	"testing"
)

func TestGridOccupiedTracking(t *testing.T) {
	g := NewGrid(4)
	if g.Occupied() != 0 {
		t.Fatalf("new grid Occupied() = %d, want 0", g.Occupied())
	}

	g.Set(0, 0, 2)
	g.Set(1, 1, 4)
	if g.Occupied() != 2 {
		t.Errorf("Occupied() = %d after two placements, want 2", g.Occupied())
	}

	// Overwriting a tile with another tile keeps the count.
	g.Set(0, 0, 8)
	if g.Occupied() != 2 {
		t.Errorf("Occupied() = %d after overwrite, want 2", g.Occupied())
	}

	g.Set(0, 0, 0)
	if g.Occupied() != 1 {
		t.Errorf("Occupied() = %d after clearing a cell, want 1", g.Occupied())
	}

	// Clearing an already empty cell is a no-op.
	g.Set(3, 3, 0)
	if g.Occupied() != 1 {
		t.Errorf("Occupied() = %d after clearing empty cell, want 1", g.Occupied())
	}

	g.Reset()
	if g.Occupied() != 0 || g.At(1, 1) != 0 {
		t.Errorf("Reset left Occupied()=%d, At(1,1)=%d", g.Occupied(), g.At(1, 1))
	}
}

func TestGridPlace(t *testing.T) {
	g := NewGrid(4)

	if !g.Place(2, 1, 2) {
		t.Fatal("Place on an empty cell returned false")
	}
	if g.At(1, 2) != 2 {
		t.Errorf("At(1,2) = %d, want 2", g.At(1, 2))
	}

	if g.Place(4, 1, 2) {
		t.Error("Place on an occupied cell returned true")
	}
	if g.At(1, 2) != 2 {
		t.Errorf("refused Place overwrote the cell: At(1,2) = %d", g.At(1, 2))
	}
	if g.Occupied() != 1 {
		t.Errorf("Occupied() = %d, want 1", g.Occupied())
	}
}

func TestGridFull(t *testing.T) {
	g := NewGrid(2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if g.Full() {
				t.Fatal("grid reported full before every cell was set")
			}
			g.Set(r, c, 2)
		}
	}
	if !g.Full() {
		t.Error("grid with every cell set is not full")
	}
}

func TestGridEmptyCells(t *testing.T) {
	g := NewGrid(2)
	g.Set(0, 1, 2)
	g.Set(1, 0, 4)

	want := [][2]int{{0, 0}, {1, 1}}
	if got := g.EmptyCells(); !reflect.DeepEqual(got, want) {
		t.Errorf("EmptyCells() = %v, want %v", got, want)
	}
}

func TestGridMaxTile(t *testing.T) {
	g := NewGrid(4)
	if g.MaxTile() != 0 {
		t.Errorf("empty grid MaxTile() = %d, want 0", g.MaxTile())
	}
	g.Set(0, 0, 2)
	g.Set(2, 3, 64)
	g.Set(3, 1, 16)
	if g.MaxTile() != 64 {
		t.Errorf("MaxTile() = %d, want 64", g.MaxTile())
	}
}

func TestGridTerminal(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]int
		want  bool
	}{
		{
			name: "checkerboard with no moves",
			cells: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: true,
		},
		{
			name: "one empty cell is never terminal",
			cells: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 0},
			},
			want: false,
		},
		{
			name: "full but horizontally mergeable",
			cells: [][]int{
				{2, 2, 4, 8},
				{4, 8, 2, 4},
				{2, 4, 8, 2},
				{4, 2, 4, 8},
			},
			want: false,
		},
		{
			name: "full but vertically mergeable",
			cells: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{2, 8, 4, 2},
			},
			want: false,
		},
		{
			name:  "empty grid",
			cells: [][]int{{0, 0}, {0, 0}},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridOf(tt.cells)
			if got := g.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}
