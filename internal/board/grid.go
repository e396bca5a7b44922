package board

// Grid is the N×N tile container. Cell values are non-negative integers
// where 0 denotes an empty cell; every non-zero value is a power of two
// ≥ 2, guaranteed by construction (new tiles are 2 or 4) and by the merge
// rule (v+v → 2v). The occupied count is maintained incrementally by every
// mutation so fullness checks never rescan.
type Grid struct {
	n        int
	cells    [][]int
	occupied int
}

// NewGrid creates an empty n×n grid. Sizes below 2 are a precondition
// violation; the engine does not guard against them.
func NewGrid(n int) *Grid {
	g := &Grid{n: n}
	g.cells = make([][]int, n)
	for r := range g.cells {
		g.cells[r] = make([]int, n)
	}
	return g
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.n
}

// At returns the tile value at (r, c), 0 if empty.
func (g *Grid) At(r, c int) int {
	return g.cells[r][c]
}

// Set writes v at (r, c), keeping the occupied count consistent.
func (g *Grid) Set(r, c, v int) {
	old := g.cells[r][c]
	g.cells[r][c] = v
	switch {
	case old == 0 && v != 0:
		g.occupied++
	case old != 0 && v == 0:
		g.occupied--
	}
}

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int {
	return g.occupied
}

// Full returns true if every cell holds a tile.
func (g *Grid) Full() bool {
	return g.occupied == g.n*g.n
}

// Reset clears every cell, returning the grid to its initial empty state.
func (g *Grid) Reset() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = 0
		}
	}
	g.occupied = 0
}

// Place puts a new tile at (r, c). It refuses to overwrite an occupied
// cell and returns false so the tile source can retry elsewhere.
func (g *Grid) Place(v, r, c int) bool {
	if g.cells[r][c] != 0 {
		return false
	}
	g.cells[r][c] = v
	g.occupied++
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() [][2]int {
	var cells [][2]int
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.cells[r][c] == 0 {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

// MaxTile returns the largest tile value on the grid, 0 if empty.
func (g *Grid) MaxTile() int {
	max := 0
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.cells[r][c] > max {
				max = g.cells[r][c]
			}
		}
	}
	return max
}

// Terminal reports whether no tilt in any direction can change the grid:
// every cell is occupied and no two edge-adjacent cells are equal. A grid
// with an empty cell is never terminal, so the full check short-circuits
// the adjacency scan entirely.
func (g *Grid) Terminal() bool {
	if !g.Full() {
		return false
	}
	return !g.mergePossible()
}

// mergePossible reports whether any pair of edge-adjacent cells holds equal
// values. Assumes the grid is full.
func (g *Grid) mergePossible() bool {
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			v := g.cells[r][c]
			if r > 0 && g.cells[r-1][c] == v {
				return true
			}
			if c > 0 && g.cells[r][c-1] == v {
				return true
			}
			if r+1 < g.n && g.cells[r+1][c] == v {
				return true
			}
			if c+1 < g.n && g.cells[r][c+1] == v {
				return true
			}
		}
	}
	return false
}
