package board

// EventKind distinguishes the two observable effects of a tilt.
type EventKind int

const (
	EventMove  EventKind = iota // a tile slid into an empty cell
	EventMerge                  // two equal tiles combined into one
)

// Event describes one tile movement during a tilt, in real grid
// coordinates, in the order it happened. Renderers use the sequence to
// animate the transition; the engine itself renders nothing.
type Event struct {
	Kind     EventKind
	Value    int // value of the moving tile (pre-merge value for merges)
	NewValue int // combined value, merges only
	SrcRow   int
	SrcCol   int
	DstRow   int
	DstCol   int
}

// TiltResult is the outcome of one tilt.
type TiltResult struct {
	Changed    bool    // whether any tile slid or merged
	ScoreDelta int     // sum of all combined tile values created this tilt
	Events     []Event // ordered move/merge sequence, real coordinates
}

// tiltState is the canonical-orientation scratch view of one tilt. The
// board is copied through the direction mapping so tiles always move
// toward decreasing row index, then written back the same way.
type tiltState struct {
	n      int
	dir    Direction
	cells  [][]int
	events []Event
	score  int
}

// Tilt slides and merges every tile on g toward the given edge, mutating g
// in place. Each tile merges at most once per tilt. Columns of the
// canonical view are independent: their processing order never affects the
// result.
func Tilt(g *Grid, dir Direction) TiltResult {
	n := g.Size()
	t := &tiltState{n: n, dir: dir}

	t.cells = make([][]int, n)
	for r := 0; r < n; r++ {
		t.cells[r] = make([]int, n)
		for c := 0; c < n; c++ {
			t.cells[r][c] = g.At(dir.realRow(n, r, c), dir.realCol(n, r, c))
		}
	}

	changed := false
	for c := 0; c < n; c++ {
		if t.collapseColumn(c) {
			changed = true
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g.Set(dir.realRow(n, r, c), dir.realCol(n, r, c), t.cells[r][c])
		}
	}

	return TiltResult{
		Changed:    changed,
		ScoreDelta: t.score,
		Events:     t.events,
	}
}

// collapseColumn slides column c toward row 0, filling each destination row
// in turn. A destination may receive one slide and then still merge with
// the next equal tile, but once it has merged it is settled for this tilt.
func (t *tiltState) collapseColumn(c int) bool {
	changed := false
	for r0 := 0; r0 < t.n-1; r0++ {
		value := t.cells[r0][c]
	scan:
		for r := r0 + 1; r < t.n; r++ {
			switch src := t.cells[r][c]; {
			case src == 0:
				// gap, keep scanning
			case value == 0:
				t.moveTile(r, r0, c)
				value = t.cells[r0][c]
				changed = true
				r = r0 // restart the scan just below the destination
			case src == value:
				t.mergeTiles(r, r0, c)
				changed = true
				break scan
			default:
				break scan
			}
		}
	}
	return changed
}

// moveTile slides the tile at canonical (r, c) into the empty destination
// (r0, c) and records the move in real coordinates.
func (t *tiltState) moveTile(r, r0, c int) {
	value := t.cells[r][c]
	t.cells[r0][c] = value
	t.cells[r][c] = 0
	t.events = append(t.events, Event{
		Kind:   EventMove,
		Value:  value,
		SrcRow: t.dir.realRow(t.n, r, c),
		SrcCol: t.dir.realCol(t.n, r, c),
		DstRow: t.dir.realRow(t.n, r0, c),
		DstCol: t.dir.realCol(t.n, r0, c),
	})
}

// mergeTiles combines the tile at canonical (r, c) into the equal tile at
// (r0, c). The combined tile's value is what the merge scores.
func (t *tiltState) mergeTiles(r, r0, c int) {
	value := t.cells[r][c]
	t.cells[r][c] = 0
	t.cells[r0][c] = 2 * value
	t.score += 2 * value
	t.events = append(t.events, Event{
		Kind:     EventMerge,
		Value:    value,
		NewValue: 2 * value,
		SrcRow:   t.dir.realRow(t.n, r, c),
		SrcCol:   t.dir.realCol(t.n, r, c),
		DstRow:   t.dir.realRow(t.n, r0, c),
		DstCol:   t.dir.realCol(t.n, r0, c),
	})
}
