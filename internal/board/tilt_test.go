package board

import (
	"math/rand"
	"reflect"
	"testing"
)

func gridOf(cells [][]int) *Grid {
	g := NewGrid(len(cells))
	for r, row := range cells {
		for c, v := range row {
			if v != 0 {
				g.Set(r, c, v)
			}
		}
	}
	return g
}

func cellsOf(g *Grid) [][]int {
	n := g.Size()
	cells := make([][]int, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]int, n)
		for c := 0; c < n; c++ {
			cells[r][c] = g.At(r, c)
		}
	}
	return cells
}

func TestTilt(t *testing.T) {
	tests := []struct {
		name        string
		dir         Direction
		in          [][]int
		want        [][]int
		wantDelta   int
		wantChanged bool
	}{
		{
			name: "west merges leading pair",
			dir:  West,
			in: [][]int{
				{2, 2, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{4, 4, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   4,
			wantChanged: true,
		},
		{
			name: "east merges trailing pair",
			dir:  East,
			in: [][]int{
				{2, 2, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{0, 0, 4, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   4,
			wantChanged: true,
		},
		{
			name: "merge across a gap",
			dir:  West,
			in: [][]int{
				{2, 0, 0, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   4,
			wantChanged: true,
		},
		{
			name: "two pairs merge independently",
			dir:  West,
			in: [][]int{
				{4, 4, 2, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{8, 4, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   12,
			wantChanged: true,
		},
		{
			name: "four equal tiles make two merges",
			dir:  West,
			in: [][]int{
				{4, 4, 4, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{8, 8, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   16,
			wantChanged: true,
		},
		{
			name: "slide without merge",
			dir:  North,
			in: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 2, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{0, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   0,
			wantChanged: true,
		},
		{
			name: "south packs toward bottom",
			dir:  South,
			in: [][]int{
				{0, 0, 0, 0},
				{0, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 2, 0, 0},
			},
			want: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 4, 0, 0},
			},
			wantDelta:   4,
			wantChanged: true,
		},
		{
			name: "unequal tiles block",
			dir:  West,
			in: [][]int{
				{2, 4, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{2, 4, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   0,
			wantChanged: false,
		},
		{
			name: "packed row is a no-op",
			dir:  West,
			in: [][]int{
				{2, 4, 8, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{2, 4, 8, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   0,
			wantChanged: false,
		},
		{
			name: "top row pushed north is a no-op",
			dir:  North,
			in: [][]int{
				{2, 0, 0, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: [][]int{
				{2, 0, 0, 2},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			wantDelta:   0,
			wantChanged: false,
		},
		{
			name: "full board west",
			dir:  West,
			in: [][]int{
				{2, 0, 2, 4},
				{0, 4, 4, 0},
				{8, 8, 2, 2},
				{0, 0, 0, 2},
			},
			want: [][]int{
				{4, 4, 0, 0},
				{8, 0, 0, 0},
				{16, 4, 0, 0},
				{2, 0, 0, 0},
			},
			wantDelta:   32,
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridOf(tt.in)
			res := Tilt(g, tt.dir)
			if got := cellsOf(g); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("grid after tilt %v:\ngot  %v\nwant %v", tt.dir, got, tt.want)
			}
			if res.ScoreDelta != tt.wantDelta {
				t.Errorf("ScoreDelta = %d, want %d", res.ScoreDelta, tt.wantDelta)
			}
			if res.Changed != tt.wantChanged {
				t.Errorf("Changed = %v, want %v", res.Changed, tt.wantChanged)
			}
			if !tt.wantChanged && len(res.Events) != 0 {
				t.Errorf("no-op tilt emitted %d events", len(res.Events))
			}
		})
	}
}

func TestTiltMergesAtMostOncePerTile(t *testing.T) {
	// A line of three equal tiles pushed toward its occupied end must yield
	// [4 2], never [8] and never [4 4], whatever the direction.
	const n = 4
	for _, dir := range []Direction{North, East, South, West} {
		t.Run(dir.String(), func(t *testing.T) {
			g := NewGrid(n)
			for r := 0; r < 3; r++ {
				g.Set(dir.realRow(n, r, 0), dir.realCol(n, r, 0), 2)
			}

			res := Tilt(g, dir)

			col := make([]int, n)
			for r := 0; r < n; r++ {
				col[r] = g.At(dir.realRow(n, r, 0), dir.realCol(n, r, 0))
			}
			want := []int{4, 2, 0, 0}
			if !reflect.DeepEqual(col, want) {
				t.Errorf("column after tilt = %v, want %v", col, want)
			}
			if res.ScoreDelta != 4 {
				t.Errorf("ScoreDelta = %d, want 4", res.ScoreDelta)
			}
		})
	}
}

func TestTiltReachesFixedPoint(t *testing.T) {
	const n = 4
	rng := rand.New(rand.NewSource(7))

	for _, dir := range []Direction{North, East, South, West} {
		t.Run(dir.String(), func(t *testing.T) {
			g := NewGrid(n)
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					if rng.Intn(2) == 0 {
						g.Set(r, c, 2<<rng.Intn(3))
					}
				}
			}

			Tilt(g, dir)
			for i := 0; i < n-1; i++ {
				if !Tilt(g, dir).Changed {
					return
				}
			}
			if Tilt(g, dir).Changed {
				t.Errorf("grid did not stabilize after %d tilts toward %v", n+1, dir)
			}
		})
	}
}

func TestCollapseColumnOrderIndependence(t *testing.T) {
	in := [][]int{
		{2, 0, 2, 4},
		{2, 4, 4, 4},
		{8, 8, 2, 2},
		{0, 4, 0, 2},
	}

	collapse := func(order []int) ([][]int, int) {
		ts := &tiltState{n: len(in), dir: North}
		ts.cells = make([][]int, len(in))
		for r := range in {
			ts.cells[r] = append([]int(nil), in[r]...)
		}
		for _, c := range order {
			ts.collapseColumn(c)
		}
		return ts.cells, ts.score
	}

	forward, forwardScore := collapse([]int{0, 1, 2, 3})
	backward, backwardScore := collapse([]int{3, 2, 1, 0})

	if !reflect.DeepEqual(forward, backward) {
		t.Errorf("column order changed the result:\nforward  %v\nbackward %v", forward, backward)
	}
	if forwardScore != backwardScore {
		t.Errorf("column order changed the score: %d vs %d", forwardScore, backwardScore)
	}
}

func TestTiltEvents(t *testing.T) {
	t.Run("move reports real coordinates", func(t *testing.T) {
		g := NewGrid(4)
		g.Set(1, 3, 2)

		res := Tilt(g, West)

		want := []Event{{Kind: EventMove, Value: 2, SrcRow: 1, SrcCol: 3, DstRow: 1, DstCol: 0}}
		if !reflect.DeepEqual(res.Events, want) {
			t.Errorf("Events = %+v, want %+v", res.Events, want)
		}
	})

	t.Run("merge reports both values", func(t *testing.T) {
		g := NewGrid(4)
		g.Set(0, 1, 2)
		g.Set(3, 1, 2)

		res := Tilt(g, North)

		want := []Event{{Kind: EventMerge, Value: 2, NewValue: 4, SrcRow: 3, SrcCol: 1, DstRow: 0, DstCol: 1}}
		if !reflect.DeepEqual(res.Events, want) {
			t.Errorf("Events = %+v, want %+v", res.Events, want)
		}
	})

	t.Run("events keep happening order", func(t *testing.T) {
		g := gridOf([][]int{
			{2, 0, 2, 2},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		})

		res := Tilt(g, West)

		want := []Event{
			{Kind: EventMerge, Value: 2, NewValue: 4, SrcRow: 0, SrcCol: 2, DstRow: 0, DstCol: 0},
			{Kind: EventMove, Value: 2, SrcRow: 0, SrcCol: 3, DstRow: 0, DstCol: 1},
		}
		if !reflect.DeepEqual(res.Events, want) {
			t.Errorf("Events = %+v, want %+v", res.Events, want)
		}
		if got := cellsOf(g)[0]; !reflect.DeepEqual(got, []int{4, 2, 0, 0}) {
			t.Errorf("row after tilt = %v, want [4 2 0 0]", got)
		}
	})
}

func TestTiltKeepsOccupiedCount(t *testing.T) {
	g := gridOf([][]int{
		{4, 4, 2, 2},
		{0, 2, 0, 2},
		{0, 0, 0, 0},
		{8, 0, 0, 8},
	})

	Tilt(g, West)

	count := 0
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			if g.At(r, c) != 0 {
				count++
			}
		}
	}
	if g.Occupied() != count {
		t.Errorf("Occupied() = %d, actual non-empty cells = %d", g.Occupied(), count)
	}
	if count != 4 {
		t.Errorf("non-empty cells = %d, want 4", count)
	}
}
