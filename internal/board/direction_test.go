package board

import "testing"

func TestDirectionMappingTable(t *testing.T) {
	const n = 4

	tests := []struct {
		name     string
		dir      Direction
		r, c     int
		wantRow  int
		wantCol  int
	}{
		{name: "north is identity", dir: North, r: 1, c: 2, wantRow: 1, wantCol: 2},
		{name: "east", dir: East, r: 1, c: 2, wantRow: 2, wantCol: 2},
		{name: "south is half turn", dir: South, r: 1, c: 2, wantRow: 2, wantCol: 1},
		{name: "west", dir: West, r: 1, c: 2, wantRow: 1, wantCol: 1},
		{name: "west corner", dir: West, r: 0, c: 0, wantRow: 3, wantCol: 0},
		{name: "east corner", dir: East, r: 0, c: 0, wantRow: 0, wantCol: 3},
		{name: "south corner", dir: South, r: 0, c: 0, wantRow: 3, wantCol: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotRow := tt.dir.realRow(n, tt.r, tt.c)
			gotCol := tt.dir.realCol(n, tt.r, tt.c)
			if gotRow != tt.wantRow || gotCol != tt.wantCol {
				t.Errorf("%v maps (%d,%d) to (%d,%d), want (%d,%d)",
					tt.dir, tt.r, tt.c, gotRow, gotCol, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestDirectionMappingRoundTrip(t *testing.T) {
	// North and South are their own inverses; East and West invert each
	// other. Composing each mapping with its inverse must return the
	// original coordinates for every cell.
	inverse := map[Direction]Direction{
		North: North,
		South: South,
		East:  West,
		West:  East,
	}

	for _, n := range []int{2, 4, 5} {
		for dir, inv := range inverse {
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					mr := dir.realRow(n, r, c)
					mc := dir.realCol(n, r, c)
					rr := inv.realRow(n, mr, mc)
					rc := inv.realCol(n, mr, mc)
					if rr != r || rc != c {
						t.Fatalf("n=%d %v then %v: (%d,%d) -> (%d,%d) -> (%d,%d)",
							n, dir, inv, r, c, mr, mc, rr, rc)
					}
				}
			}
		}
	}
}

func TestDirectionMappingIsBijection(t *testing.T) {
	const n = 4
	for _, dir := range []Direction{North, East, South, West} {
		seen := make(map[[2]int]bool, n*n)
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				p := [2]int{dir.realRow(n, r, c), dir.realCol(n, r, c)}
				if p[0] < 0 || p[0] >= n || p[1] < 0 || p[1] >= n {
					t.Fatalf("%v maps (%d,%d) out of range: %v", dir, r, c, p)
				}
				if seen[p] {
					t.Fatalf("%v maps two cells onto %v", dir, p)
				}
				seen[p] = true
			}
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{North, "North"},
		{East, "East"},
		{South, "South"},
		{West, "West"},
		{Direction(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", int(tt.dir), got, tt.want)
		}
	}
}

func TestInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("realRow with an invalid direction should panic")
		}
	}()
	Direction(42).realRow(4, 0, 0)
}
