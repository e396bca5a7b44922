// Package board implements the rule engine of the sliding-tile merge puzzle:
// an N×N grid of power-of-two tiles, the tilt transform that slides and
// merges tiles toward one edge, and detection of the terminal (no more
// moves) state.
package board

// Direction is the edge the board is pushed toward. It is a closed
// enumeration; passing any other value to the engine is a contract
// violation and panics.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// realRow maps position (r, c) of a board turned so that row 0 faces d back
// to the row on the real board. Each direction's mapping is a bijection on
// the cells, so using the same function for both the read into the turned
// copy and the write back cancels out. n is the board size.
func (d Direction) realRow(n, r, c int) int {
	switch d {
	case North:
		return r
	case East:
		return c
	case South:
		return n - 1 - r
	case West:
		return n - 1 - c
	default:
		panic("board: invalid direction")
	}
}

// realCol is the column counterpart of realRow.
func (d Direction) realCol(n, r, c int) int {
	switch d {
	case North:
		return c
	case East:
		return n - 1 - r
	case South:
		return n - 1 - c
	case West:
		return r
	default:
		panic("board: invalid direction")
	}
}
