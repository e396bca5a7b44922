package game

// SessionState labels the session's current phase.
type SessionState string

const (
	StatePlaying  SessionState = "playing"
	StatePaused   SessionState = "paused"
	StateGameOver SessionState = "game_over"
)

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	MaxScore int
	Cells    [][]int
	Occupied int
	MaxTile  int
	State    SessionState
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.gameOver:
		state = StateGameOver
	case s.paused:
		state = StatePaused
	}

	n := s.grid.Size()
	cells := make([][]int, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]int, n)
		for c := 0; c < n; c++ {
			cells[r][c] = s.grid.At(r, c)
		}
	}

	return Snapshot{
		Tick:     s.tick,
		Score:    s.score,
		MaxScore: s.maxScore,
		Cells:    cells,
		Occupied: s.grid.Occupied(),
		MaxTile:  s.grid.MaxTile(),
		State:    state,
	}
}
