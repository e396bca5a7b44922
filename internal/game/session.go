// Package game orchestrates one play session of the 2048 puzzle: it owns
// the grid, the score counters, and the tile spawner, and drives the board
// engine from platform input.
package game

import (
	"math/rand"

	"github.com/ajai-sharma-backup/2048/internal/board"
	"github.com/ajai-sharma-backup/2048/internal/config"
	"github.com/ajai-sharma-backup/2048/internal/core"
)

// Session implements core.Game. Score and the session-best score are
// explicit fields here rather than ambient state; the board engine itself
// is a pure function of (grid, direction).
type Session struct {
	rules config.GameConfig
	rng   *rand.Rand
	tick  uint64

	grid     *board.Grid
	score    int
	maxScore int

	gameOver bool
	paused   bool

	// Animation state, fed by the engine's move/merge events.
	animating      bool
	animationPhase AnimationPhase
	animationTicks int
	animations     []TileAnimation
	pendingNewTile *PendingTile
	suppressed     map[[2]int]bool
}

// New creates a session with the given game rules.
func New(rules config.GameConfig) *Session {
	return &Session{
		rules: rules,
		grid:  board.NewGrid(rules.Board.Size),
	}
}

// Reset starts the session over with a fresh RNG. The session-best score
// survives resets; everything else is cleared.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.tick = 0
	s.clearAnimation()
	s.newGame()
}

// newGame clears the board and score and places the starting tiles. The
// first placement is guarded by emptiness and every spawn no-ops cleanly
// on a full board, so a tiny board cannot over-place.
func (s *Session) newGame() {
	s.grid.Reset()
	s.score = 0
	s.gameOver = false
	s.paused = false
	s.clearAnimation()

	for i := 0; i < s.rules.Board.StartTiles; i++ {
		s.spawnTile()
	}
}

// endGame folds the finished game's score into the session best.
func (s *Session) endGame() {
	if s.score > s.maxScore {
		s.maxScore = s.score
	}
}

// spawnTile places a 2 (or, with the configured probability, a 4) in a
// random empty cell. Has no effect if the board is full.
func (s *Session) spawnTile() {
	empty := s.grid.EmptyCells()
	if len(empty) == 0 {
		return
	}

	cell := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() < s.rules.Spawn.FourProbability {
		value = 4
	}

	s.grid.Place(value, cell[0], cell[1])
	s.pendingNewTile = &PendingTile{Row: cell[0], Col: cell[1], Value: value}
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if s.animating {
		s.updateAnimation()
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionNewGame) {
		s.newGame()
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) && !s.gameOver {
		s.paused = !s.paused
	}
	if s.paused || s.gameOver {
		return core.StepResult{State: s.State()}
	}

	if dir, ok := directionFor(in); ok {
		s.processTilt(dir)
	}

	return core.StepResult{State: s.State()}
}

// directionFor maps platform input to a push direction. Up pushes the
// tiles north, left pushes west, and so on.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.North, true
	case in.Has(core.ActionDown):
		return board.South, true
	case in.Has(core.ActionLeft):
		return board.West, true
	case in.Has(core.ActionRight):
		return board.East, true
	}
	return board.North, false
}

// processTilt applies one tilt. An unchanged board spawns nothing; a
// changed board scores, spawns one tile, and may end the game.
func (s *Session) processTilt(dir board.Direction) {
	res := board.Tilt(s.grid, dir)
	if !res.Changed {
		return
	}

	s.score += res.ScoreDelta
	s.pendingNewTile = nil
	s.spawnTile()
	s.startSlideAnimation(res.Events)

	if s.grid.Terminal() {
		s.gameOver = true
		s.endGame()
	}
}

// State returns the current platform-visible state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Best:     s.maxScore,
		GameOver: s.gameOver,
		Paused:   s.paused,
	}
}

// Grid exposes the underlying grid for rendering and tests.
func (s *Session) Grid() *board.Grid {
	return s.grid
}
