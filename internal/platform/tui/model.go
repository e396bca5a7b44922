package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ajai-sharma-backup/2048/internal/core"
	"github.com/ajai-sharma-backup/2048/internal/storage"
)

// Model is the Bubble Tea model driving one game of the puzzle.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	maxTile    func() int
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game. maxTile
// reports the current largest tile for score records; it may be nil.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, maxTile func() int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		maxTile:    maxTile,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A new game gets a fresh seed so restarts don't replay the same tiles.
	if m.inputFrame.Has(core.ActionNewGame) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			maxTile := 0
			if m.maxTile != nil {
				maxTile = m.maxTile()
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.gameState.Score, maxTile)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, maxTile func() int) error {
	model := NewModel(game, store, cfg, maxTile)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
