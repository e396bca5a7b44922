package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ajai-sharma-backup/2048/internal/storage"
)

const maxScoreRows = 100 // Max scores to load into the table

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("11")).
				MarginBottom(1)

	scoreboardStatsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				MarginTop(1)
)

// ScoreboardModel is the Bubble Tea model for browsing recorded scores.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	stats    *storage.Stats
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard from the stored scores.
func NewScoreboardModel(store *storage.Store, width, height int) (ScoreboardModel, error) {
	entries, err := store.TopScores(maxScoreRows)
	if err != nil {
		return ScoreboardModel{}, err
	}

	stats, err := store.GetStats()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Max tile", Width: 10},
		{Title: "Date", Width: 18},
	}

	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.MaxTile),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := height - 8
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	return ScoreboardModel{
		table:  t,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		stats:  stats,
		width:  width,
		height: height,
	}, nil
}

// Init initializes the scoreboard.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := scoreboardTitleStyle.Render("High Scores - 2048")

	statsLine := ""
	if m.stats != nil && m.stats.GamesCount > 0 {
		statsLine = scoreboardStatsStyle.Render(fmt.Sprintf(
			"Games: %d   Best: %d   Best tile: %d   Average: %.0f",
			m.stats.GamesCount, m.stats.HighScore, m.stats.BestTile, m.stats.AvgScore,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		statsLine,
		m.help.View(m.keys),
	)
}

// RunScoreboard shows the scoreboard and blocks until the user leaves it.
func RunScoreboard(store *storage.Store, width, height int) error {
	model, err := NewScoreboardModel(store, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
