package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/biomass/internal/game"
	"github.com/vovakirdan/biomass/internal/storage"
)

const maxBoardRuns = 100

// BoardView selects which runs the board lists.
type BoardView int

const (
	BoardTop BoardView = iota
	BoardMine
)

func (v BoardView) String() string {
	if v == BoardMine {
		return "MY RUNS"
	}
	return "TOP RUNS"
}

// RunBoardKeyMap defines the key bindings for the run history.
type RunBoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultRunBoardKeyMap returns default key bindings.
func DefaultRunBoardKeyMap() RunBoardKeyMap {
	return RunBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "top/mine"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunBoardModel is the Bubble Tea model for the run history screen.
type RunBoardModel struct {
	store    *storage.Store
	player   string
	view     BoardView
	runs     []storage.RunRecord
	stats    storage.RunStats
	err      error
	table    table.Model
	help     help.Model
	keys     RunBoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunBoardModel creates a run board for player's view of store.
func NewRunBoardModel(store *storage.Store, player string, width, height int) RunBoardModel {
	h := help.New()
	h.Width = width

	m := RunBoardModel{
		store:  store,
		player: player,
		keys:   DefaultRunBoardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *RunBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Level", Width: 14},
		{Title: "Biomass", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "When", Width: 14},
	}

	// Drop the trailing columns when the terminal is narrow.
	avail := m.width - 6
	used := 0
	for i, c := range columns {
		used += c.Width + 2
		if used > avail && i >= 3 {
			columns = columns[:i]
			break
		}
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes runs and stats from the store.
func (m *RunBoardModel) load() {
	m.runs, m.err = nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.view == BoardMine {
		m.runs, m.err = m.store.PlayerRuns(m.player, maxBoardRuns)
	} else {
		m.runs, m.err = m.store.TopRuns(maxBoardRuns)
	}
	if m.err == nil {
		m.stats, m.err = m.store.Stats()
	}
	m.updateTableRows()
}

func (m *RunBoardModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs, len(m.table.Columns())))
	m.table.GotoTop()
}

// runRows formats runs as table rows truncated to cols columns.
func runRows(runs []storage.RunRecord, cols int) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		level := r.LevelName
		if r.Completed {
			level += " ★"
		}
		when := "-"
		if !r.CreatedAt.IsZero() {
			when = humanize.Time(r.CreatedAt)
		}
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			level,
			game.FormatBiomass(r.Biomass),
			game.FormatDuration(r.DurationSecs),
			when,
		}
		if cols < len(row) {
			row = row[:cols]
		}
		rows[i] = row
	}
	return rows
}

// Init initializes the run board.
func (m RunBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run board.
func (m RunBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == BoardTop {
				m.view = BoardMine
			} else {
				m.view = BoardTop
			}
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run board.
func (m RunBoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(m.view.String())))
	b.WriteString("\n")

	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, mutedStyle.Render(m.statsLine())))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunBoardModel) statsLine() string {
	if m.stats.Runs == 0 {
		return "no runs yet"
	}
	return fmt.Sprintf("%d runs, %d completed, best %s biomass, last played %s",
		m.stats.Runs, m.stats.Completed,
		game.FormatBiomass(m.stats.BestBiomass),
		humanize.Time(m.stats.LastPlayed))
}

func (m RunBoardModel) renderTableContent() string {
	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Render("Cannot load runs: " + m.err.Error())
	}
	if len(m.runs) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4).
			Render("No runs recorded yet.\nGrow something first!")
	}
	return m.table.View()
}

// RunRunBoard shows the run history as a standalone program.
func RunRunBoard(store *storage.Store, player string, width, height int) error {
	p := tea.NewProgram(
		NewRunBoardModel(store, player, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
