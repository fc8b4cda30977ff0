package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/biomass/internal/core"
	"github.com/vovakirdan/biomass/internal/game"
	"github.com/vovakirdan/biomass/internal/storage"
)

// Model is the Bubble Tea model for a biomass session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	status     core.Status
	board      *RunBoardModel // Non-nil while the run history is shown
	quitting   bool
	recorded   bool // Whether the current run has been saved
}

// NewModel creates a Bubble Tea model around g. store may be nil, in which
// case runs are not recorded.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Player == "" {
		cfg.Player = core.DefaultConfig().Player
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the run and the tick loop.
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.board != nil {
		return m.handleBoardKey(msg)
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.recordRun(false)
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.openBoard()
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleBoardKey routes keys to the run history while it is open. The run
// keeps growing in the background.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.recordRun(false)
		m.quitting = true
		return m, tea.Quit
	case "q", "esc", "b":
		m.board = nil
		return m, nil
	}

	updated, _ := m.board.Update(msg)
	board := updated.(RunBoardModel)
	m.board = &board
	return m, nil
}

func (m *Model) openBoard() {
	if m.store == nil {
		return
	}
	board := NewRunBoardModel(m.store, m.config.Player, m.config.ScreenW, m.config.ScreenH)
	m.board = &board
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	if m.board != nil {
		updated, _ := m.board.Update(msg)
		board := updated.(RunBoardModel)
		m.board = &board
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarting := m.inputFrame.Has(core.ActionRestart) && m.status.Completed

	result := m.game.Step(m.inputFrame)
	m.status = result.Status
	m.inputFrame.Clear()

	if restarting && !m.status.Completed {
		m.recorded = false
	}
	if result.Has(core.EventCompleted) {
		m.recordRun(true)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the current run once. Runs that never grew are skipped.
func (m *Model) recordRun(completed bool) {
	if m.store == nil || m.recorded {
		return
	}
	snap := m.game.Snapshot()
	if snap.Elapsed <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveRun(newRunRecord(m.config.Player, snap, m.game.State().LevelName, completed))
	m.recorded = true
}

// newRunRecord converts a finished or abandoned run into a history row.
func newRunRecord(player string, snap game.Snapshot, levelName string, completed bool) storage.RunRecord {
	return storage.RunRecord{
		Player:          player,
		Seed:            snap.Seed,
		LevelID:         snap.LevelID,
		LevelName:       levelName,
		Biomass:         snap.Biomass,
		GeneratorsOwned: snap.GeneratorsOwned,
		UpgradesBought:  snap.UpgradesPurchased,
		DurationSecs:    snap.Elapsed,
		Completed:       completed,
	}
}

// saveScreenshot writes the current screen to ~/.biomass/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".biomass", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
