package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/biomass/internal/config"
	"github.com/vovakirdan/biomass/internal/core"
	"github.com/vovakirdan/biomass/internal/game"
	"github.com/vovakirdan/biomass/internal/storage"
)

func newTestModel(t *testing.T, startingBiomass float64, store *storage.Store) Model {
	t.Helper()
	cfg := config.DefaultBiomassConfig()
	cfg.Economy.StartingBiomass = startingBiomass
	eng, state, err := cfg.Build(42)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	m := NewModel(game.New(eng, state), store, core.RuntimeConfig{
		ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42, Player: "tester",
	})
	m.Init()
	return m
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return out
}

func TestModelKeysReachGame(t *testing.T) {
	m := newTestModel(t, 0, nil)

	m = update(t, m, runeKey("f"))
	m = update(t, m, TickMsg{})

	if got := m.game.State().Biomass; got != 1 {
		t.Errorf("Biomass after feeding = %v, want 1", got)
	}
	if !m.inputFrame.Empty() {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestModelRecordsCompletedRunOnce(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, 999_999_999, store)

	m = update(t, m, runeKey("f"))
	m = update(t, m, TickMsg{})
	if !m.status.Completed {
		t.Fatal("feeding should push the run to the final level")
	}
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("q"))
	if !m.quitting {
		t.Error("q should quit")
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(runs))
	}
	r := runs[0]
	if !r.Completed || r.Player != "tester" || r.LevelID != 7 || r.Seed != 42 {
		t.Errorf("recorded run = %+v", r)
	}
}

func TestModelRecordsAbandonedRun(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, 0, store)

	m = update(t, m, runeKey("f"))
	m = update(t, m, TickMsg{})
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	best, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Completed || best.LevelName != "Microscopic" {
		t.Errorf("abandoned run = %+v", best)
	}
}

func TestModelSkipsEmptyRun(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, 0, store)

	update(t, m, runeKey("q"))

	if best, _ := store.BestRun(); best != nil {
		t.Errorf("a run that never ticked should not be recorded: %+v", best)
	}
}

func TestModelRunBoardToggle(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, 0, store)

	m = update(t, m, runeKey("b"))
	if m.board == nil {
		t.Fatal("b should open the run board")
	}
	if !strings.Contains(m.View(), "TOP RUNS") {
		t.Error("run board view should show its title")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board.view != BoardMine {
		t.Error("tab should switch the board to the player's runs")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Error("esc should close the run board")
	}
	if m.quitting {
		t.Error("closing the board must not quit")
	}
}

func TestModelWithoutStoreIgnoresBoard(t *testing.T) {
	m := newTestModel(t, 0, nil)
	m = update(t, m, runeKey("b"))
	if m.board != nil {
		t.Error("the board needs a store")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, 0, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "BIOMASS") {
		t.Error("view should render the HUD")
	}
}

func TestRunRowsTruncates(t *testing.T) {
	runs := []storage.RunRecord{
		{Player: "a", LevelName: "Pond", Biomass: 1234, DurationSecs: 75, Completed: true},
	}

	rows := runRows(runs, 6)
	want := []string{"#1", "a", "Pond ★", "1,234", "1:15", "-"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("cell %d = %q, want %q", i, rows[0][i], cell)
		}
	}

	if short := runRows(runs, 4); len(short[0]) != 4 {
		t.Errorf("truncated row has %d cells, want 4", len(short[0]))
	}
}
