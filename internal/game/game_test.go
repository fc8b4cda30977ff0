package game

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/biomass/internal/config"
	"github.com/vovakirdan/biomass/internal/core"
)

func newTestGame(t *testing.T, mutate func(*config.BiomassConfig)) *Game {
	t.Helper()
	cfg := config.DefaultBiomassConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	eng, state, err := cfg.Build(42)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	g := New(eng, state)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.NewInputFrame(actions...))
}

func TestResetSeedsNutrients(t *testing.T) {
	g := newTestGame(t, nil)
	snap := g.Snapshot()

	if snap.Nutrients != 20 {
		t.Errorf("Nutrients = %d, want 20", snap.Nutrients)
	}
	if snap.Tick != 0 || snap.Elapsed != 0 {
		t.Errorf("fresh run has tick %d, elapsed %v", snap.Tick, snap.Elapsed)
	}
	if snap.LevelID != 0 || snap.Completed {
		t.Errorf("fresh run at level %d, completed %v", snap.LevelID, snap.Completed)
	}
	if snap.Seed != 42 {
		t.Errorf("Seed = %d, want 42", snap.Seed)
	}
}

func TestStepAdvancesTime(t *testing.T) {
	g := newTestGame(t, nil)
	for range 10 {
		step(g)
	}
	if got := g.Snapshot().Elapsed; math.Abs(got-1) > 1e-9 {
		t.Errorf("Elapsed after 10 steps at 10 Hz = %v, want 1", got)
	}
}

func TestEatFeedAndBuy(t *testing.T) {
	g := newTestGame(t, nil)

	res := step(g, core.ActionEat)
	if !res.Has(core.EventAte) {
		t.Error("eating should report EventAte")
	}
	if res.Status.Biomass != 1 {
		t.Errorf("Biomass after eating = %v, want 1", res.Status.Biomass)
	}

	for range 9 {
		step(g, core.ActionClick)
	}
	if got := g.State().Biomass; got != 10 {
		t.Fatalf("Biomass = %v, want 10", got)
	}

	res = step(g, core.ActionConfirm)
	if !res.Has(core.EventBoughtGenerator) {
		t.Fatalf("expected a generator purchase, got %+v", res.Events)
	}
	snap := g.Snapshot()
	if snap.GeneratorsOwned != 1 {
		t.Errorf("GeneratorsOwned = %d, want 1", snap.GeneratorsOwned)
	}
	if snap.Growth != 0.5 {
		t.Errorf("Growth = %v, want 0.5", snap.Growth)
	}
}

func TestBuyRefusalsExplain(t *testing.T) {
	g := newTestGame(t, nil)

	res := step(g, core.ActionConfirm)
	if len(res.Events) == 0 || res.Events[0].Kind != core.EventRejected {
		t.Fatalf("expected a rejection, got %+v", res.Events)
	}
	if !strings.Contains(res.Events[0].Subject, "needs") {
		t.Errorf("refusal %q should mention the price", res.Events[0].Subject)
	}

	step(g, core.ActionDown)
	res = step(g, core.ActionConfirm)
	if !strings.Contains(res.Events[0].Subject, "unlocks at Petri Dish") {
		t.Errorf("refusal %q should name the unlock level", res.Events[0].Subject)
	}
	if g.Snapshot().GeneratorsOwned != 0 {
		t.Error("refused purchases must not change the state")
	}
}

func TestCursorAndTabs(t *testing.T) {
	g := newTestGame(t, nil)

	step(g, core.ActionUp)
	if c := g.Snapshot().Cursor; c != 0 {
		t.Errorf("cursor moved above the list: %d", c)
	}

	step(g, core.ActionTab)
	if p := g.Snapshot().Panel; p != PanelUpgrades {
		t.Errorf("Panel = %v, want upgrades", p)
	}
	for range 20 {
		step(g, core.ActionDown)
	}
	if c := g.Snapshot().Cursor; c != 7 {
		t.Errorf("cursor = %d, want last upgrade 7", c)
	}

	step(g, core.ActionTab)
	if snap := g.Snapshot(); snap.Panel != PanelGenerators || snap.Cursor != 0 {
		t.Errorf("after tab back: panel %v cursor %d", snap.Panel, snap.Cursor)
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := newTestGame(t, nil)

	step(g, core.ActionPause)
	before := g.Snapshot()
	res := step(g, core.ActionEat, core.ActionClick)
	if !res.Status.Paused {
		t.Error("status should report paused")
	}
	after := g.Snapshot()
	if after.Biomass != before.Biomass || after.Elapsed != before.Elapsed {
		t.Error("a paused run must not change")
	}

	step(g, core.ActionPause)
	if g.Snapshot().Paused {
		t.Error("second pause should resume")
	}
}

func TestEvolutionEvent(t *testing.T) {
	g := newTestGame(t, func(c *config.BiomassConfig) { c.Economy.StartingBiomass = 99 })

	res := step(g, core.ActionClick)
	if !res.Has(core.EventEvolved) {
		t.Fatalf("expected evolution, got %+v", res.Events)
	}
	if res.Status.LevelName != "Petri Dish" {
		t.Errorf("LevelName = %q, want Petri Dish", res.Status.LevelName)
	}
	if res.Has(core.EventCompleted) {
		t.Error("petri dish is not the final level")
	}
}

func TestEvolutionAcrossSeveralLevels(t *testing.T) {
	g := newTestGame(t, func(c *config.BiomassConfig) { c.Economy.ClickPower = 5000 })

	res := step(g, core.ActionClick)
	var evolved []string
	for _, ev := range res.Events {
		if ev.Kind == core.EventEvolved {
			evolved = append(evolved, ev.Subject)
		}
	}
	want := []string{"Petri Dish", "Puddle"}
	if !reflect.DeepEqual(evolved, want) {
		t.Errorf("evolution events = %v, want %v", evolved, want)
	}
}

func TestCompletionAndRestart(t *testing.T) {
	g := newTestGame(t, func(c *config.BiomassConfig) { c.Economy.StartingBiomass = 999_999_999 })

	res := step(g, core.ActionClick)
	if !res.Has(core.EventCompleted) {
		t.Fatalf("expected completion, got %+v", res.Events)
	}
	if !res.Status.Completed || res.Status.LevelID != 7 {
		t.Errorf("status = %+v, want completed at level 7", res.Status)
	}

	res = step(g, core.ActionClick)
	if res.Has(core.EventCompleted) {
		t.Error("completion must be reported once")
	}

	step(g, core.ActionRestart)
	snap := g.Snapshot()
	if snap.Seed != 43 {
		t.Errorf("restart seed = %d, want 43", snap.Seed)
	}
	if snap.Tick != 0 {
		t.Errorf("restart tick = %d, want 0", snap.Tick)
	}
}

func TestRestartIgnoredMidRun(t *testing.T) {
	g := newTestGame(t, nil)
	step(g)
	step(g, core.ActionRestart)
	if g.Snapshot().Tick != 2 {
		t.Error("restart should only apply to a completed run")
	}
}

func TestDeterminism(t *testing.T) {
	script := [][]core.Action{
		{core.ActionEat}, {core.ActionClick}, {core.ActionEat, core.ActionClick},
		{core.ActionConfirm}, {core.ActionTab}, {core.ActionDown}, {core.ActionConfirm},
	}

	run := func() (Snapshot, any) {
		g := newTestGame(t, nil)
		for i := range 300 {
			step(g, script[i%len(script)]...)
		}
		return g.Snapshot(), g.GameState()
	}

	snapA, stateA := run()
	snapB, stateB := run()
	if snapA != snapB {
		t.Errorf("snapshots differ:\n%+v\n%+v", snapA, snapB)
	}
	if !reflect.DeepEqual(stateA, stateB) {
		t.Error("equal seeds and inputs must produce equal states")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"BIOMASS", "Microscopic", "Spore Pod x0", "Generators", "???", "@", "•"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderUpgradesPanel(t *testing.T) {
	g := newTestGame(t, nil)
	step(g, core.ActionTab)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Sticky Membrane") {
		t.Errorf("upgrades panel should list Sticky Membrane:\n%s", out)
	}
}

func TestRenderPausedAndTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	step(g, core.ActionPause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused run should show PAUSED")
	}

	small := core.NewScreen(40, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen should show a size warning")
	}
}

func TestFormatBiomass(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12.34, "12.3"},
		{1234, "1,234"},
		{999_999, "999,999"},
		{2_500_000, "2.5 M"},
		{math.NaN(), "?"},
	}

	for _, tc := range tests {
		if got := FormatBiomass(tc.in); got != tc.want {
			t.Errorf("FormatBiomass(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{75.9, "1:15"},
		{3725, "1:02:05"},
		{-3, "0:00"},
	}

	for _, tc := range tests {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
