// Package game hosts a single biomass run. It owns the one GameState slot,
// turns host actions into engine transitions, advances time once per step
// and draws the HUD into a core.Screen.
package game

import (
	"fmt"

	"github.com/vovakirdan/biomass/internal/core"
	"github.com/vovakirdan/biomass/internal/engine"
)

// Panel selects which shop list the cursor moves in.
type Panel int

const (
	PanelGenerators Panel = iota
	PanelUpgrades
)

func (p Panel) String() string {
	if p == PanelUpgrades {
		return "upgrades"
	}
	return "generators"
}

// messageSeconds is how long a status message stays on the footer.
const messageSeconds = 2

// Game runs one biomass session. It is not safe for concurrent use; the
// platform calls it from a single update loop.
type Game struct {
	eng     *engine.Engine
	initial engine.GameState // Template for new runs
	state   engine.GameState

	cfg      core.RuntimeConfig
	dt       float64
	tick     uint64
	panel    Panel
	cursor   int
	paused   bool
	complete bool

	message      string
	messageColor core.Color
	messageTicks int
}

// New creates a host over eng. initial is the state every run starts from;
// it is never modified.
func New(eng *engine.Engine, initial engine.GameState) *Game {
	return &Game{eng: eng, initial: initial.Clone()}
}

// ID returns the identifier runs are recorded under.
func (g *Game) ID() string {
	return "biomass"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Biomass"
}

// Engine returns the engine the host drives.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// GameState returns a copy of the current engine state.
func (g *Game) GameState() engine.GameState {
	return g.state.Clone()
}

// Reset starts a new run. A non-zero cfg.Seed replaces the template seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg
	g.dt = 1 / float64(cfg.TickRate)
	g.tick = 0
	g.panel = PanelGenerators
	g.cursor = 0
	g.paused = false
	g.message = ""
	g.messageTicks = 0

	s := g.initial.Clone()
	if cfg.Seed != 0 {
		s.Seed = cfg.Seed
	}
	// A zero-length tick seeds the nutrient field and settles the level.
	g.state = g.eng.Tick(s, 0)
	g.complete = g.eng.Catalog().IsLast(g.state.CurrentLevelID)
}

// Resize adapts to new screen dimensions without touching the run.
func (g *Game) Resize(width, height int) {
	g.cfg.ScreenW = width
	g.cfg.ScreenH = height
}

// Step applies one frame of input and advances time by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.messageTicks > 0 {
		g.messageTicks--
	}

	if in.Has(core.ActionRestart) && g.complete {
		cfg := g.cfg
		cfg.Seed = g.state.Seed + 1
		g.Reset(cfg)
		return core.StepResult{Status: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{Status: g.State()}
	}

	var events []core.Event
	g.handleNavigation(in)
	if in.Has(core.ActionConfirm) {
		events = append(events, g.buySelected())
	}
	if in.Has(core.ActionEat) {
		if ev, ok := g.eatNearest(); ok {
			events = append(events, ev)
		}
	}
	if in.Has(core.ActionClick) {
		if ev, ok := g.feed(); ok {
			events = append(events, ev)
		}
	}

	before := g.state.CurrentLevelID
	g.state = g.eng.Tick(g.state, g.dt)
	events = append(events, g.levelEvents(before)...)

	for _, ev := range events {
		g.announce(ev)
	}
	return core.StepResult{Status: g.State(), Events: events}
}

func (g *Game) handleNavigation(in core.InputFrame) {
	if in.Has(core.ActionTab) {
		if g.panel == PanelGenerators {
			g.panel = PanelUpgrades
		} else {
			g.panel = PanelGenerators
		}
		g.cursor = 0
	}

	n := g.panelLen()
	switch {
	case in.Has(core.ActionUp):
		g.cursor--
	case in.Has(core.ActionDown):
		g.cursor++
	}
	g.cursor = core.Clamp(g.cursor, 0, max(n-1, 0))
}

func (g *Game) panelLen() int {
	if g.panel == PanelUpgrades {
		return len(g.state.UpgradeOrder)
	}
	return len(g.state.GeneratorOrder)
}

// buySelected purchases the item under the cursor. The policy is checked
// first only to explain a refusal; the engine re-validates regardless.
func (g *Game) buySelected() core.Event {
	if g.panelLen() == 0 {
		return core.Event{Kind: core.EventRejected, Subject: "nothing to buy"}
	}

	if g.panel == PanelUpgrades {
		id := g.state.UpgradeOrder[g.cursor]
		u := g.state.Upgrades[id]
		if !g.eng.CanPurchaseUpgrade(id, g.state) {
			return core.Event{Kind: core.EventRejected, Subject: g.refusal(u.Name, u.UnlockedAtLevel, u.Cost, u.Purchased)}
		}
		g.state = g.eng.PurchaseUpgrade(g.state, id)
		return core.Event{Kind: core.EventBoughtUpgrade, Subject: u.Name, Amount: u.Cost}
	}

	id := g.state.GeneratorOrder[g.cursor]
	gen := g.state.Generators[id]
	cost := gen.NextCost()
	if !g.eng.CanPurchaseGenerator(id, g.state) {
		return core.Event{Kind: core.EventRejected, Subject: g.refusal(gen.Name, gen.UnlockedAtLevel, cost, false)}
	}
	g.state = g.eng.PurchaseGenerator(g.state, id)
	return core.Event{Kind: core.EventBoughtGenerator, Subject: gen.Name, Amount: cost}
}

func (g *Game) refusal(name, requirement string, cost float64, owned bool) string {
	switch {
	case owned:
		return fmt.Sprintf("%s is already part of you", name)
	case !g.eng.IsUnlocked(requirement, g.state):
		return fmt.Sprintf("%s unlocks at %s", name, g.levelDisplayName(requirement))
	default:
		return fmt.Sprintf("%s needs %s biomass", name, FormatBiomass(cost))
	}
}

func (g *Game) levelDisplayName(name string) string {
	if lvl, ok := g.eng.Catalog().ByName(name); ok {
		return lvl.Title()
	}
	return name
}

func (g *Game) eatNearest() (core.Event, bool) {
	n, ok := engine.NearestNutrient(g.state, engine.Position{})
	if !ok {
		return core.Event{}, false
	}
	before := g.state.Biomass
	g.state = g.eng.ConsumeNutrient(g.state, n.ID)
	return core.Event{Kind: core.EventAte, Amount: g.state.Biomass - before}, true
}

func (g *Game) feed() (core.Event, bool) {
	before := g.state.Biomass
	g.state = g.eng.Click(g.state)
	gain := g.state.Biomass - before
	if gain <= 0 {
		return core.Event{}, false
	}
	return core.Event{Kind: core.EventFed, Amount: gain}, true
}

// levelEvents reports every level climbed past before, in order, and the
// first arrival at the terminal level.
func (g *Game) levelEvents(before int) []core.Event {
	var events []core.Event
	for id := before + 1; id <= g.state.CurrentLevelID; id++ {
		lvl, ok := g.eng.Catalog().ByID(id)
		if !ok {
			break
		}
		events = append(events, core.Event{Kind: core.EventEvolved, Subject: lvl.Title()})
		if !g.complete && g.eng.Catalog().IsLast(lvl.ID) {
			g.complete = true
			events = append(events, core.Event{Kind: core.EventCompleted, Subject: lvl.Title()})
		}
	}
	return events
}

func (g *Game) announce(ev core.Event) {
	var text string
	color := core.ColorWhite

	switch ev.Kind {
	case core.EventBoughtGenerator, core.EventBoughtUpgrade:
		text = fmt.Sprintf("Grew %s for %s", ev.Subject, FormatBiomass(ev.Amount))
		color = core.ColorBlob
	case core.EventRejected:
		text = ev.Subject
		color = core.ColorAlert
	case core.EventEvolved:
		text = fmt.Sprintf("Evolved: %s", ev.Subject)
		color = core.ColorTitle
	case core.EventCompleted:
		text = fmt.Sprintf("You have consumed the %s", ev.Subject)
		color = core.ColorTitle
	default:
		// Eating and feeding happen too often to be worth a message.
		return
	}

	g.message = text
	g.messageColor = color
	g.messageTicks = messageSeconds * g.cfg.TickRate
}

// State returns the run status.
func (g *Game) State() core.Status {
	lvl := g.eng.CurrentLevel(g.state)
	return core.Status{
		Biomass:   g.state.Biomass,
		Growth:    g.state.Growth,
		LevelID:   g.state.CurrentLevelID,
		LevelName: lvl.Title(),
		Elapsed:   g.state.Elapsed,
		Completed: g.complete,
		Paused:    g.paused,
	}
}
