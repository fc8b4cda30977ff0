// Package sim plays biomass headlessly with a fixed greedy policy. It is used
// to balance content configs: every run is deterministic for a given config
// and seed, and samples can be written as CSV for plotting.
package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/biomass/internal/engine"
)

// Options controls a simulation run.
type Options struct {
	Ticks       int  // Upper bound on steps
	TickRate    int  // Steps per simulated second
	EatEvery    int  // Eat the nearest nutrient every N ticks; 0 never eats
	ClickEvery  int  // Feed every N ticks; 0 never feeds
	SampleEvery int  // Record a sample every N ticks
	StopOnFinal bool // Stop once the final level is reached
	Origin      engine.Position
}

// DefaultOptions plays one simulated hour at 10 ticks per second, eating
// once a second and sampling every ten seconds.
func DefaultOptions() Options {
	return Options{
		Ticks:       10 * 60 * 60,
		TickRate:    10,
		EatEvery:    10,
		SampleEvery: 100,
		StopOnFinal: true,
	}
}

func (o Options) validate() error {
	switch {
	case o.Ticks <= 0:
		return fmt.Errorf("sim: ticks %d must be positive", o.Ticks)
	case o.TickRate <= 0:
		return fmt.Errorf("sim: tick rate %d must be positive", o.TickRate)
	case o.EatEvery < 0 || o.ClickEvery < 0:
		return fmt.Errorf("sim: negative action interval")
	case o.SampleEvery <= 0:
		return fmt.Errorf("sim: sample interval %d must be positive", o.SampleEvery)
	}
	return nil
}

// Record is one CSV sample row.
type Record struct {
	Tick       int     `csv:"tick"`
	Elapsed    float64 `csv:"elapsed"`
	Biomass    float64 `csv:"biomass"`
	Growth     float64 `csv:"growth"`
	LevelID    int     `csv:"level_id"`
	Level      string  `csv:"level"`
	Generators int     `csv:"generators"`
	Upgrades   int     `csv:"upgrades"`
	Nutrients  int     `csv:"nutrients"`
}

// Milestone marks the first arrival at a level.
type Milestone struct {
	LevelID int     `csv:"level_id"`
	Level   string  `csv:"level"`
	Tick    int     `csv:"tick"`
	Elapsed float64 `csv:"elapsed"`
	Biomass float64 `csv:"biomass"`
}

// Simulator drives one engine state through the greedy policy.
type Simulator struct {
	eng    *engine.Engine
	state  engine.GameState
	opts   Options
	logger *log.Logger
	out    *OutputManager

	tick       int
	records    []Record
	milestones []Milestone
	eaten      int
	bought     int
}

// New creates a simulator starting from initial. A nil logger discards.
func New(eng *engine.Engine, initial engine.GameState, opts Options, logger *log.Logger) (*Simulator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Simulator{
		eng:    eng,
		state:  initial,
		opts:   opts,
		logger: logger,
	}
	// Settling may already climb levels when the run starts rich.
	s.state = eng.Tick(initial, 0)
	s.recordArrivals(initial.CurrentLevelID)
	return s, nil
}

// SetOutput attaches a CSV writer and writes the milestones recorded so
// far. A nil manager disables output.
func (s *Simulator) SetOutput(out *OutputManager) error {
	s.out = out
	for _, m := range s.milestones {
		if err := out.WriteMilestone(m); err != nil {
			return err
		}
	}
	return nil
}

// State returns a copy of the current state.
func (s *Simulator) State() engine.GameState {
	return s.state.Clone()
}

// Records returns the samples taken so far.
func (s *Simulator) Records() []Record {
	return s.records
}

// Milestones returns the level arrivals so far, in order.
func (s *Simulator) Milestones() []Milestone {
	return s.milestones
}

// Run steps until the tick budget is spent, the final level is reached with
// StopOnFinal set, or ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) (Summary, error) {
	s.logger.Info("simulation started",
		"ticks", s.opts.Ticks, "rate", s.opts.TickRate, "seed", s.state.Seed)

	if err := s.sample(); err != nil {
		return Summary{}, err
	}

	for s.tick < s.opts.Ticks {
		if s.tick%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return s.Summary(), err
			}
		}
		if err := s.Step(); err != nil {
			return s.Summary(), err
		}
		if s.opts.StopOnFinal && s.eng.Catalog().IsLast(s.state.CurrentLevelID) {
			break
		}
	}

	if s.tick%s.opts.SampleEvery != 0 {
		if err := s.sample(); err != nil {
			return s.Summary(), err
		}
	}

	summary := s.Summary()
	s.logger.Info("simulation finished",
		"ticks", summary.Ticks,
		"level", summary.FinalLevel,
		"biomass", summary.FinalBiomass,
		"eaten", s.eaten,
		"bought", s.bought)
	return summary, nil
}

// Step applies the policy for one tick and advances time.
func (s *Simulator) Step() error {
	s.act()

	before := s.state.CurrentLevelID
	s.state = s.eng.Tick(s.state, 1/float64(s.opts.TickRate))
	s.tick++

	for _, m := range s.recordArrivals(before) {
		if err := s.out.WriteMilestone(m); err != nil {
			return err
		}
	}
	if s.tick%s.opts.SampleEvery == 0 {
		return s.sample()
	}
	return nil
}

// act eats, feeds, then spends: every affordable upgrade in declaration
// order, then at most one level of the best-value affordable generator.
func (s *Simulator) act() {
	if s.opts.EatEvery > 0 && s.tick%s.opts.EatEvery == 0 {
		if n, ok := engine.NearestNutrient(s.state, s.opts.Origin); ok {
			s.state = s.eng.ConsumeNutrient(s.state, n.ID)
			s.eaten++
		}
	}
	if s.opts.ClickEvery > 0 && s.tick%s.opts.ClickEvery == 0 {
		s.state = s.eng.Click(s.state)
	}

	for _, id := range s.state.UpgradeOrder {
		if s.eng.CanPurchaseUpgrade(id, s.state) {
			s.state = s.eng.PurchaseUpgrade(s.state, id)
			s.bought++
			s.logger.Debug("bought upgrade", "id", id, "tick", s.tick)
		}
	}

	for _, r := range engine.RankGeneratorValues(s.state) {
		if s.eng.CanPurchaseGenerator(r.GeneratorID, s.state) {
			s.state = s.eng.PurchaseGenerator(s.state, r.GeneratorID)
			s.bought++
			s.logger.Debug("bought generator", "id", r.GeneratorID, "tick", s.tick)
			break
		}
	}
}

// recordArrivals adds one milestone per level climbed past before. A single
// tick can cross several thresholds.
func (s *Simulator) recordArrivals(before int) []Milestone {
	var added []Milestone
	for id := before + 1; id <= s.state.CurrentLevelID; id++ {
		lvl, ok := s.eng.Catalog().ByID(id)
		if !ok {
			break
		}
		m := Milestone{
			LevelID: lvl.ID,
			Level:   lvl.Title(),
			Tick:    s.tick,
			Elapsed: s.state.Elapsed,
			Biomass: s.state.Biomass,
		}
		s.logger.Info("evolved", "level", m.Level, "elapsed", m.Elapsed)
		added = append(added, m)
	}
	s.milestones = append(s.milestones, added...)
	return added
}

func (s *Simulator) sample() error {
	lvl := s.eng.CurrentLevel(s.state)
	r := Record{
		Tick:       s.tick,
		Elapsed:    s.state.Elapsed,
		Biomass:    s.state.Biomass,
		Growth:     s.state.Growth,
		LevelID:    s.state.CurrentLevelID,
		Level:      lvl.Title(),
		Generators: s.state.GeneratorsOwned(),
		Upgrades:   s.state.UpgradesPurchased(),
		Nutrients:  engine.UnconsumedCount(s.state),
	}
	s.records = append(s.records, r)
	return s.out.WriteRecord(r)
}
