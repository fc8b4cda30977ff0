// Package engine implements the progression and economy rules of the idle
// game. Every transition takes a GameState value and returns a new one; the
// input state is never modified. The host serializes calls through a single
// state slot and owns all timing, input, and rendering.
package engine

import (
	"fmt"
	"math"
	"slices"
)

// GeneratorID identifies a generator. Keys are fixed when the game is defined.
type GeneratorID string

// UpgradeID identifies an upgrade. Keys are fixed when the game is defined.
type UpgradeID string

// NutrientID identifies a nutrient for the lifetime of a state.
type NutrientID int64

// UpgradeType selects what an upgrade multiplies.
type UpgradeType string

const (
	UpgradeGrowth UpgradeType = "growth"
	UpgradeSplit  UpgradeType = "split"
	UpgradeClick  UpgradeType = "click"
	UpgradeBlob   UpgradeType = "blob"
)

// ParseUpgradeType validates a raw upgrade type name.
func ParseUpgradeType(s string) (UpgradeType, error) {
	switch t := UpgradeType(s); t {
	case UpgradeGrowth, UpgradeSplit, UpgradeClick, UpgradeBlob:
		return t, nil
	default:
		return "", fmt.Errorf("engine: unknown upgrade type %q", s)
	}
}

// GeneratorState is a repeatable purchase that adds passive growth per level.
type GeneratorState struct {
	ID              GeneratorID
	Name            string
	Description     string
	BaseCost        float64
	CostMultiplier  float64 // Always > 1
	BaseEffect      float64 // Growth per owned level
	Level           int     // Owned count
	UnlockedAtLevel string  // Level name required to purchase
}

// NextCost returns the price of the next level of this generator.
func (g GeneratorState) NextCost() float64 {
	return g.BaseCost * math.Pow(g.CostMultiplier, float64(g.Level))
}

// UpgradeState is a one-shot multiplier purchase.
type UpgradeState struct {
	ID              UpgradeID
	Name            string
	Description     string
	Cost            float64
	Effect          float64
	Type            UpgradeType
	Purchased       bool
	UnlockedAtLevel string
}

// Position is a world-space offset from the origin.
type Position struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two positions.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// NutrientState is a consumable world entity.
type NutrientState struct {
	ID       NutrientID
	Position Position
	Consumed bool
}

// GameState is the aggregate root of a game. Treat it as a value: use the
// engine's transitions or Clone before changing anything.
type GameState struct {
	Biomass    float64
	Growth     float64 // Cached EffectiveGrowthRate, refreshed by transitions
	ClickPower float64

	Generators     map[GeneratorID]GeneratorState
	Upgrades       map[UpgradeID]UpgradeState
	GeneratorOrder []GeneratorID // Declaration order
	UpgradeOrder   []UpgradeID   // Declaration order

	Nutrients      []NutrientState
	NextNutrientID NutrientID

	CurrentLevelID      int
	HighestLevelReached int

	Seed    int64   // Seeds nutrient placement
	Elapsed float64 // Simulated seconds accrued by Tick
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	c := s

	if s.Generators != nil {
		c.Generators = make(map[GeneratorID]GeneratorState, len(s.Generators))
		for id, g := range s.Generators {
			c.Generators[id] = g
		}
	}
	if s.Upgrades != nil {
		c.Upgrades = make(map[UpgradeID]UpgradeState, len(s.Upgrades))
		for id, u := range s.Upgrades {
			c.Upgrades[id] = u
		}
	}

	c.GeneratorOrder = slices.Clone(s.GeneratorOrder)
	c.UpgradeOrder = slices.Clone(s.UpgradeOrder)
	c.Nutrients = slices.Clone(s.Nutrients)
	return c
}

// Generator returns the generator with the given id.
func (s GameState) Generator(id GeneratorID) (GeneratorState, bool) {
	g, ok := s.Generators[id]
	return g, ok
}

// Upgrade returns the upgrade with the given id.
func (s GameState) Upgrade(id UpgradeID) (UpgradeState, bool) {
	u, ok := s.Upgrades[id]
	return u, ok
}

// Nutrient returns the nutrient with the given id.
func (s GameState) Nutrient(id NutrientID) (NutrientState, bool) {
	for _, n := range s.Nutrients {
		if n.ID == id {
			return n, true
		}
	}
	return NutrientState{}, false
}

// GeneratorsOwned returns the sum of all generator levels.
func (s GameState) GeneratorsOwned() int {
	total := 0
	for _, g := range s.Generators {
		total += g.Level
	}
	return total
}

// UpgradesPurchased returns the number of purchased upgrades.
func (s GameState) UpgradesPurchased() int {
	total := 0
	for _, u := range s.Upgrades {
		if u.Purchased {
			total++
		}
	}
	return total
}

// Setup describes the content of a new game.
type Setup struct {
	ClickPower      float64
	StartingBiomass float64
	Seed            int64
	Generators      []GeneratorState
	Upgrades        []UpgradeState
}

// NewGameState builds the initial state at level 0. Definition defects such
// as duplicate ids are reported here, before any transition runs.
func NewGameState(setup Setup) (GameState, error) {
	if !finiteNonNegative(setup.ClickPower) {
		return GameState{}, fmt.Errorf("engine: invalid click power %v", setup.ClickPower)
	}
	if !finiteNonNegative(setup.StartingBiomass) {
		return GameState{}, fmt.Errorf("engine: invalid starting biomass %v", setup.StartingBiomass)
	}

	s := GameState{
		Biomass:    setup.StartingBiomass,
		ClickPower: setup.ClickPower,
		Generators: make(map[GeneratorID]GeneratorState, len(setup.Generators)),
		Upgrades:   make(map[UpgradeID]UpgradeState, len(setup.Upgrades)),
		Seed:       setup.Seed,
	}

	for _, g := range setup.Generators {
		if err := validateGenerator(g); err != nil {
			return GameState{}, err
		}
		if _, dup := s.Generators[g.ID]; dup {
			return GameState{}, fmt.Errorf("engine: duplicate generator id %q", g.ID)
		}
		s.Generators[g.ID] = g
		s.GeneratorOrder = append(s.GeneratorOrder, g.ID)
	}

	for _, u := range setup.Upgrades {
		if err := validateUpgrade(u); err != nil {
			return GameState{}, err
		}
		if _, dup := s.Upgrades[u.ID]; dup {
			return GameState{}, fmt.Errorf("engine: duplicate upgrade id %q", u.ID)
		}
		s.Upgrades[u.ID] = u
		s.UpgradeOrder = append(s.UpgradeOrder, u.ID)
	}

	return s, nil
}

func validateGenerator(g GeneratorState) error {
	switch {
	case g.ID == "":
		return fmt.Errorf("engine: generator with empty id")
	case !finiteNonNegative(g.BaseCost):
		return fmt.Errorf("engine: generator %q has invalid base cost %v", g.ID, g.BaseCost)
	case math.IsNaN(g.CostMultiplier) || math.IsInf(g.CostMultiplier, 0) || g.CostMultiplier <= 1:
		return fmt.Errorf("engine: generator %q cost multiplier %v must be > 1", g.ID, g.CostMultiplier)
	case !finiteNonNegative(g.BaseEffect):
		return fmt.Errorf("engine: generator %q has invalid base effect %v", g.ID, g.BaseEffect)
	case g.Level < 0:
		return fmt.Errorf("engine: generator %q has negative level %d", g.ID, g.Level)
	}
	return nil
}

func validateUpgrade(u UpgradeState) error {
	switch {
	case u.ID == "":
		return fmt.Errorf("engine: upgrade with empty id")
	case !finiteNonNegative(u.Cost):
		return fmt.Errorf("engine: upgrade %q has invalid cost %v", u.ID, u.Cost)
	case !finiteNonNegative(u.Effect):
		return fmt.Errorf("engine: upgrade %q has invalid effect %v", u.ID, u.Effect)
	}
	if _, err := ParseUpgradeType(string(u.Type)); err != nil {
		return fmt.Errorf("upgrade %q: %w", u.ID, err)
	}
	return nil
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
