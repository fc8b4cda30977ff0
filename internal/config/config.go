// Package config provides YAML-based content and rules configuration for the
// biomass game, plus difficulty presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/biomass/internal/engine"
	"github.com/vovakirdan/biomass/internal/levels"
)

// BiomassConfig contains all tunable content of a game.
type BiomassConfig struct {
	Economy    EconomyConfig     `yaml:"economy"`
	Nutrients  NutrientConfig    `yaml:"nutrients"`
	Levels     []levels.Level    `yaml:"levels,omitempty"` // Empty means the built-in catalog
	Generators []GeneratorConfig `yaml:"generators"`
	Upgrades   []UpgradeConfig   `yaml:"upgrades"`
}

// EconomyConfig defines the starting economy.
type EconomyConfig struct {
	ClickPower      float64 `yaml:"click_power"`
	StartingBiomass float64 `yaml:"starting_biomass"`
}

// NutrientConfig defines the nutrient lifecycle rules.
type NutrientConfig struct {
	Floor       int     `yaml:"floor"`        // Minimum unconsumed nutrients
	Batch       int     `yaml:"batch"`        // Nutrients per spawn batch
	Reward      float64 `yaml:"reward"`       // Biomass per nutrient
	WorldWidth  float64 `yaml:"world_width"`  // Spawn rectangle width, centred at origin
	WorldHeight float64 `yaml:"world_height"` // Spawn rectangle height, centred at origin
}

// GeneratorConfig defines one generator.
type GeneratorConfig struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	BaseCost       float64 `yaml:"base_cost"`
	CostMultiplier float64 `yaml:"cost_multiplier"`
	BaseEffect     float64 `yaml:"base_effect"`
	UnlockedAt     string  `yaml:"unlocked_at"` // Level name
}

// UpgradeConfig defines one upgrade.
type UpgradeConfig struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Cost        float64 `yaml:"cost"`
	Effect      float64 `yaml:"effect"`
	Type        string  `yaml:"type"` // growth, split, click, blob
	UnlockedAt  string  `yaml:"unlocked_at"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// costScaleForPreset returns the price multiplier for a preset.
func costScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyBiomassPreset modifies the config based on a difficulty preset.
func ApplyBiomassPreset(cfg *BiomassConfig, preset DifficultyPreset) {
	scale := costScaleForPreset(preset)
	for i := range cfg.Generators {
		cfg.Generators[i].BaseCost *= scale
	}
	for i := range cfg.Upgrades {
		cfg.Upgrades[i].Cost *= scale
	}

	switch preset {
	case DifficultyEasy:
		cfg.Nutrients.Reward *= 2
		cfg.Economy.ClickPower *= 2
	case DifficultyHard:
		cfg.Nutrients.Floor = max(cfg.Nutrients.Batch, cfg.Nutrients.Floor/2)
	}
}

// Catalog builds the level catalog. An empty level list selects the
// built-in catalog.
func (c BiomassConfig) Catalog() (*levels.Catalog, error) {
	if len(c.Levels) == 0 {
		return levels.Default(), nil
	}
	return levels.NewCatalog(c.Levels)
}

// Rules converts the nutrient section into engine rules.
func (c BiomassConfig) Rules() engine.Rules {
	return engine.Rules{
		NutrientFloor:   c.Nutrients.Floor,
		NutrientBatch:   c.Nutrients.Batch,
		NutrientReward:  c.Nutrients.Reward,
		WorldHalfWidth:  c.Nutrients.WorldWidth / 2,
		WorldHalfHeight: c.Nutrients.WorldHeight / 2,
	}
}

// Setup converts the economy, generator and upgrade sections into an engine
// setup seeded with seed.
func (c BiomassConfig) Setup(seed int64) (engine.Setup, error) {
	setup := engine.Setup{
		ClickPower:      c.Economy.ClickPower,
		StartingBiomass: c.Economy.StartingBiomass,
		Seed:            seed,
		Generators:      make([]engine.GeneratorState, 0, len(c.Generators)),
		Upgrades:        make([]engine.UpgradeState, 0, len(c.Upgrades)),
	}

	for _, g := range c.Generators {
		setup.Generators = append(setup.Generators, engine.GeneratorState{
			ID:              engine.GeneratorID(g.ID),
			Name:            g.Name,
			Description:     g.Description,
			BaseCost:        g.BaseCost,
			CostMultiplier:  g.CostMultiplier,
			BaseEffect:      g.BaseEffect,
			UnlockedAtLevel: g.UnlockedAt,
		})
	}

	for _, u := range c.Upgrades {
		typ, err := engine.ParseUpgradeType(u.Type)
		if err != nil {
			return engine.Setup{}, fmt.Errorf("upgrade %q: %w", u.ID, err)
		}
		setup.Upgrades = append(setup.Upgrades, engine.UpgradeState{
			ID:              engine.UpgradeID(u.ID),
			Name:            u.Name,
			Description:     u.Description,
			Cost:            u.Cost,
			Effect:          u.Effect,
			Type:            typ,
			UnlockedAtLevel: u.UnlockedAt,
		})
	}

	return setup, nil
}

// Build validates the whole config and returns a ready engine with its
// initial state. Unlock requirements that name no level are rejected here so
// a typo cannot silently lock content forever.
func (c BiomassConfig) Build(seed int64) (*engine.Engine, engine.GameState, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, engine.GameState{}, fmt.Errorf("config: levels: %w", err)
	}

	for _, g := range c.Generators {
		if _, ok := catalog.OrdinalOf(g.UnlockedAt); !ok {
			return nil, engine.GameState{}, fmt.Errorf("config: generator %q unlocks at unknown level %q", g.ID, g.UnlockedAt)
		}
	}
	for _, u := range c.Upgrades {
		if _, ok := catalog.OrdinalOf(u.UnlockedAt); !ok {
			return nil, engine.GameState{}, fmt.Errorf("config: upgrade %q unlocks at unknown level %q", u.ID, u.UnlockedAt)
		}
	}

	eng, err := engine.New(catalog, c.Rules())
	if err != nil {
		return nil, engine.GameState{}, fmt.Errorf("config: %w", err)
	}

	setup, err := c.Setup(seed)
	if err != nil {
		return nil, engine.GameState{}, fmt.Errorf("config: %w", err)
	}

	state, err := engine.NewGameState(setup)
	if err != nil {
		return nil, engine.GameState{}, fmt.Errorf("config: %w", err)
	}

	return eng, state, nil
}
