package engine

import (
	"fmt"
	"math"

	"github.com/vovakirdan/biomass/internal/levels"
)

// Rules holds the numeric policy of the nutrient lifecycle.
type Rules struct {
	NutrientFloor   int     // Minimum unconsumed nutrients after maintenance
	NutrientBatch   int     // Nutrients added per spawn batch
	NutrientReward  float64 // Biomass gained per nutrient eaten
	WorldHalfWidth  float64 // Spawn rectangle is [-HalfWidth, HalfWidth]
	WorldHalfHeight float64 // Spawn rectangle is [-HalfHeight, HalfHeight]
}

// DefaultRules returns the standard nutrient rules.
func DefaultRules() Rules {
	return Rules{
		NutrientFloor:   20,
		NutrientBatch:   10,
		NutrientReward:  1,
		WorldHalfWidth:  400,
		WorldHalfHeight: 300,
	}
}

// Validate checks that the rules can drive the lifecycle.
func (r Rules) Validate() error {
	switch {
	case r.NutrientFloor < 0:
		return fmt.Errorf("engine: nutrient floor %d is negative", r.NutrientFloor)
	case r.NutrientBatch <= 0:
		return fmt.Errorf("engine: nutrient batch %d must be positive", r.NutrientBatch)
	case !finiteNonNegative(r.NutrientReward):
		return fmt.Errorf("engine: invalid nutrient reward %v", r.NutrientReward)
	case !finiteNonNegative(r.WorldHalfWidth) || !finiteNonNegative(r.WorldHalfHeight):
		return fmt.Errorf("engine: invalid world extent %vx%v", r.WorldHalfWidth, r.WorldHalfHeight)
	}
	return nil
}

// Engine binds the level catalog and rules to the state transitions.
// It holds no game state and is safe for concurrent use.
type Engine struct {
	catalog *levels.Catalog
	rules   Rules
}

// New creates an engine over a shared catalog.
func New(catalog *levels.Catalog, rules Rules) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("engine: nil level catalog")
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Engine{catalog: catalog, rules: rules}, nil
}

// Catalog returns the level catalog.
func (e *Engine) Catalog() *levels.Catalog {
	return e.catalog
}

// Rules returns the nutrient rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// CurrentLevel resolves the state's current level.
func (e *Engine) CurrentLevel(s GameState) levels.Level {
	lvl, ok := e.catalog.ByID(s.CurrentLevelID)
	if !ok {
		return e.catalog.First()
	}
	return lvl
}

// NextLevel returns the level after the current one, if any.
func (e *Engine) NextLevel(s GameState) (levels.Level, bool) {
	return e.catalog.Next(e.CurrentLevel(s))
}

// Progress returns how far biomass has moved from the current level's
// threshold toward the next one, in [0, 1]. The terminal level reports 1.
func (e *Engine) Progress(s GameState) float64 {
	next, ok := e.NextLevel(s)
	if !ok {
		return 1
	}
	from := e.CurrentLevel(s).Threshold
	span := next.Threshold - from
	if span <= 0 {
		return 1
	}
	return math.Max(0, math.Min(1, (s.Biomass-from)/span))
}
