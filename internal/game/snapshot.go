package game

import "github.com/vovakirdan/biomass/internal/engine"

// Snapshot captures the host and engine state for determinism tests and run
// records.
type Snapshot struct {
	Tick              uint64
	Seed              int64
	Biomass           float64
	Growth            float64
	LevelID           int
	HighestLevel      int
	Nutrients         int // Unconsumed
	GeneratorsOwned   int
	UpgradesPurchased int
	Elapsed           float64
	Panel             Panel
	Cursor            int
	Paused            bool
	Completed         bool
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:              g.tick,
		Seed:              g.state.Seed,
		Biomass:           g.state.Biomass,
		Growth:            g.state.Growth,
		LevelID:           g.state.CurrentLevelID,
		HighestLevel:      g.state.HighestLevelReached,
		Nutrients:         engine.UnconsumedCount(g.state),
		GeneratorsOwned:   g.state.GeneratorsOwned(),
		UpgradesPurchased: g.state.UpgradesPurchased(),
		Elapsed:           g.state.Elapsed,
		Panel:             g.panel,
		Cursor:            g.cursor,
		Paused:            g.paused,
		Completed:         g.complete,
	}
}
