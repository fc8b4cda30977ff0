package engine

import "math"

// TryEvolve advances the current level past every threshold the biomass has
// crossed. A single call may climb several levels.
func (e *Engine) TryEvolve(s GameState) GameState {
	target := s.CurrentLevelID
	current := e.CurrentLevel(s)
	for {
		next, ok := e.catalog.Next(current)
		if !ok || s.Biomass < next.Threshold {
			break
		}
		current = next
		target = next.ID
	}
	if target <= s.CurrentLevelID {
		return s
	}

	out := s.Clone()
	out.CurrentLevelID = target
	if target > out.HighestLevelReached {
		out.HighestLevelReached = target
	}
	out.Growth = e.EffectiveGrowthRate(out)
	return out
}

// PurchaseGenerator buys the next level of a generator. Purchases the policy
// rejects return the state unchanged.
func (e *Engine) PurchaseGenerator(s GameState, id GeneratorID) GameState {
	if !e.CanPurchaseGenerator(id, s) {
		return s
	}

	out := s.Clone()
	g := out.Generators[id]
	out.Biomass -= g.NextCost()
	g.Level++
	out.Generators[id] = g
	out.Growth = e.EffectiveGrowthRate(out)
	return out
}

// PurchaseUpgrade buys a one-shot upgrade. Repeat purchases and purchases the
// policy rejects return the state unchanged.
func (e *Engine) PurchaseUpgrade(s GameState, id UpgradeID) GameState {
	if !e.CanPurchaseUpgrade(id, s) {
		return s
	}

	out := s.Clone()
	u := out.Upgrades[id]
	out.Biomass -= u.Cost
	u.Purchased = true
	out.Upgrades[id] = u
	out.Growth = e.EffectiveGrowthRate(out)
	return out
}

// Click feeds the blob directly with the current click power. Evolution is
// left to the next Tick.
func (e *Engine) Click(s GameState) GameState {
	gain := EffectiveClickPower(s)
	if gain <= 0 {
		return s
	}
	out := s.Clone()
	out.Biomass += gain
	return out
}

// Tick applies elapsedSeconds of growth, tops up nutrients, then evolves.
// Negative or non-finite elapsed time counts as zero.
func (e *Engine) Tick(s GameState, elapsedSeconds float64) GameState {
	if math.IsNaN(elapsedSeconds) || math.IsInf(elapsedSeconds, 0) || elapsedSeconds < 0 {
		elapsedSeconds = 0
	}

	out := s.Clone()
	rate := e.EffectiveGrowthRate(out)
	out.Biomass += rate * elapsedSeconds
	out.Elapsed += elapsedSeconds
	out.Growth = rate

	out = e.MaintainNutrientPopulation(out)
	return e.TryEvolve(out)
}
