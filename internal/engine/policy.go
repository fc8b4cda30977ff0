package engine

// IsUnlocked reports whether the named level has been reached. Names the
// catalog does not know are treated as locked.
func (e *Engine) IsUnlocked(requirement string, s GameState) bool {
	ord, ok := e.catalog.OrdinalOf(requirement)
	if !ok {
		return false
	}
	return ord <= s.CurrentLevelID
}

// CanAfford reports whether the state holds at least cost biomass.
func CanAfford(cost float64, s GameState) bool {
	return s.Biomass >= cost
}

// CanPurchaseGenerator reports whether the next level of a generator can be
// bought right now.
func (e *Engine) CanPurchaseGenerator(id GeneratorID, s GameState) bool {
	g, ok := s.Generators[id]
	if !ok {
		return false
	}
	return e.IsUnlocked(g.UnlockedAtLevel, s) && CanAfford(g.NextCost(), s)
}

// CanPurchaseUpgrade reports whether an upgrade can be bought right now.
func (e *Engine) CanPurchaseUpgrade(id UpgradeID, s GameState) bool {
	u, ok := s.Upgrades[id]
	if !ok || u.Purchased {
		return false
	}
	return e.IsUnlocked(u.UnlockedAtLevel, s) && CanAfford(u.Cost, s)
}
