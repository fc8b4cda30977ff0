package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ValueTier classifies a generator's relative purchase value.
type ValueTier string

const (
	TierGood    ValueTier = "good"
	TierNeutral ValueTier = "neutral"
	TierPoor    ValueTier = "poor"
)

// Tier cut-offs on position/(n-1).
const (
	goodTierCutoff    = 0.33
	neutralTierCutoff = 0.66
)

// GeneratorRank is one row of the advisory value ranking.
type GeneratorRank struct {
	GeneratorID GeneratorID
	Value       float64
	Tier        ValueTier
	Rank        int // 1-based
}

// upgradeProduct multiplies the effects of purchased upgrades of one type.
// Iteration follows declaration order so the result is bit-for-bit stable.
func upgradeProduct(s GameState, typ UpgradeType) float64 {
	effects := make([]float64, 0, len(s.UpgradeOrder))
	for _, id := range s.UpgradeOrder {
		u, ok := s.Upgrades[id]
		if !ok || !u.Purchased || u.Type != typ {
			continue
		}
		effects = append(effects, u.Effect)
	}
	return floats.Prod(effects)
}

// EffectiveClickPower returns base click power multiplied by every purchased
// click upgrade.
func EffectiveClickPower(s GameState) float64 {
	return s.ClickPower * upgradeProduct(s, UpgradeClick)
}

// SplitFactor returns the product of purchased split upgrades. It only
// affects how many blobs the host draws.
func SplitFactor(s GameState) float64 {
	return upgradeProduct(s, UpgradeSplit)
}

// BlobScale returns the product of purchased blob upgrades, the host's
// drawing scale for the organism.
func BlobScale(s GameState) float64 {
	return upgradeProduct(s, UpgradeBlob)
}

// EffectiveGrowthRate returns biomass per second: the output of every unlocked
// generator, multiplied by every purchased growth upgrade. Locked generators
// contribute nothing regardless of level.
func (e *Engine) EffectiveGrowthRate(s GameState) float64 {
	outputs := make([]float64, 0, len(s.GeneratorOrder))
	for _, id := range s.GeneratorOrder {
		g, ok := s.Generators[id]
		if !ok || !e.IsUnlocked(g.UnlockedAtLevel, s) {
			continue
		}
		outputs = append(outputs, g.BaseEffect*float64(g.Level))
	}
	return floats.Sum(outputs) * upgradeProduct(s, UpgradeGrowth)
}

// GeneratorValue returns growth gained per unit of biomass spent on the next
// level of g. Non-positive or non-finite costs yield 0.
func GeneratorValue(g GeneratorState) float64 {
	cost := g.NextCost()
	if cost <= 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0
	}
	return g.BaseEffect / cost
}

// RankGeneratorValues orders generators by descending value. Ties keep
// declaration order. The result is advisory and never gates a purchase.
func RankGeneratorValues(s GameState) []GeneratorRank {
	ranks := make([]GeneratorRank, 0, len(s.GeneratorOrder))
	for _, id := range s.GeneratorOrder {
		g, ok := s.Generators[id]
		if !ok {
			continue
		}
		ranks = append(ranks, GeneratorRank{GeneratorID: id, Value: GeneratorValue(g)})
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Value > ranks[j].Value
	})

	n := len(ranks)
	for i := range ranks {
		ranks[i].Rank = i + 1
		ranks[i].Tier = tierAt(i, n)
	}
	return ranks
}

// tierAt classifies a 0-based position among n ranked items.
func tierAt(pos, n int) ValueTier {
	if n <= 1 {
		return TierGood
	}
	ratio := float64(pos) / float64(n-1)
	switch {
	case ratio <= goodTierCutoff:
		return TierGood
	case ratio <= neutralTierCutoff:
		return TierNeutral
	default:
		return TierPoor
	}
}
