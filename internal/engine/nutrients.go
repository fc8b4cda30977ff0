package engine

import (
	"math/rand/v2"
)

// NearbyNutrient annotates an unconsumed nutrient with its distance from an
// origin.
type NearbyNutrient struct {
	ID       NutrientID
	X, Y     float64
	Distance float64
}

// ConsumeNutrient eats one nutrient. Unknown or already consumed ids leave the
// state unchanged.
func (e *Engine) ConsumeNutrient(s GameState, id NutrientID) GameState {
	idx := -1
	for i, n := range s.Nutrients {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || s.Nutrients[idx].Consumed {
		return s
	}

	next := s.Clone()
	next.Nutrients[idx].Consumed = true
	next.Biomass += e.rules.NutrientReward
	return next
}

// UnconsumedCount returns the number of nutrients still available.
func UnconsumedCount(s GameState) int {
	count := 0
	for _, n := range s.Nutrients {
		if !n.Consumed {
			count++
		}
	}
	return count
}

// MaintainNutrientPopulation tops up the world with batches of fresh
// nutrients until the unconsumed count reaches the floor. Placement is drawn
// from a generator seeded by the state, so equal states spawn equal batches.
func (e *Engine) MaintainNutrientPopulation(s GameState) GameState {
	available := UnconsumedCount(s)
	if available >= e.rules.NutrientFloor {
		return s
	}

	next := s.Clone()
	rng := rand.New(rand.NewPCG(uint64(s.Seed), uint64(s.NextNutrientID)))
	for available < e.rules.NutrientFloor {
		for range e.rules.NutrientBatch {
			next.Nutrients = append(next.Nutrients, NutrientState{
				ID:       next.NextNutrientID,
				Position: e.randomPosition(rng),
			})
			next.NextNutrientID++
		}
		available += e.rules.NutrientBatch
	}
	return next
}

// randomPosition draws x and y independently and uniformly from the world
// rectangle centred at the origin.
func (e *Engine) randomPosition(rng *rand.Rand) Position {
	return Position{
		X: (rng.Float64()*2 - 1) * e.rules.WorldHalfWidth,
		Y: (rng.Float64()*2 - 1) * e.rules.WorldHalfHeight,
	}
}

// NearbyNutrients lists unconsumed nutrients in insertion order with their
// distance from origin. The caller decides how to select from it.
func NearbyNutrients(s GameState, origin Position) []NearbyNutrient {
	out := make([]NearbyNutrient, 0, len(s.Nutrients))
	for _, n := range s.Nutrients {
		if n.Consumed {
			continue
		}
		out = append(out, NearbyNutrient{
			ID:       n.ID,
			X:        n.Position.X,
			Y:        n.Position.Y,
			Distance: n.Position.Distance(origin),
		})
	}
	return out
}

// NearestNutrient returns the closest unconsumed nutrient to origin. Ties go
// to the earliest spawned.
func NearestNutrient(s GameState, origin Position) (NearbyNutrient, bool) {
	var best NearbyNutrient
	found := false
	for _, n := range NearbyNutrients(s, origin) {
		if !found || n.Distance < best.Distance {
			best = n
			found = true
		}
	}
	return best, found
}
