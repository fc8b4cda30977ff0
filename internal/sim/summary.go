package sim

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a finished simulation.
type Summary struct {
	Ticks        int
	Elapsed      float64
	FinalBiomass float64
	FinalLevel   string
	Completed    bool
	Generators   int
	Upgrades     int
	Eaten        int

	// Over the sampled growth rates.
	MeanGrowth   float64
	StdDevGrowth float64
	PeakGrowth   float64

	Milestones []Milestone
}

// Summary reports the run so far.
func (s *Simulator) Summary() Summary {
	mean, stdDev, peak := growthStats(s.records)
	return Summary{
		Ticks:        s.tick,
		Elapsed:      s.state.Elapsed,
		FinalBiomass: s.state.Biomass,
		FinalLevel:   s.eng.CurrentLevel(s.state).Title(),
		Completed:    s.eng.Catalog().IsLast(s.state.CurrentLevelID),
		Generators:   s.state.GeneratorsOwned(),
		Upgrades:     s.state.UpgradesPurchased(),
		Eaten:        s.eaten,
		MeanGrowth:   mean,
		StdDevGrowth: stdDev,
		PeakGrowth:   peak,
		Milestones:   s.milestones,
	}
}

// growthStats returns the mean, sample standard deviation and maximum of the
// sampled growth. Fewer than two samples have no spread.
func growthStats(records []Record) (mean, stdDev, peak float64) {
	if len(records) == 0 {
		return 0, 0, 0
	}
	growth := make([]float64, len(records))
	for i, r := range records {
		growth[i] = r.Growth
		peak = math.Max(peak, r.Growth)
	}
	mean = stat.Mean(growth, nil)
	if len(growth) > 1 {
		stdDev = stat.StdDev(growth, nil)
	}
	return mean, stdDev, peak
}
