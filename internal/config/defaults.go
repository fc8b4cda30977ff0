package config

import (
	_ "embed"
)

//go:embed defaults/biomass.yaml
var defaultBiomassYAML []byte

// DefaultBiomassConfig returns the default game configuration.
// Kept in sync with defaults/biomass.yaml; used if the embedded file fails to parse.
func DefaultBiomassConfig() BiomassConfig {
	return BiomassConfig{
		Economy: EconomyConfig{
			ClickPower:      1,
			StartingBiomass: 0,
		},
		Nutrients: NutrientConfig{
			Floor:       20,
			Batch:       10,
			Reward:      1,
			WorldWidth:  800,
			WorldHeight: 600,
		},
		Generators: []GeneratorConfig{
			{ID: "spore_pod", Name: "Spore Pod", Description: "Drifts, lands, divides.", BaseCost: 10, CostMultiplier: 1.15, BaseEffect: 0.5, UnlockedAt: "microscopic"},
			{ID: "algae_mat", Name: "Algae Mat", Description: "A green film that eats light.", BaseCost: 120, CostMultiplier: 1.15, BaseEffect: 4, UnlockedAt: "petri_dish"},
			{ID: "fungal_net", Name: "Fungal Net", Description: "Threads that digest what they touch.", BaseCost: 1_300, CostMultiplier: 1.16, BaseEffect: 30, UnlockedAt: "puddle"},
			{ID: "root_web", Name: "Root Web", Description: "Steals from every plant nearby.", BaseCost: 14_000, CostMultiplier: 1.17, BaseEffect: 220, UnlockedAt: "pond"},
			{ID: "swarm_hive", Name: "Swarm Hive", Description: "Insects that carry food home.", BaseCost: 160_000, CostMultiplier: 1.18, BaseEffect: 1_800, UnlockedAt: "forest"},
			{ID: "sewer_bloom", Name: "Sewer Bloom", Description: "The city feeds it without knowing.", BaseCost: 2_000_000, CostMultiplier: 1.19, BaseEffect: 15_000, UnlockedAt: "city"},
			{ID: "tectonic_mass", Name: "Tectonic Mass", Description: "Grows along fault lines.", BaseCost: 30_000_000, CostMultiplier: 1.2, BaseEffect: 140_000, UnlockedAt: "continent"},
		},
		Upgrades: []UpgradeConfig{
			{ID: "sticky_membrane", Name: "Sticky Membrane", Description: "Feeding yields twice as much.", Cost: 50, Effect: 2, Type: "click", UnlockedAt: "microscopic"},
			{ID: "enzymes", Name: "Digestive Enzymes", Description: "All growth +50%.", Cost: 200, Effect: 1.5, Type: "growth", UnlockedAt: "microscopic"},
			{ID: "binary_fission", Name: "Binary Fission", Description: "The blob learns to split.", Cost: 500, Effect: 2, Type: "split", UnlockedAt: "petri_dish"},
			{ID: "pseudopods", Name: "Pseudopods", Description: "Feeding yields three times as much.", Cost: 2_500, Effect: 3, Type: "click", UnlockedAt: "puddle"},
			{ID: "chloroplasts", Name: "Chloroplasts", Description: "All growth doubled.", Cost: 12_000, Effect: 2, Type: "growth", UnlockedAt: "pond"},
			{ID: "mycelial_mind", Name: "Mycelial Mind", Description: "All growth doubled again.", Cost: 250_000, Effect: 2, Type: "growth", UnlockedAt: "forest"},
			{ID: "gelatinous_body", Name: "Gelatinous Body", Description: "The blob swells by half.", Cost: 1_500_000, Effect: 1.5, Type: "blob", UnlockedAt: "city"},
			{ID: "hive_mind", Name: "Hive Mind", Description: "All growth tripled.", Cost: 40_000_000, Effect: 3, Type: "growth", UnlockedAt: "continent"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBiomassYAML
}
