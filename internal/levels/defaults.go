package levels

// defaultLevels is the built-in world progression, from a single cell up to
// a planet-spanning organism. Thresholds grow roughly tenfold per stage.
var defaultLevels = []Level{
	{ID: 0, Name: "microscopic", DisplayName: "Microscopic", Threshold: 0, Format: "micro", Description: "A lone cell drifting in the dark."},
	{ID: 1, Name: "petri_dish", DisplayName: "Petri Dish", Threshold: 100, Format: "micro", Description: "A colony takes hold on the agar."},
	{ID: 2, Name: "puddle", DisplayName: "Puddle", Threshold: 1_000, Format: "micro", Description: "The blob spills into standing water."},
	{ID: 3, Name: "pond", DisplayName: "Pond", Threshold: 10_000, Format: "macro", Description: "Algae and insects feed the mass."},
	{ID: 4, Name: "forest", DisplayName: "Forest", Threshold: 100_000, Format: "macro", Description: "Roots and fungus become arteries."},
	{ID: 5, Name: "city", DisplayName: "City", Threshold: 1_000_000, Format: "macro", Description: "Streets fill with something green."},
	{ID: 6, Name: "continent", DisplayName: "Continent", Threshold: 25_000_000, Format: "map", Description: "Coastlines move when it breathes."},
	{ID: 7, Name: "planet", DisplayName: "Planet", Threshold: 1_000_000_000, Format: "map", Description: "There is nothing left that is not biomass."},
}

var defaultCatalog = MustCatalog(defaultLevels)

// Default returns the shared catalog built from the built-in table.
// Callers read rows through All, which copies.
func Default() *Catalog {
	return defaultCatalog
}
