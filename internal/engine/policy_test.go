package engine

import "testing"

func TestIsUnlocked(t *testing.T) {
	e := testEngine(t)
	s := testState(t)

	tests := []struct {
		requirement string
		level       int
		want        bool
	}{
		{"cell", 0, true},
		{"dish", 0, false},
		{"dish", 1, true},
		{"cell", 2, true},
		{"pond", 1, false},
		{"unknown", 2, false},
		{"", 2, false},
	}

	for _, tc := range tests {
		s.CurrentLevelID = tc.level
		if got := e.IsUnlocked(tc.requirement, s); got != tc.want {
			t.Errorf("IsUnlocked(%q) at level %d = %v, want %v", tc.requirement, tc.level, got, tc.want)
		}
	}
}

func TestCanAfford(t *testing.T) {
	s := testState(t)
	s.Biomass = 10

	if !CanAfford(10, s) {
		t.Error("CanAfford(10) with 10 biomass should be true")
	}
	if CanAfford(10.0001, s) {
		t.Error("CanAfford(10.0001) with 10 biomass should be false")
	}
}

func TestCanPurchaseGenerator(t *testing.T) {
	e := testEngine(t)
	s := testState(t)

	if e.CanPurchaseGenerator("spore", s) {
		t.Error("spore should be unaffordable with 0 biomass")
	}

	s.Biomass = 60
	if !e.CanPurchaseGenerator("spore", s) {
		t.Error("spore should be purchasable")
	}
	if e.CanPurchaseGenerator("mold", s) {
		t.Error("mold should be locked at level 0")
	}
	if e.CanPurchaseGenerator("missing", s) {
		t.Error("unknown generator should not be purchasable")
	}

	s.CurrentLevelID = 1
	if !e.CanPurchaseGenerator("mold", s) {
		t.Error("mold should be purchasable once unlocked")
	}
}

func TestCanPurchaseUpgrade(t *testing.T) {
	e := testEngine(t)
	s := testState(t)
	s.Biomass = 1000

	if !e.CanPurchaseUpgrade("cilia", s) {
		t.Error("cilia should be purchasable")
	}
	if e.CanPurchaseUpgrade("membrane", s) {
		t.Error("membrane should be locked at level 0")
	}
	if e.CanPurchaseUpgrade("missing", s) {
		t.Error("unknown upgrade should not be purchasable")
	}

	s = buy(s, "cilia")
	if e.CanPurchaseUpgrade("cilia", s) {
		t.Error("purchased upgrade should not be purchasable again")
	}

	s.Biomass = 10
	if e.CanPurchaseUpgrade("enzymes", s) {
		t.Error("enzymes should be unaffordable with 10 biomass")
	}
}
