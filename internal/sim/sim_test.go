package sim

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/biomass/internal/config"
)

func newTestSim(t *testing.T, opts Options) *Simulator {
	t.Helper()
	eng, state, err := config.DefaultBiomassConfig().Build(7)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	s, err := New(eng, state, opts, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s
}

func shortOptions() Options {
	opts := DefaultOptions()
	opts.Ticks = 10 * 300 // Five simulated minutes
	return opts
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero ticks", func(o *Options) { o.Ticks = 0 }},
		{"zero rate", func(o *Options) { o.TickRate = 0 }},
		{"negative eat", func(o *Options) { o.EatEvery = -1 }},
		{"negative click", func(o *Options) { o.ClickEvery = -1 }},
		{"zero sample", func(o *Options) { o.SampleEvery = 0 }},
	}

	eng, state, err := config.DefaultBiomassConfig().Build(1)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.mutate(&opts)
			if _, err := New(eng, state, opts, nil); err == nil {
				t.Error("New() should reject the options")
			}
		})
	}
}

func TestRunMakesProgress(t *testing.T) {
	s := newTestSim(t, shortOptions())

	summary, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.Ticks != 3000 {
		t.Errorf("Ticks = %d, want 3000", summary.Ticks)
	}
	if math.Abs(summary.Elapsed-300) > 1e-6 {
		t.Errorf("Elapsed = %v, want 300", summary.Elapsed)
	}
	if summary.Generators == 0 {
		t.Error("the greedy policy should buy generators")
	}
	if summary.Eaten != 300 {
		t.Errorf("Eaten = %d, want 300", summary.Eaten)
	}
	if len(summary.Milestones) == 0 || summary.Milestones[0].Level != "Petri Dish" {
		t.Errorf("Milestones = %+v, want Petri Dish first", summary.Milestones)
	}
	if summary.PeakGrowth <= 0 || summary.MeanGrowth <= 0 {
		t.Errorf("growth stats = %v mean, %v peak", summary.MeanGrowth, summary.PeakGrowth)
	}
	// One sample at tick 0 and one every 100 ticks.
	if got := len(s.Records()); got != 31 {
		t.Errorf("Records = %d, want 31", got)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a := newTestSim(t, shortOptions())
	b := newTestSim(t, shortOptions())

	if _, err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if _, err := b.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !reflect.DeepEqual(a.State(), b.State()) {
		t.Error("equal configs and seeds must end in equal states")
	}
	if !reflect.DeepEqual(a.Records(), b.Records()) {
		t.Error("equal runs must produce equal samples")
	}
}

func TestRunStopsOnFinal(t *testing.T) {
	eng, state, err := config.DefaultBiomassConfig().Build(7)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	state.Biomass = 2e9

	s, err := New(eng, state, shortOptions(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	summary, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !summary.Completed || summary.Ticks != 1 {
		t.Errorf("summary = %+v, want completion after one tick", summary)
	}
	if summary.FinalLevel != "Planet" {
		t.Errorf("FinalLevel = %q, want Planet", summary.FinalLevel)
	}
}

func TestMilestonesCoverEveryLevelClimbed(t *testing.T) {
	cfg := config.DefaultBiomassConfig()
	cfg.Economy.ClickPower = 5000
	eng, state, err := cfg.Build(7)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	opts := shortOptions()
	opts.ClickEvery = 1
	opts.Ticks = 5
	s, err := New(eng, state, opts, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	final := s.State().CurrentLevelID
	milestones := s.Milestones()
	if final < 2 {
		t.Fatalf("final level = %d, want at least 2", final)
	}
	if len(milestones) != final {
		t.Fatalf("got %d milestones for %d levels climbed: %+v", len(milestones), final, milestones)
	}
	for i, m := range milestones {
		if m.LevelID != i+1 {
			t.Errorf("milestone %d has level %d, want %d", i, m.LevelID, i+1)
		}
	}
	// The first feed crosses Petri Dish and Puddle in the same tick.
	if milestones[0].Level != "Petri Dish" || milestones[1].Level != "Puddle" {
		t.Errorf("first milestones = %+v", milestones[:2])
	}
	if milestones[0].Tick != 1 || milestones[1].Tick != 1 {
		t.Errorf("ticks = %d, %d; want both 1", milestones[0].Tick, milestones[1].Tick)
	}
}

func TestMilestonesFromStartingBiomass(t *testing.T) {
	eng, state, err := config.DefaultBiomassConfig().Build(7)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	state.Biomass = 5000

	s, err := New(eng, state, shortOptions(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	milestones := s.Milestones()
	if len(milestones) != 2 || milestones[0].LevelID != 1 || milestones[1].LevelID != 2 {
		t.Fatalf("Milestones() = %+v, want Petri Dish and Puddle", milestones)
	}
	if milestones[0].Tick != 0 {
		t.Errorf("settling milestones should be at tick 0, got %d", milestones[0].Tick)
	}

	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager() failed: %v", err)
	}
	if err := s.SetOutput(om); err != nil {
		t.Fatalf("SetOutput() failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "milestones.csv"))
	if err != nil {
		t.Fatalf("reading milestones.csv: %v", err)
	}
	for _, want := range []string{"Petri Dish", "Puddle"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("milestones.csv is missing %q: %q", want, data)
		}
	}
}

func TestRunHonorsContext(t *testing.T) {
	s := newTestSim(t, shortOptions())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestIdlePolicyStaysPut(t *testing.T) {
	opts := shortOptions()
	opts.EatEvery = 0
	s := newTestSim(t, opts)

	summary, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if summary.FinalBiomass != 0 || summary.Generators != 0 {
		t.Errorf("a policy that never eats cannot grow: %+v", summary)
	}
	if summary.StdDevGrowth != 0 {
		t.Errorf("StdDevGrowth = %v, want 0", summary.StdDevGrowth)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager() failed: %v", err)
	}

	s := newTestSim(t, shortOptions())
	if err := s.SetOutput(om); err != nil {
		t.Fatalf("SetOutput() failed: %v", err)
	}
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if err := om.WriteConfig(config.DefaultBiomassConfig()); err != nil {
		t.Fatalf("WriteConfig() failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "samples.csv"))
	if err != nil {
		t.Fatalf("reading samples.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 32 {
		t.Errorf("samples.csv has %d lines, want header + 31", len(lines))
	}
	if !strings.HasPrefix(lines[0], "tick,elapsed,biomass,growth") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if strings.Count(string(data), "tick,") != 1 {
		t.Error("the header must be written once")
	}

	milestones, err := os.ReadFile(filepath.Join(dir, "milestones.csv"))
	if err != nil {
		t.Fatalf("reading milestones.csv: %v", err)
	}
	if !strings.Contains(string(milestones), "Petri Dish") {
		t.Errorf("milestones.csv = %q", milestones)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml missing: %v", err)
	}
}

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	if err := om.WriteRecord(Record{}); err != nil {
		t.Errorf("nil WriteRecord() = %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close() = %v", err)
	}
}

func TestGrowthStats(t *testing.T) {
	tests := []struct {
		name                 string
		growth               []float64
		mean, stdDev, peakAt float64
	}{
		{"empty", nil, 0, 0, 0},
		{"single", []float64{3}, 3, 0, 3},
		{"spread", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 5, math.Sqrt(32.0 / 7), 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records := make([]Record, len(tc.growth))
			for i, g := range tc.growth {
				records[i].Growth = g
			}
			mean, stdDev, peak := growthStats(records)
			if math.Abs(mean-tc.mean) > 1e-9 || math.Abs(stdDev-tc.stdDev) > 1e-9 || peak != tc.peakAt {
				t.Errorf("growthStats() = %v, %v, %v; want %v, %v, %v",
					mean, stdDev, peak, tc.mean, tc.stdDev, tc.peakAt)
			}
		})
	}
}

