package core

// RuntimeConfig contains the host settings a run is started with.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second
	Seed     int64  // Nutrient placement seed
	Player   string // Name recorded with the run
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
		Player:   "local",
	}
}

// Status summarizes a run for the platform layer.
type Status struct {
	Biomass   float64
	Growth    float64 // Biomass per second
	LevelID   int
	LevelName string
	Elapsed   float64 // Simulated seconds
	Completed bool    // Terminal level reached
	Paused    bool
}

// EventKind classifies something that happened during a step.
type EventKind int

const (
	EventAte EventKind = iota
	EventFed
	EventBoughtGenerator
	EventBoughtUpgrade
	EventRejected
	EventEvolved
	EventCompleted
)

// Event is a notable outcome of a step, used for host messages.
type Event struct {
	Kind    EventKind
	Subject string // Item or level name
	Amount  float64
}

// StepResult is returned by a host step.
type StepResult struct {
	Status Status
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
