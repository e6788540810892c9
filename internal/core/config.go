package core

// RuntimeConfig contains configuration passed to demos at initialization.
// Demos use this to adapt to the screen size.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	ConfigPath string // Optional YAML override for the demo
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// DemoState is the counters a demo reports to the platform.
// The platform stores them in the session log when the demo exits.
type DemoState struct {
	Moves         int    // Accepted movement steps (rect demo)
	Shapes        int    // Committed shapes (intersect demo)
	Intersections int    // Intersection points found across all drawings
	Status        string // Short status line for the footer
}

// StepResult is returned by Demo.Step() after each tick.
type StepResult struct {
	State DemoState
}
