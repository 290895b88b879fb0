package core

// RuntimeConfig is what a host hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Fixed steps per second
	Seed     int64 // World seed, 0 lets the host pick one
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// Normalized replaces a non-positive tick rate with the default and, when
// Seed is zero, uses seedFn to pick one. A nil seedFn leaves Seed alone.
func (c RuntimeConfig) Normalized(seedFn func() int64) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	if c.Seed == 0 && seedFn != nil {
		c.Seed = seedFn()
	}
	return c
}

// Step returns the fixed timestep in seconds.
func (c RuntimeConfig) Step() float64 {
	return 1 / float64(c.Normalized(nil).TickRate)
}

// GameState is the status a game reports to its host.
type GameState struct {
	Score    int  // Whole days survived
	GameOver bool // Run ended, won or died
	Won      bool
	Paused   bool
}

// StepResult is returned from every Step.
type StepResult struct {
	State GameState
}
