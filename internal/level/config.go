// Package level provides the per-level configuration data model and the
// campaign level source for duckhunt.
package level

import "fmt"

// SizeWeights holds the three size-class weights used as cumulative
// thresholds when picking a duck size. The weights are taken literally and
// are not renormalized: weights summing below 1 bias the remaining mass to
// small, weights summing above 1 make small unreachable.
type SizeWeights struct {
	Large  float64 `yaml:"large"`
	Medium float64 `yaml:"medium"`
	Small  float64 `yaml:"small"`
}

// Config contains the immutable parameters for a single level.
// A Config is created at level load and read-only thereafter.
type Config struct {
	ID            int         `yaml:"id"`
	TimeLimit     float64     `yaml:"time_limit"`      // Seconds
	GoodRequired  int         `yaml:"good_required"`   // Good clicks needed to win
	DecoyTotal    int         `yaml:"decoy_total"`     // Decoy emission quota
	MaxGoodSpawns int         `yaml:"max_good_spawns"` // Hard cap on good emissions
	SpawnInterval float64     `yaml:"spawn_interval"`  // Seconds between emission attempts
	DecoyPenalty  float64     `yaml:"decoy_penalty"`   // Seconds deducted on decoy click
	DuckLifetime  float64     `yaml:"duck_lifetime"`   // Seconds before a duck auto-expires
	Sizes         SizeWeights `yaml:"sizes"`
}

// Validate checks the config for values the engine cannot run with.
func (c *Config) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("level: id must be positive, got %d", c.ID)
	}
	if c.TimeLimit <= 0 {
		return fmt.Errorf("level %d: time_limit must be positive, got %g", c.ID, c.TimeLimit)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("level %d: spawn_interval must be positive, got %g", c.ID, c.SpawnInterval)
	}
	if c.DuckLifetime <= 0 {
		return fmt.Errorf("level %d: duck_lifetime must be positive, got %g", c.ID, c.DuckLifetime)
	}
	if c.GoodRequired < 0 {
		return fmt.Errorf("level %d: good_required must be non-negative, got %d", c.ID, c.GoodRequired)
	}
	if c.DecoyTotal < 0 {
		return fmt.Errorf("level %d: decoy_total must be non-negative, got %d", c.ID, c.DecoyTotal)
	}
	if c.MaxGoodSpawns < c.GoodRequired {
		return fmt.Errorf("level %d: max_good_spawns (%d) below good_required (%d)",
			c.ID, c.MaxGoodSpawns, c.GoodRequired)
	}
	if c.DecoyPenalty < 0 {
		return fmt.Errorf("level %d: decoy_penalty must be non-negative, got %g", c.ID, c.DecoyPenalty)
	}
	if c.Sizes.Large < 0 || c.Sizes.Medium < 0 || c.Sizes.Small < 0 {
		return fmt.Errorf("level %d: size weights must be non-negative", c.ID)
	}
	return nil
}
