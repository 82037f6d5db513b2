// Package config provides YAML-based tuning for the dodgeball game:
// world bounds, entity sizes, obstacle speeds and the tick cadence.
package config

import "time"

// DodgeballConfig contains all configuration for the dodgeball game.
type DodgeballConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Loop      LoopConfig      `yaml:"loop"`
}

// WorldConfig defines the logical canvas and the obstacle wraparound rule.
type WorldConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	FallBound   int `yaml:"fall_bound"`    // y beyond which an obstacle respawns
	RespawnY    int `yaml:"respawn_y"`     // y an obstacle is reset to
	SpawnXRange int `yaml:"spawn_x_range"` // respawn x is drawn from [0, SpawnXRange)
}

// PlayerConfig defines the player's start position, size and step.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Step   int `yaml:"step"`
}

// ObstaclesConfig defines how many obstacles exist and how they fall.
type ObstaclesConfig struct {
	Count       int `yaml:"count"`
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	MinSpeed    int `yaml:"min_speed"`
	MaxSpeed    int `yaml:"max_speed"`
	SpawnYRange int `yaml:"spawn_y_range"` // initial y is drawn from [-SpawnYRange, 0)
}

// LoopConfig defines the simulation cadence.
type LoopConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}
