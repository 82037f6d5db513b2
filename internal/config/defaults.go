package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dodgeball.yaml
var defaultDodgeballYAML []byte

// DefaultDodgeballConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultDodgeballConfig() DodgeballConfig {
	return DodgeballConfig{
		World: WorldConfig{
			Width:       600,
			Height:      600,
			FallBound:   600,
			RespawnY:    -20,
			SpawnXRange: 550,
		},
		Player: PlayerConfig{
			X:      275,
			Y:      500,
			Width:  30,
			Height: 30,
			Step:   5,
		},
		Obstacles: ObstaclesConfig{
			Count:       5,
			Width:       20,
			Height:      20,
			MinSpeed:    2,
			MaxSpeed:    6,
			SpawnYRange: 400,
		},
		Loop: LoopConfig{
			TickInterval: 30 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDodgeballYAML
}
