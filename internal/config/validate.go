package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c DodgeballConfig) Validate() error {
	var errs []error
	check := func(ok bool, field, format string, args ...any) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
		}
	}

	check(c.World.Width > 0, "world.width", "must be positive, got %d", c.World.Width)
	check(c.World.Height > 0, "world.height", "must be positive, got %d", c.World.Height)
	check(c.World.SpawnXRange > 0, "world.spawn_x_range", "must be positive, got %d", c.World.SpawnXRange)
	check(c.World.RespawnY <= c.World.FallBound, "world.respawn_y",
		"must not be below fall_bound (%d), got %d", c.World.FallBound, c.World.RespawnY)

	check(c.Player.Width > 0, "player.width", "must be positive, got %d", c.Player.Width)
	check(c.Player.Height > 0, "player.height", "must be positive, got %d", c.Player.Height)
	check(c.Player.Step > 0, "player.step", "must be positive, got %d", c.Player.Step)

	check(c.Obstacles.Count >= 0, "obstacles.count", "must not be negative, got %d", c.Obstacles.Count)
	check(c.Obstacles.Width > 0, "obstacles.width", "must be positive, got %d", c.Obstacles.Width)
	check(c.Obstacles.Height > 0, "obstacles.height", "must be positive, got %d", c.Obstacles.Height)
	check(c.Obstacles.MinSpeed > 0, "obstacles.min_speed", "must be positive, got %d", c.Obstacles.MinSpeed)
	check(c.Obstacles.MaxSpeed >= c.Obstacles.MinSpeed, "obstacles.max_speed",
		"must be at least min_speed (%d), got %d", c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed)
	check(c.Obstacles.SpawnYRange > 0, "obstacles.spawn_y_range", "must be positive, got %d", c.Obstacles.SpawnYRange)

	check(c.Loop.TickInterval > 0, "loop.tick_interval", "must be positive, got %s", c.Loop.TickInterval)

	return errors.Join(errs...)
}
