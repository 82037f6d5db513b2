package dodgeball

import (
	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// Title is the display name of the game.
const Title = "Dodge Ball"

// GameOverText is the terminal message shown once the player is hit.
const GameOverText = "Game Over!"

// Simulation holds one game: a player, a fixed set of obstacles and the
// one-way game-over flag. It has no timer or UI of its own; an adapter calls
// Tick at a fixed cadence and forwards key presses to OnKey, both from the
// same goroutine.
type Simulation struct {
	cfg       config.DodgeballConfig
	src       Source
	player    Entity
	obstacles []Entity
	over      bool
	ticks     uint64
}

// New creates a simulation with the player at its configured start and a
// freshly spawned set of obstacles.
func New(cfg config.DodgeballConfig, src Source) *Simulation {
	p := cfg.Player
	player := NewPlayer(p.X, p.Y, p.Width, p.Height, p.Step)
	return NewWithEntities(cfg, player, SpawnObstacles(cfg, src), src)
}

// NewWithEntities creates a simulation from explicit entities.
func NewWithEntities(cfg config.DodgeballConfig, player Entity, obstacles []Entity, src Source) *Simulation {
	return &Simulation{
		cfg:       cfg,
		src:       src,
		player:    player,
		obstacles: append([]Entity(nil), obstacles...),
	}
}

// Tick advances the simulation by one step. Each obstacle is moved and then
// tested against the player; any overlap sets the game-over flag. The loop
// still moves the remaining obstacles in that tick. Once over, Tick changes
// nothing.
func (s *Simulation) Tick() core.StepResult {
	if s.over {
		return core.StepResult{State: s.State()}
	}

	s.ticks++

	var hits []int
	for i := range s.obstacles {
		s.obstacles[i].Move(s.cfg.World, s.src)
		if s.player.Intersects(s.obstacles[i]) {
			s.over = true
			hits = append(hits, i)
		}
	}

	return core.StepResult{State: s.State(), Collisions: hits}
}

// OnKey applies a directional action to the player. It reports whether the
// player moved; input is ignored once the game is over.
func (s *Simulation) OnKey(a core.Action) bool {
	if s.over {
		return false
	}

	switch a {
	case core.ActionUp:
		s.player.MoveUp()
	case core.ActionDown:
		s.player.MoveDown()
	case core.ActionLeft:
		s.player.MoveLeft()
	case core.ActionRight:
		s.player.MoveRight()
	default:
		return false
	}
	return true
}

// Over reports whether the game has ended.
func (s *Simulation) Over() bool {
	return s.over
}

// Ticks returns the number of ticks advanced.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Player returns a copy of the player entity.
func (s *Simulation) Player() Entity {
	return s.player
}

// Obstacles returns a copy of the obstacles in iteration order.
func (s *Simulation) Obstacles() []Entity {
	return append([]Entity(nil), s.obstacles...)
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.DodgeballConfig {
	return s.cfg
}

// State returns the current game state.
func (s *Simulation) State() core.GameState {
	return core.GameState{
		Tick:     s.ticks,
		GameOver: s.over,
	}
}
