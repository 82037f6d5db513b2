// Package dodgeball implements the falling-obstacle dodge game.
// The player moves a square in discrete steps while circular obstacles fall
// from the top of the world and wrap back above it; the first overlap ends
// the game for good.
package dodgeball

import (
	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

// Kind tags which variant an Entity is.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindObstacle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Entity is any positioned, sized object in the world. Size is fixed at
// construction; only the position ever changes.
type Entity struct {
	kind Kind
	x, y int
	w, h int

	step  int // KindPlayer: distance covered by one input
	speed int // KindObstacle: downward distance per tick
}

// NewPlayer creates a player entity.
func NewPlayer(x, y, w, h, step int) Entity {
	return Entity{kind: KindPlayer, x: x, y: y, w: w, h: h, step: step}
}

// NewObstacle creates an obstacle entity falling at the given speed.
func NewObstacle(x, y, w, h, speed int) Entity {
	return Entity{kind: KindObstacle, x: x, y: y, w: w, h: h, speed: speed}
}

func (e Entity) Kind() Kind { return e.kind }
func (e Entity) X() int { return e.x }
func (e Entity) Y() int { return e.y }
func (e Entity) Width() int { return e.w }
func (e Entity) Height() int { return e.h }
func (e Entity) Step() int { return e.step }
func (e Entity) Speed() int { return e.speed }
func (e Entity) Bounds() core.Rect { return core.NewRect(e.x, e.y, e.w, e.h) }

// Intersects reports whether the two entities' bounding boxes overlap.
// Touching edges are not a collision.
func (e Entity) Intersects(other Entity) bool {
	return e.Bounds().Intersects(other.Bounds())
}

// MoveUp moves a player one step up. No bounds are enforced.
func (e *Entity) MoveUp() { e.nudge(0, -1) }

// MoveDown moves a player one step down.
func (e *Entity) MoveDown() { e.nudge(0, 1) }

// MoveLeft moves a player one step left.
func (e *Entity) MoveLeft() { e.nudge(-1, 0) }

// MoveRight moves a player one step right.
func (e *Entity) MoveRight() { e.nudge(1, 0) }

func (e *Entity) nudge(dx, dy int) {
	if e.kind != KindPlayer {
		return
	}
	e.x += dx * e.step
	e.y += dy * e.step
}

// advanceFuncs holds the per-tick behavior of each kind.
var advanceFuncs = [...]func(e *Entity, w config.WorldConfig, src Source){
	KindPlayer:   func(*Entity, config.WorldConfig, Source) {},
	KindObstacle: fall,
}

// Move advances the entity by one tick. Players only move on input, so
// this is a no-op for them.
func (e *Entity) Move(w config.WorldConfig, src Source) {
	if int(e.kind) < len(advanceFuncs) {
		advanceFuncs[e.kind](e, w, src)
	}
}

// fall moves an obstacle down by its speed. Once its top edge passes the
// fall bound it is placed back above the world at a random column.
func fall(e *Entity, w config.WorldConfig, src Source) {
	e.y += e.speed
	if e.y > w.FallBound {
		e.y = w.RespawnY
		e.x = src.Intn(w.SpawnXRange)
	}
}
