// Package window is the Ebitengine presentation and input adapter. It
// reproduces the classic 600x600 window: a blue square for the player, red
// circles for the obstacles and a "Game Over!" banner once they collide.
package window

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dodgeball/internal/core"
	"github.com/vovakirdan/dodgeball/internal/games/dodgeball"
)

var (
	backgroundColor = color.RGBA{238, 238, 238, 255}
	playerColor     = color.RGBA{0, 0, 255, 255}
	obstacleColor   = color.RGBA{255, 0, 0, 255}
	messageColor    = color.Black
)

// Game-over banner placement and scale, in world units.
const (
	messageX     = 180
	messageY     = 300
	messageScale = 4
)

var messageFace = text.NewGoXFace(basicfont.Face7x13)

// keyActions maps physical keys to game actions, checked in this order.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

const fallbackTPS = 60

// Game implements ebiten.Game on top of a dodgeball simulation.
type Game struct {
	sim     *dodgeball.Simulation
	clock   *core.FixedStep
	logger  *log.Logger
	stopped bool
}

// NewGame wraps a simulation. Ebitengine calls Update at its own rate, so
// a fixed-step accumulator turns frames into ticks of the given interval.
func NewGame(sim *dodgeball.Simulation, interval time.Duration, logger *log.Logger) *Game {
	return &Game{
		sim:    sim,
		clock:  core.NewFixedStep(interval),
		logger: logger,
	}
}

// Update handles key presses and advances the simulation.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		if !inpututil.IsKeyJustPressed(ka.key) {
			continue
		}
		if ka.action == core.ActionQuit {
			g.logger.Info("quit", "tick", g.sim.Ticks(), "game_over", g.sim.Over())
			return ebiten.Termination
		}
		g.sim.OnKey(ka.action)
	}

	if g.stopped {
		return nil
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = fallbackTPS
	}
	frame := time.Second / time.Duration(tps)
	for range g.clock.Advance(frame) {
		result := g.sim.Tick()
		for _, i := range result.Collisions {
			g.logger.Info("collision", "tick", result.State.Tick, "obstacle", i)
		}
		if result.State.GameOver {
			g.stopped = true
			g.logger.Info("game over", "tick", result.State.Tick)
			break
		}
	}
	return nil
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if g.sim.Over() {
		op := &text.DrawOptions{}
		op.GeoM.Scale(messageScale, messageScale)
		op.GeoM.Translate(messageX, messageY-messageFace.Metrics().HAscent*messageScale)
		op.ColorScale.ScaleWithColor(messageColor)
		text.Draw(screen, dodgeball.GameOverText, messageFace, op)
		return
	}

	drawEntity(screen, g.sim.Player())
	for _, o := range g.sim.Obstacles() {
		drawEntity(screen, o)
	}
}

func drawEntity(screen *ebiten.Image, e dodgeball.Entity) {
	x, y := float32(e.X()), float32(e.Y())
	w, h := float32(e.Width()), float32(e.Height())

	switch e.Kind() {
	case dodgeball.KindPlayer:
		vector.FillRect(screen, x, y, w, h, playerColor, false)
	case dodgeball.KindObstacle:
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, min(w, h)/2, obstacleColor, true)
	}
}

// Layout keeps the logical canvas at the world size regardless of the
// window size.
func (g *Game) Layout(_, _ int) (int, int) {
	w := g.sim.Config().World
	return w.Width, w.Height
}

// Run opens the window and blocks until it is closed.
func Run(sim *dodgeball.Simulation, interval time.Duration, logger *log.Logger) error {
	w := sim.Config().World
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(dodgeball.Title)

	logger.Info("game started", "obstacles", len(sim.Obstacles()), "interval", interval)
	return ebiten.RunGame(NewGame(sim, interval, logger))
}
