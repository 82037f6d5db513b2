package dodgeball

import "github.com/vovakirdan/dodgeball/internal/core"

// Visual characters per entity kind.
var glyphs = [...]struct {
	r rune
	c core.Color
}{
	KindPlayer:   {'█', core.ColorBrightBlue},
	KindObstacle: {'●', core.ColorBrightRed},
}

// Minimum arena size in cells, border excluded.
const (
	minArenaCols = 8
	minArenaRows = 4
)

// viewport maps world coordinates onto a boxed arena of terminal cells.
// Terminal cells are roughly twice as tall as they are wide, so the arena
// uses two columns per row to keep the world square.
type viewport struct {
	box    core.Rect // border, in screen cells
	cols   int       // inner width
	rows   int       // inner height
	worldW int
	worldH int
}

func newViewport(screenW, screenH, worldW, worldH int) viewport {
	innerW, innerH := screenW-2, screenH-2

	rows := innerH
	cols := rows * 2 * worldW / worldH
	if cols > innerW {
		cols = innerW
		rows = cols * worldH / (2 * worldW)
	}

	boxW, boxH := cols+2, rows+2
	return viewport{
		box:    core.NewRect((screenW-boxW)/2, (screenH-boxH)/2, boxW, boxH),
		cols:   cols,
		rows:   rows,
		worldW: worldW,
		worldH: worldH,
	}
}

// usable reports whether the arena is big enough to draw into.
func (v viewport) usable() bool {
	return v.cols >= minArenaCols && v.rows >= minArenaRows
}

// project converts a world rectangle into screen cells, clipped to the
// arena. Anything inside the world covers at least one cell. A zero-width
// result means the rectangle is entirely outside the arena.
func (v viewport) project(r core.Rect) core.Rect {
	x0 := floorDiv(r.X*v.cols, v.worldW)
	x1 := max(ceilDiv(r.Right()*v.cols, v.worldW), x0+1)
	y0 := floorDiv(r.Y*v.rows, v.worldH)
	y1 := max(ceilDiv(r.Bottom()*v.rows, v.worldH), y0+1)

	x0, x1 = core.Clamp(x0, 0, v.cols), core.Clamp(x1, 0, v.cols)
	y0, y1 = core.Clamp(y0, 0, v.rows), core.Clamp(y1, 0, v.rows)
	if x0 >= x1 || y0 >= y1 {
		return core.Rect{}
	}

	return core.NewRect(x0, y0, x1-x0, y1-y0).Translate(v.box.X+1, v.box.Y+1)
}

// Render draws the current game state to the screen. While playing it
// draws the arena, the player and every obstacle; after a collision it
// draws only the game-over message.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()

	v := newViewport(dst.Width(), dst.Height(), s.cfg.World.Width, s.cfg.World.Height)
	if !v.usable() {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorWhite)
		return
	}

	dst.DrawBox(v.box, core.ColorGray)

	if s.over {
		_, cy := v.box.Center()
		dst.DrawTextCentered(cy, GameOverText, core.ColorBrightWhite)
		return
	}

	s.drawEntity(dst, v, s.player)
	for _, o := range s.obstacles {
		s.drawEntity(dst, v, o)
	}
}

func (s *Simulation) drawEntity(dst *core.Screen, v viewport, e Entity) {
	cells := v.project(e.Bounds())
	if cells.W == 0 {
		return
	}
	g := glyphs[e.kind]
	dst.DrawRect(cells, g.r, g.c)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
