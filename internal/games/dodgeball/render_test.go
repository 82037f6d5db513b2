package dodgeball

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
)

func TestRenderPlaying(t *testing.T) {
	cfg := config.DefaultDodgeballConfig()
	s := NewWithEntities(cfg,
		NewPlayer(275, 500, 30, 30, 5),
		[]Entity{
			NewObstacle(100, 100, 20, 20, 2),
			NewObstacle(100, -20, 20, 20, 2), // above the world, not drawn
		},
		&scriptedSource{})

	// 60x30 arena plus border
	dst := core.NewScreen(62, 32)
	s.Render(dst)

	if dst.Get(0, 0) != '┌' || dst.Get(61, 31) != '┘' {
		t.Errorf("arena border missing: %q / %q", dst.Get(0, 0), dst.Get(61, 31))
	}

	// Player covers world x [275,305) y [500,530): cells x 27..30, y 25..26
	for y := 26; y <= 27; y++ {
		for x := 28; x <= 31; x++ {
			c := dst.GetCell(x, y)
			if c.Rune != '█' || c.Color != core.ColorBrightBlue {
				t.Errorf("expected player at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if dst.Get(27, 26) == '█' || dst.Get(32, 26) == '█' {
		t.Error("player drawn wider than its bounds")
	}

	// Obstacle covers world x [100,120) y [100,120): cells x 10..11, y 5
	for x := 11; x <= 12; x++ {
		if c := dst.GetCell(x, 6); c.Rune != '●' || c.Color != core.ColorBrightRed {
			t.Errorf("expected obstacle at (%d, 6), got %+v", x, c)
		}
	}

	if n := strings.Count(dst.String(), "●"); n != 2 {
		t.Errorf("obstacle cells = %d, expected 2", n)
	}
}

func TestRenderOffscreenPlayer(t *testing.T) {
	cfg := config.DefaultDodgeballConfig()
	s := NewWithEntities(cfg, NewPlayer(-500, -500, 30, 30, 5), nil, &scriptedSource{})

	dst := core.NewScreen(62, 32)
	s.Render(dst)

	if strings.Contains(dst.String(), "█") {
		t.Error("player outside the world should not be drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	cfg := config.DefaultDodgeballConfig()
	s := NewWithEntities(cfg,
		NewPlayer(275, 500, 30, 30, 5),
		[]Entity{NewObstacle(275, 500, 20, 20, 2)},
		&scriptedSource{})
	s.Tick()

	dst := core.NewScreen(62, 32)
	s.Render(dst)

	out := dst.String()
	if !strings.Contains(dst.Row(16), GameOverText) {
		t.Errorf("row 16 = %q, expected it to contain %q", dst.Row(16), GameOverText)
	}
	if strings.Contains(out, "█") || strings.Contains(out, "●") {
		t.Error("entities should not be drawn after game over")
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := New(config.DefaultDodgeballConfig(), NewRandSource(1))

	dst := core.NewScreen(20, 5)
	s.Render(dst)

	if !strings.Contains(dst.String(), "Terminal too small") {
		t.Errorf("expected size warning, got %q", dst.String())
	}
}

func TestViewportKeepsWorldSquare(t *testing.T) {
	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{62, 32, 60, 30},
		{80, 24, 44, 22},
		{42, 40, 40, 20},
	}

	for _, tc := range tests {
		v := newViewport(tc.w, tc.h, 600, 600)
		if v.cols != tc.cols || v.rows != tc.rows {
			t.Errorf("%dx%d: arena = %dx%d, expected %dx%d", tc.w, tc.h, v.cols, v.rows, tc.cols, tc.rows)
		}
		if v.box.X < 0 || v.box.Right() > tc.w || v.box.Bottom() > tc.h {
			t.Errorf("%dx%d: box %+v does not fit", tc.w, tc.h, v.box)
		}
	}
}

func TestFloorCeilDiv(t *testing.T) {
	tests := []struct{ a, b, floor, ceil int }{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{6, 3, 2, 2},
		{-6, 3, -2, -2},
		{0, 5, 0, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.floor {
			t.Errorf("floorDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.floor)
		}
		if got := ceilDiv(tc.a, tc.b); got != tc.ceil {
			t.Errorf("ceilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.ceil)
		}
	}
}
