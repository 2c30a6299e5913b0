package rocket

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/kaya/internal/config"
	"github.com/vovakirdan/kaya/internal/core"
)

func TestRenderInitialScene(t *testing.T) {
	g := newTestGame(t, config.DefaultRocketConfig())
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	// 640x480 onto 80x24: 8 units per column, 20 per row.
	if row := dst.Row(10); !strings.Contains(row, StatusTapToBegin) {
		t.Errorf("row 10 = %q, expected the status label", row)
	}
	if got := strings.TrimSpace(dst.Row(7)); got != "0" {
		t.Errorf("row 7 = %q, expected score 0", got)
	}

	// Rocket box x [272, 320], y [208, 240] covers columns 34..39, rows 12..13.
	for x := 34; x < 39; x++ {
		cell := dst.GetCell(x, 12)
		if cell.Rune != RocketChar || cell.Color != core.ColorOrange {
			t.Errorf("cell (%d, 12) = %+v, expected rocket body", x, cell)
		}
	}
	if got := dst.Get(39, 13); got != NoseLevelChar {
		t.Errorf("nose = %q, expected %q", got, NoseLevelChar)
	}
	if got := dst.Get(40, 12); got != ' ' {
		t.Errorf("cell right of rocket = %q, expected blank", got)
	}

	// The pair starts off-screen.
	if strings.ContainsRune(dst.String(), BarChar) {
		t.Error("obstacles should start outside the visible scene")
	}
}

func TestRenderBars(t *testing.T) {
	g := newTestGame(t, config.DefaultRocketConfig())
	g.Obstacles().X = 560
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	// Bars span x [530, 590] -> columns 66..73. Upper y [310, 480] -> rows
	// 0..8, lower y [0, 170] -> rows 15..23.
	tests := []struct {
		x, y int
		bar  bool
	}{
		{70, 0, true},
		{70, 8, true},
		{70, 9, false},
		{70, 14, false},
		{70, 15, true},
		{70, 23, true},
		{65, 20, false},
		{74, 20, false},
	}
	for _, tt := range tests {
		cell := dst.GetCell(tt.x, tt.y)
		if got := cell.Rune == BarChar; got != tt.bar {
			t.Errorf("cell (%d, %d) = %q, expected bar=%v", tt.x, tt.y, cell.Rune, tt.bar)
		}
		if tt.bar && cell.Color != core.ColorBlue {
			t.Errorf("cell (%d, %d) color = %v, expected blue", tt.x, tt.y, cell.Color)
		}
	}
}

func TestRenderHidesStatusWhileRunning(t *testing.T) {
	g := newTestGame(t, config.DefaultRocketConfig())
	g.Tap()
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if strings.Contains(dst.String(), StatusTapToBegin) {
		t.Error("status label should be hidden after the first tap")
	}
}

func TestNoseGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{0, NoseLevelChar},
		{0.1, NoseLevelChar},
		{-0.1, NoseLevelChar},
		{math.Pi / 4, NoseUpChar},
		{-math.Pi / 4, NoseDownChar},
	}
	for _, tt := range tests {
		if got := NoseGlyph(tt.rotation); got != tt.expected {
			t.Errorf("NoseGlyph(%v) = %q, expected %q", tt.rotation, got, tt.expected)
		}
	}
}
