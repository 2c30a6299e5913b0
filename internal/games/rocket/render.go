package rocket

import (
	"math"
	"strconv"

	"github.com/vovakirdan/kaya/internal/core"
)

// Visual characters for rendering
const (
	BarChar        = '█'
	RocketChar     = '▓'
	NoseLevelChar  = '▶'
	NoseUpChar     = '◥'
	NoseDownChar   = '◢'
	noseTiltCutoff = math.Pi / 12 // Rotation beyond which the nose glyph tilts
)

// Label anchors in scene units.
const (
	scoreLabelDrop    = 150 // Score label sits this far below the top edge
	statusLabelOffset = 40  // Status label sits this far above the center
)

// viewport maps y-up scene coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	sceneH float64
}

func newViewport(dst *core.Screen, sceneW, sceneH float64) viewport {
	return viewport{
		sx:     float64(dst.Width()) / sceneW,
		sy:     float64(dst.Height()) / sceneH,
		sceneH: sceneH,
	}
}

// rect converts a scene box to the screen cells it covers. Every visible box
// covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.MinX() * v.sx))
	x1 := int(math.Ceil(b.MaxX() * v.sx))
	y0 := int(math.Floor((v.sceneH - b.MaxY()) * v.sy))
	y1 := int(math.Ceil((v.sceneH - b.MinY()) * v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// row converts a scene y to a screen row.
func (v viewport) row(y float64) int {
	return int(math.Floor((v.sceneH - y) * v.sy))
}

// Render draws the scene into dst, scaled to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := newViewport(dst, g.cfg.Scene.Width, g.cfg.Scene.Height)

	dst.DrawRect(vp.rect(g.pair.UpperFrame()), BarChar, core.ColorBlue)
	dst.DrawRect(vp.rect(g.pair.LowerFrame()), BarChar, core.ColorBlue)

	g.drawRocket(dst, vp)

	dst.DrawTextCentered(vp.row(g.cfg.Scene.Height-scoreLabelDrop), strconv.Itoa(g.state.Score), core.ColorBrightWhite)
	if g.status.Visible {
		dst.DrawTextCentered(vp.row(g.cfg.Scene.Height/2+statusLabelOffset), g.status.Text, core.ColorBrightYellow)
	}
}

// drawRocket fills the rocket's cells and marks its nose on the right edge
// with a glyph that follows the current rotation.
func (g *Game) drawRocket(dst *core.Screen, vp viewport) {
	r := vp.rect(g.rocket.Frame())
	dst.DrawRect(r, RocketChar, core.ColorOrange)
	dst.SetColored(r.Right()-1, r.Y+r.H/2, NoseGlyph(g.rocket.Rotation), core.ColorBrightYellow)
}

// NoseGlyph picks the nose character for a rotation in radians.
func NoseGlyph(rotation float64) rune {
	switch {
	case rotation > noseTiltCutoff:
		return NoseUpChar
	case rotation < -noseTiltCutoff:
		return NoseDownChar
	default:
		return NoseLevelChar
	}
}
