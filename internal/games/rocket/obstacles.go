package rocket

import (
	"github.com/vovakirdan/kaya/internal/action"
	"github.com/vovakirdan/kaya/internal/core"
	"github.com/vovakirdan/kaya/internal/physics"
)

// BarHeight returns the height of each bar for a scene height and gap.
// Both bars are equal: floor(sceneHeight/2) - gap/2, in integer units.
func BarHeight(sceneHeight float64, gap int) int {
	return int(sceneHeight)/2 - gap/2
}

// ObstaclePair is an upper and a lower bar that share one horizontal
// position and scroll across the scene on a repeating cycle.
type ObstaclePair struct {
	X float64 // Shared center x of both bars

	Width       int
	Gap         int
	UpperHeight int
	LowerHeight int

	sceneW, sceneH float64
	duration       float64

	Upper *physics.Body
	Lower *physics.Body
}

// NewObstaclePair creates a pair parked at its right-edge start position.
func NewObstaclePair(sceneW, sceneH float64, width, gap int, traversal float64) *ObstaclePair {
	h := BarHeight(sceneH, gap)
	p := &ObstaclePair{
		Width:       width,
		Gap:         gap,
		UpperHeight: h,
		LowerHeight: h,
		sceneW:      sceneW,
		sceneH:      sceneH,
		duration:    traversal,
		Upper:       physics.NewStaticBody("upper-bar", core.Vec{X: float64(width), Y: float64(h)}),
		Lower:       physics.NewStaticBody("lower-bar", core.Vec{X: float64(width), Y: float64(h)}),
	}
	p.Reset()
	return p
}

// StartX is the right-edge position every traversal begins from.
func (p *ObstaclePair) StartX() float64 {
	return p.sceneW + float64(p.Width)
}

// EndX is the left-edge position every traversal ends at.
func (p *ObstaclePair) EndX() float64 {
	return float64(-1 - p.Width/2)
}

// TrailingEdge returns the right edge of the pair.
func (p *ObstaclePair) TrailingEdge() float64 {
	return p.X + float64(p.Width)/2
}

// Reset teleports the pair back to the start and restores each bar's fixed
// vertical offset: the upper bar hangs from the top, the lower bar stands on
// the bottom.
func (p *ObstaclePair) Reset() {
	p.X = p.StartX()
	p.Upper.Position.Y = p.sceneH - float64(p.UpperHeight)/2
	p.Lower.Position.Y = float64(p.LowerHeight) / 2
	p.Sync()
}

// Sync copies the shared x onto both bar bodies.
func (p *ObstaclePair) Sync() {
	p.Upper.Position.X = p.X
	p.Lower.Position.X = p.X
}

// UpperFrame returns the upper bar in scene space.
func (p *ObstaclePair) UpperFrame() core.Box {
	return core.NewBox(p.X, p.sceneH-float64(p.UpperHeight)/2, float64(p.Width), float64(p.UpperHeight))
}

// LowerFrame returns the lower bar in scene space.
func (p *ObstaclePair) LowerFrame() core.Box {
	return core.NewBox(p.X, float64(p.LowerHeight)/2, float64(p.Width), float64(p.LowerHeight))
}

// Cycle builds the pair's endless motion: arm the scoring gate, translate to
// the left edge over the traversal duration, then teleport back.
func (p *ObstaclePair) Cycle(arm func()) action.Action {
	return action.RepeatForever(action.Sequence(
		action.Run(arm),
		action.MoveTo(&p.X, p.EndX(), p.duration),
		action.Run(p.Reset),
	))
}
