package rocket

import (
	"github.com/vovakirdan/kaya/internal/core"
	"github.com/vovakirdan/kaya/internal/physics"
)

// Rocket is the player entity: a dynamic physics body plus the visual
// rotation animated by the game loop.
type Rocket struct {
	Body     *physics.Body
	Rotation float64 // Radians, counter-clockwise
}

// NewRocket places the rocket at (sceneW/2 - w/2, sceneH/2 - h/2), the
// position the scene has always used, with contacts reported against every
// category.
func NewRocket(sceneW, sceneH, w, h, mass float64) *Rocket {
	body := physics.NewDynamicBody("rocket", core.Vec{X: w, Y: h}, mass)
	body.Position = core.Vec{X: sceneW/2 - w/2, Y: sceneH/2 - h/2}
	body.ContactTestMask = physics.AllCategories
	return &Rocket{Body: body}
}

// LeadingEdge returns the left edge of the rocket's body.
func (r *Rocket) LeadingEdge() float64 {
	return r.Body.Position.X - r.Body.Size.X/2
}

// Frame returns the rocket's body in scene space.
func (r *Rocket) Frame() core.Box {
	return r.Body.Frame()
}
