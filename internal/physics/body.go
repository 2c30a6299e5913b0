// Package physics is the rigid-body collaborator the scene drives: gravity
// integration, impulses, axis-aligned rectangular bodies, a world edge loop
// and contact-began notifications. Bodies never rotate; angular velocity is
// tracked only so callers can zero it.
package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/kaya/internal/core"
)

// AllCategories matches every category bit.
const AllCategories uint32 = 0xFFFFFFFF

// Body is a rectangular collision body positioned by its center.
type Body struct {
	Name            string
	Position        core.Vec // Center in scene units
	Size            core.Vec
	Velocity        core.Vec // Scene units per second
	AngularVelocity float64
	Mass            float64

	// Dynamic bodies are integrated and pushed by impulses. Static bodies are
	// moved only by their owner.
	Dynamic           bool
	AffectedByGravity bool

	CategoryMask    uint32
	CollisionMask   uint32
	ContactTestMask uint32

	obj *resolv.Object
}

// NewDynamicBody creates a gravity-affected body of the given size and mass.
func NewDynamicBody(name string, size core.Vec, mass float64) *Body {
	return &Body{
		Name:              name,
		Size:              size,
		Mass:              mass,
		Dynamic:           true,
		AffectedByGravity: true,
		CategoryMask:      AllCategories,
		CollisionMask:     AllCategories,
	}
}

// NewStaticBody creates a body that participates in contacts but is never
// moved by the world.
func NewStaticBody(name string, size core.Vec) *Body {
	return &Body{
		Name:          name,
		Size:          size,
		CategoryMask:  AllCategories,
		CollisionMask: AllCategories,
	}
}

// Frame returns the body's bounding box in scene space.
func (b *Body) Frame() core.Box {
	return core.Box{Center: b.Position, Size: b.Size}
}

// ApplyImpulse adds impulse/mass to the velocity of a dynamic body.
func (b *Body) ApplyImpulse(dx, dy float64) {
	if !b.Dynamic || b.Mass <= 0 {
		return
	}
	b.Velocity.X += dx / b.Mass
	b.Velocity.Y += dy / b.Mass
}

// wantsContact reports whether a contact between a and b should be reported.
func wantsContact(a, b *Body) bool {
	return a.ContactTestMask&b.CategoryMask != 0 || b.ContactTestMask&a.CategoryMask != 0
}
