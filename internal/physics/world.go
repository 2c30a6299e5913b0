package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/kaya/internal/core"
)

const (
	// EdgeName names the boundary body reported in edge contacts.
	EdgeName = "edge"

	// Off-screen margin covered by the broadphase grid, so bodies parked
	// just outside the scene still occupy cells.
	spaceMargin = 256
	cellSize    = 16

	edgeID = -1
)

// Contact describes two bodies that began touching during a step.
type Contact struct {
	A, B *Body
}

// Involves reports whether the contact includes the given body.
func (c Contact) Involves(b *Body) bool {
	return c.A == b || c.B == b
}

// contactKey identifies an unordered body pair.
type contactKey struct {
	lo, hi int
}

func newContactKey(a, b int) contactKey {
	if a > b {
		a, b = b, a
	}
	return contactKey{lo: a, hi: b}
}

// World integrates dynamic bodies inside a rectangular edge loop and reports
// contacts as they begin.
type World struct {
	Gravity core.Vec

	width, height float64
	space         *resolv.Space
	bodies        []*Body
	ids           map[*Body]int
	edge          *Body
	touching      map[contactKey]bool
	onContact     func(Contact)
}

// NewWorld creates a world whose edge loop surrounds [0,width] x [0,height].
// The edge has zero friction and zero restitution: a body reaching it stops
// along the edge normal.
func NewWorld(width, height float64, gravity core.Vec) *World {
	edge := NewStaticBody(EdgeName, core.Vec{X: width, Y: height})
	edge.Position = core.Vec{X: width / 2, Y: height / 2}

	return &World{
		Gravity:  gravity,
		width:    width,
		height:   height,
		space:    resolv.NewSpace(int(width)+2*spaceMargin, int(height)+2*spaceMargin, cellSize, cellSize),
		ids:      make(map[*Body]int),
		edge:     edge,
		touching: make(map[contactKey]bool),
	}
}

// SetContactHandler registers the callback invoked once for every pair of
// bodies that begins touching.
func (w *World) SetContactHandler(fn func(Contact)) {
	w.onContact = fn
}

// Edge returns the boundary body.
func (w *World) Edge() *Body {
	return w.edge
}

// Add places a body in the world.
func (w *World) Add(b *Body) {
	if _, exists := w.ids[b]; exists {
		return
	}
	b.obj = resolv.NewObject(0, 0, b.Size.X, b.Size.Y)
	b.obj.Data = b
	w.ids[b] = len(w.bodies)
	w.bodies = append(w.bodies, b)
	w.space.Add(b.obj)
	w.sync(b)
}

// Step advances the simulation by dt seconds and delivers contact-began
// callbacks after all bodies have moved.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if !b.Dynamic {
			continue
		}
		if b.AffectedByGravity {
			b.Velocity = b.Velocity.Add(w.Gravity.Scale(dt))
		}
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}

	current := make(map[contactKey]bool)
	var began []Contact
	record := func(key contactKey, a, b *Body) {
		if current[key] {
			return
		}
		current[key] = true
		if !w.touching[key] {
			began = append(began, Contact{A: a, B: b})
		}
	}

	for _, b := range w.bodies {
		if b.Dynamic && w.constrainToEdge(b) && wantsContact(b, w.edge) {
			record(newContactKey(w.ids[b], edgeID), b, w.edge)
		}
		w.sync(b)
	}

	for _, b := range w.bodies {
		if !b.Dynamic {
			continue
		}
		collision := b.obj.Check(0, 0)
		if collision == nil {
			continue
		}
		for _, o := range collision.Objects {
			other, ok := o.Data.(*Body)
			if !ok || other == b {
				continue
			}
			if !b.Frame().Intersects(other.Frame()) || !wantsContact(b, other) {
				continue
			}
			record(newContactKey(w.ids[b], w.ids[other]), b, other)
		}
	}

	w.touching = current
	if w.onContact == nil {
		return
	}
	for _, c := range began {
		w.onContact(c)
	}
}

// constrainToEdge keeps a dynamic body inside the edge loop and reports
// whether it crossed the boundary. Like Box.Intersects, a body resting flush
// against the edge does not count as touching it.
func (w *World) constrainToEdge(b *Body) bool {
	touching := false
	f := b.Frame()

	if f.MinX() < 0 {
		b.Position.X = b.Size.X / 2
		b.Velocity.X = max(b.Velocity.X, 0)
		touching = true
	} else if f.MaxX() > w.width {
		b.Position.X = w.width - b.Size.X/2
		b.Velocity.X = min(b.Velocity.X, 0)
		touching = true
	}

	if f.MinY() < 0 {
		b.Position.Y = b.Size.Y / 2
		b.Velocity.Y = max(b.Velocity.Y, 0)
		touching = true
	} else if f.MaxY() > w.height {
		b.Position.Y = w.height - b.Size.Y/2
		b.Velocity.Y = min(b.Velocity.Y, 0)
		touching = true
	}

	return touching
}

// sync copies a body's frame into its broadphase object.
func (w *World) sync(b *Body) {
	b.obj.X = b.Position.X - b.Size.X/2 + spaceMargin
	b.obj.Y = b.Position.Y - b.Size.Y/2 + spaceMargin
	b.obj.Update()
}
