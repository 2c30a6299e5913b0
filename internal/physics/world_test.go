package physics

import (
	"math"
	"testing"

	"github.com/vovakirdan/kaya/internal/core"
)

func newTestWorld() *World {
	return NewWorld(640, 480, core.Vec{Y: -1050})
}

func TestGravityIntegration(t *testing.T) {
	w := newTestWorld()
	b := NewDynamicBody("rocket", core.Vec{X: 40, Y: 20}, 0.07)
	b.Position = core.Vec{X: 320, Y: 240}
	w.Add(b)

	w.Step(0.1)

	if math.Abs(b.Velocity.Y-(-105)) > 1e-9 {
		t.Errorf("Velocity.Y = %v, expected -105", b.Velocity.Y)
	}
	if math.Abs(b.Position.Y-229.5) > 1e-9 {
		t.Errorf("Position.Y = %v, expected 229.5", b.Position.Y)
	}
	if b.Position.X != 320 {
		t.Errorf("Position.X should not change, got %v", b.Position.X)
	}
}

func TestApplyImpulse(t *testing.T) {
	b := NewDynamicBody("rocket", core.Vec{X: 40, Y: 20}, 0.07)
	b.Velocity = core.Vec{X: 3, Y: 0}

	b.ApplyImpulse(0, 28)

	if math.Abs(b.Velocity.Y-400) > 1e-9 {
		t.Errorf("Velocity.Y = %v, expected 400", b.Velocity.Y)
	}
	if b.Velocity.X != 3 {
		t.Errorf("Velocity.X = %v, expected untouched 3", b.Velocity.X)
	}

	s := NewStaticBody("bar", core.Vec{X: 60, Y: 170})
	s.ApplyImpulse(0, 28)
	if s.Velocity.Y != 0 {
		t.Errorf("static body should ignore impulses, got %v", s.Velocity.Y)
	}
}

func TestStaticBodiesDoNotMove(t *testing.T) {
	w := newTestWorld()
	s := NewStaticBody("bar", core.Vec{X: 60, Y: 170})
	s.Position = core.Vec{X: 100, Y: 85}
	w.Add(s)

	for i := 0; i < 10; i++ {
		w.Step(1.0 / 60)
	}

	if s.Position != (core.Vec{X: 100, Y: 85}) {
		t.Errorf("static body moved to %+v", s.Position)
	}
}

func TestEdgeContactBeginsOnce(t *testing.T) {
	w := newTestWorld()
	b := NewDynamicBody("rocket", core.Vec{X: 40, Y: 20}, 0.07)
	b.Position = core.Vec{X: 320, Y: 15}
	b.ContactTestMask = AllCategories
	w.Add(b)

	var contacts []Contact
	w.SetContactHandler(func(c Contact) { contacts = append(contacts, c) })

	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60)
	}

	if len(contacts) != 1 {
		t.Fatalf("expected exactly one contact-began, got %d", len(contacts))
	}
	if !contacts[0].Involves(w.Edge()) || !contacts[0].Involves(b) {
		t.Errorf("contact should be rocket vs edge, got %s vs %s", contacts[0].A.Name, contacts[0].B.Name)
	}
	if b.Frame().MinY() != 0 {
		t.Errorf("body should rest on the bottom edge, MinY = %v", b.Frame().MinY())
	}
	if b.Velocity.Y != 0 {
		t.Errorf("edge has zero restitution, Velocity.Y = %v", b.Velocity.Y)
	}
}

func TestObstacleContact(t *testing.T) {
	w := NewWorld(640, 480, core.Vec{})
	rocket := NewDynamicBody("rocket", core.Vec{X: 40, Y: 20}, 0.07)
	rocket.Position = core.Vec{X: 300, Y: 240}
	rocket.ContactTestMask = AllCategories
	w.Add(rocket)

	bar := NewStaticBody("bar", core.Vec{X: 60, Y: 170})
	bar.Position = core.Vec{X: 400, Y: 240}
	w.Add(bar)

	var contacts []Contact
	w.SetContactHandler(func(c Contact) { contacts = append(contacts, c) })

	w.Step(1.0 / 60)
	if len(contacts) != 0 {
		t.Fatalf("separated bodies should not touch, got %d contacts", len(contacts))
	}

	bar.Position.X = 330
	w.Step(1.0 / 60)
	w.Step(1.0 / 60)

	if len(contacts) != 1 {
		t.Fatalf("expected one contact-began, got %d", len(contacts))
	}
	if !contacts[0].Involves(bar) {
		t.Errorf("contact should involve the bar")
	}

	// Separate and touch again: a new contact begins.
	bar.Position.X = 600
	w.Step(1.0 / 60)
	bar.Position.X = 320
	w.Step(1.0 / 60)

	if len(contacts) != 2 {
		t.Errorf("expected a second contact-began after separating, got %d", len(contacts))
	}
}

func TestContactMaskFiltering(t *testing.T) {
	w := NewWorld(640, 480, core.Vec{})
	rocket := NewDynamicBody("rocket", core.Vec{X: 40, Y: 20}, 0.07)
	rocket.Position = core.Vec{X: 300, Y: 240}
	rocket.ContactTestMask = 0x1
	w.Add(rocket)

	ghost := NewStaticBody("ghost", core.Vec{X: 60, Y: 60})
	ghost.Position = core.Vec{X: 300, Y: 240}
	ghost.CategoryMask = 0x2
	w.Add(ghost)

	called := false
	w.SetContactHandler(func(Contact) { called = true })
	w.Step(1.0 / 60)

	if called {
		t.Error("contact should be filtered when masks do not match")
	}
}

func TestFlushBodiesDoNotTouch(t *testing.T) {
	tests := []struct {
		name      string
		rocket    core.Vec // Rocket center; the rocket is 40x20
		bar       core.Vec // Bar center; the bar is 60x170
		wantTouch bool
	}{
		{"flush against bottom edge", core.Vec{X: 300, Y: 10}, core.Vec{X: 600, Y: 240}, false},
		{"flush against left edge", core.Vec{X: 20, Y: 240}, core.Vec{X: 600, Y: 240}, false},
		{"flush against bar", core.Vec{X: 300, Y: 240}, core.Vec{X: 350, Y: 240}, false},
		{"one unit into bar", core.Vec{X: 300, Y: 240}, core.Vec{X: 349, Y: 240}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(640, 480, core.Vec{})
			rocket := NewDynamicBody("rocket", core.Vec{X: 40, Y: 20}, 0.07)
			rocket.Position = tc.rocket
			rocket.ContactTestMask = AllCategories
			w.Add(rocket)

			bar := NewStaticBody("bar", core.Vec{X: 60, Y: 170})
			bar.Position = tc.bar
			w.Add(bar)

			touched := false
			w.SetContactHandler(func(Contact) { touched = true })
			w.Step(1.0 / 60)

			if touched != tc.wantTouch {
				t.Errorf("touched = %v, expected %v", touched, tc.wantTouch)
			}
			if rocket.Position != tc.rocket {
				t.Errorf("rocket moved to %+v, expected it to stay at %+v", rocket.Position, tc.rocket)
			}
		})
	}
}
