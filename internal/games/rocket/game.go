// Package rocket implements a single-screen arcade scene: a rocket under
// gravity, lifted by taps, threading the gap of an obstacle pair that scrolls
// across the scene forever. Each pair cleared scores a point; touching a bar
// or the scene edge ends the session.
//
// Game rules live in Machine, a pure state machine fed with events. Game owns
// the scene and carries out the commands the machine returns.
package rocket

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kaya/internal/action"
	"github.com/vovakirdan/kaya/internal/config"
	"github.com/vovakirdan/kaya/internal/core"
	"github.com/vovakirdan/kaya/internal/physics"
)

const obstacleCycleKey = "obstacle-cycle"

// Game is one rocket session.
type Game struct {
	cfg     config.RocketConfig
	logger  *log.Logger
	machine *Machine
	state   State

	world  *physics.World
	runner *action.Runner
	rocket *Rocket
	pair   *ObstaclePair

	status Label
	paused bool
	frames int
}

// New builds the whole scene from the configuration. The scene starts paused
// with the "TAP TO BEGIN" status shown; the first tap resumes it.
func New(cfg config.RocketConfig, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rocket: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sceneW, sceneH := cfg.Scene.Width, cfg.Scene.Height
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		machine: NewMachine(cfg),
		world:   physics.NewWorld(sceneW, sceneH, core.Vec{X: 0, Y: cfg.GravityY()}),
		runner:  action.NewRunner(),
		rocket:  NewRocket(sceneW, sceneH, cfg.Rocket.Width, cfg.Rocket.Height, cfg.Rocket.Mass),
		pair:    NewObstaclePair(sceneW, sceneH, cfg.Obstacles.Width, cfg.Obstacles.Gap, cfg.Obstacles.TraversalDuration),
		status:  Label{Text: StatusTapToBegin, Visible: true},
		paused:  true,
	}

	g.world.Add(g.rocket.Body)
	g.world.Add(g.pair.Upper)
	g.world.Add(g.pair.Lower)
	g.world.SetContactHandler(g.onContact)

	g.runner.RunKeyed(obstacleCycleKey, g.pair.Cycle(func() {
		g.dispatch(ArmEvent{})
	}))

	g.logger.Debug("scene ready",
		"width", cfg.Scene.Width,
		"height", cfg.Scene.Height,
		"bar_height", g.pair.UpperHeight,
	)
	return g, nil
}

// Tap delivers one discrete press to the scene.
func (g *Game) Tap() {
	g.dispatch(TapEvent{})
}

// Step advances the scene by one frame of dt seconds. Nothing moves while
// paused.
func (g *Game) Step(dt float64) {
	if g.paused {
		return
	}
	g.frames++

	g.dispatch(TickEvent{
		ObstacleTrailingEdge: g.pair.TrailingEdge(),
		RocketLeadingEdge:    g.rocket.LeadingEdge(),
		VerticalVelocity:     g.rocket.Body.Velocity.Y,
	})

	g.runner.Update(dt)
	g.pair.Sync()

	// Contacts arrive through onContact; a pause they cause applies from the
	// next frame.
	g.world.Step(dt)
}

// onContact turns a physics contact involving the rocket into an event.
func (g *Game) onContact(c physics.Contact) {
	if !c.Involves(g.rocket.Body) {
		return
	}
	other := c.A
	if other == g.rocket.Body {
		other = c.B
	}
	g.dispatch(ContactEvent{With: other.Name})
}

// dispatch feeds an event to the machine and carries out its commands.
func (g *Game) dispatch(ev Event) {
	prev := g.state
	next, cmds := g.machine.Update(g.state, ev)
	g.state = next

	if prev.Phase != next.Phase {
		attrs := []any{"from", prev.Phase, "to", next.Phase, "score", next.Score}
		if c, ok := ev.(ContactEvent); ok {
			attrs = append(attrs, "contact", c.With)
		}
		g.logger.Info("phase changed", attrs...)
	}

	for _, cmd := range cmds {
		g.apply(cmd)
	}
}

// apply carries out one command against the scene.
func (g *Game) apply(cmd Command) {
	switch c := cmd.(type) {
	case ResumeCommand:
		g.paused = false
	case PauseCommand:
		g.paused = true
	case ShowStatusCommand:
		g.status = Label{Text: c.Text, Visible: true}
	case HideStatusCommand:
		g.status.Visible = false
	case ResetVerticalVelocityCommand:
		g.rocket.Body.Velocity.Y = 0
	case ApplyImpulseCommand:
		g.rocket.Body.ApplyImpulse(c.DX, c.DY)
	case ScoreChangedCommand:
		g.logger.Debug("score", "value", c.Score, "frame", g.frames)
	case OrientCommand:
		// Rotations stack: after the reset, every turn still running adds its
		// share for this frame, so the rocket settles on the latest angles
		// over one duration.
		g.rocket.Body.AngularVelocity = 0
		g.rocket.Rotation = 0
		g.runner.Run(action.RotateBy(&g.rocket.Rotation, c.Angle, c.Duration))
	}
}

// State returns the logical session state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// Status returns the status label.
func (g *Game) Status() Label {
	return g.status
}

// Paused reports whether the frame loop and scheduled actions are frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// Rocket returns the player entity.
func (g *Game) Rocket() *Rocket {
	return g.rocket
}

// Obstacles returns the obstacle pair.
func (g *Game) Obstacles() *ObstaclePair {
	return g.pair
}

// Config returns the configuration the scene was built from.
func (g *Game) Config() config.RocketConfig {
	return g.cfg
}
