package rocket

import (
	"github.com/vovakirdan/kaya/internal/config"
)

// Machine is the pure game state machine. It never touches the scene; it
// returns commands for the scene to carry out, which keeps every rule
// testable without a physics world or a frame loop.
type Machine struct {
	impulse          float64
	referenceSpeed   float64
	rotationDuration float64
}

// NewMachine creates a state machine for the given configuration.
func NewMachine(cfg config.RocketConfig) *Machine {
	return &Machine{
		impulse:          cfg.Rocket.Impulse,
		referenceSpeed:   cfg.Scene.Width / cfg.Obstacles.TraversalDuration,
		rotationDuration: cfg.Rocket.RotationDuration,
	}
}

// Update applies one event and returns the new state plus the side effects
// to perform, in order.
func (m *Machine) Update(s State, ev Event) (State, []Command) {
	switch ev := ev.(type) {
	case TickEvent:
		return m.tick(s, ev)
	case TapEvent:
		return m.tap(s)
	case ContactEvent:
		return m.contact(s)
	case ArmEvent:
		s.CanScore = true
		return s, nil
	}
	return s, nil
}

// tick is the per-frame game loop: scoring gate, then orientation.
func (m *Machine) tick(s State, ev TickEvent) (State, []Command) {
	if s.Phase != PhaseRunning {
		return s, nil
	}

	var cmds []Command
	s, scored := checkGate(s, ev.ObstacleTrailingEdge, ev.RocketLeadingEdge)
	if scored {
		cmds = append(cmds, ScoreChangedCommand{Score: s.Score})
	}

	cmds = append(cmds, OrientCommand{
		Angle:    OrientationAngle(ev.VerticalVelocity, m.referenceSpeed),
		Duration: m.rotationDuration,
	})
	return s, cmds
}

// tap starts the session on the first press. The impulse is applied on every
// press, GameOver included; the frozen loop makes it invisible there.
func (m *Machine) tap(s State) (State, []Command) {
	var cmds []Command
	if s.Phase == PhaseNotStarted {
		s.Phase = PhaseRunning
		cmds = append(cmds, ResumeCommand{}, HideStatusCommand{})
	}

	cmds = append(cmds,
		ResetVerticalVelocityCommand{},
		ApplyImpulseCommand{DX: 0, DY: m.impulse},
	)
	return s, cmds
}

// contact ends a running session. Repeated contacts after the end re-issue
// the same display and pause, which the scene treats as no-ops.
func (m *Machine) contact(s State) (State, []Command) {
	switch s.Phase {
	case PhaseRunning:
		s.Phase = PhaseGameOver
		return s, []Command{ShowStatusCommand{Text: StatusGameOver}, PauseCommand{}}
	case PhaseGameOver:
		return s, []Command{ShowStatusCommand{Text: StatusGameOver}, PauseCommand{}}
	default:
		// Not started: the world is frozen, and skipping Running is not allowed.
		return s, nil
	}
}
