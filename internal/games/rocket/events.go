package rocket

// Event is an input to the state machine.
type Event interface {
	event()
}

// TickEvent is delivered once per rendered frame while the scene is not paused.
// It carries the geometry the scoring gate and orientation need.
type TickEvent struct {
	ObstacleTrailingEdge float64 // obstacle.x + width/2
	RocketLeadingEdge    float64 // rocket.x - rocketWidth/2
	VerticalVelocity     float64
}

func (TickEvent) event() {}

// TapEvent is a discrete press with no payload.
type TapEvent struct{}

func (TapEvent) event() {}

// ContactEvent reports that the rocket began touching an obstacle bar or the
// world edge.
type ContactEvent struct {
	With string // Name of the other body, for logging
}

func (ContactEvent) event() {}

// ArmEvent is sent by the first phase of every obstacle cycle.
type ArmEvent struct{}

func (ArmEvent) event() {}

// Command is a side effect requested by the state machine.
type Command interface {
	command()
}

// ResumeCommand unpauses the frame loop and scheduled actions.
type ResumeCommand struct{}

func (ResumeCommand) command() {}

// PauseCommand freezes the frame loop and scheduled actions.
type PauseCommand struct{}

func (PauseCommand) command() {}

// ShowStatusCommand displays the status label with the given text.
type ShowStatusCommand struct {
	Text string
}

func (ShowStatusCommand) command() {}

// HideStatusCommand hides the status label.
type HideStatusCommand struct{}

func (HideStatusCommand) command() {}

// ResetVerticalVelocityCommand zeroes the rocket's vertical velocity.
type ResetVerticalVelocityCommand struct{}

func (ResetVerticalVelocityCommand) command() {}

// ApplyImpulseCommand pushes the rocket.
type ApplyImpulseCommand struct {
	DX, DY float64
}

func (ApplyImpulseCommand) command() {}

// ScoreChangedCommand notifies the host of a new score.
type ScoreChangedCommand struct {
	Score int
}

func (ScoreChangedCommand) command() {}

// OrientCommand resets the rocket's rotation and animates it by Angle over
// Duration seconds.
type OrientCommand struct {
	Angle    float64
	Duration float64
}

func (OrientCommand) command() {}
