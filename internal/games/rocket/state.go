package rocket

// Phase is the session lifecycle. Transitions only move forward:
// NotStarted -> Running -> GameOver.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is the logical state of a session.
type State struct {
	Phase    Phase
	Score    int  // Gaps cleared, never decreases
	CanScore bool // Armed by the obstacle cycle, cleared when the pair is passed
}

// Status texts shown by the host.
const (
	StatusTapToBegin = "TAP TO BEGIN"
	StatusGameOver   = "GAME OVER"
)

// Label is a text the host displays when Visible is set.
type Label struct {
	Text    string
	Visible bool
}
