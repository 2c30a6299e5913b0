// Package action provides scheduled, time-based scene actions: immediate
// callbacks, linear moves and rotations over a duration, waits, sequences and
// infinite repetition. Actions only advance when their Runner is updated, so a
// host pauses every running action simply by not calling Update.
package action

// Action is a step-driven scene action.
type Action interface {
	// Step advances the action by dt seconds. Once the action finishes it
	// returns done=true and the part of dt it did not consume, which a
	// Sequence hands to the next step in the same frame.
	Step(dt float64) (rest float64, done bool)

	// Reset rewinds the action so it can run again.
	Reset()
}

// runAction calls a function once and completes instantly.
type runAction struct {
	fn   func()
	done bool
}

// Run returns an action that invokes fn once and finishes without consuming time.
func Run(fn func()) Action {
	return &runAction{fn: fn}
}

func (a *runAction) Step(dt float64) (float64, bool) {
	if !a.done {
		a.fn()
		a.done = true
	}
	return dt, true
}

func (a *runAction) Reset() { a.done = false }

// timed tracks elapsed time for actions with a fixed duration.
type timed struct {
	duration float64
	elapsed  float64
}

// advance adds dt and returns the eased fraction in [0, 1], the unused time
// and whether the duration has elapsed.
func (t *timed) advance(dt float64) (fraction, rest float64, done bool) {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		rest = t.elapsed - t.duration
		if rest < 0 {
			rest = 0
		}
		t.elapsed = t.duration
		return 1, rest, true
	}
	return t.elapsed / t.duration, 0, false
}

// moveToAction interpolates a coordinate from its value at start to a target.
type moveToAction struct {
	timed
	value   *float64
	to      float64
	from    float64
	started bool
}

// MoveTo returns an action that moves *value linearly to the target over
// duration seconds. The start value is captured on the action's first step.
func MoveTo(value *float64, to, duration float64) Action {
	return &moveToAction{timed: timed{duration: duration}, value: value, to: to}
}

func (a *moveToAction) Step(dt float64) (float64, bool) {
	if !a.started {
		a.from = *a.value
		a.started = true
	}
	f, rest, done := a.advance(dt)
	*a.value = a.from + (a.to-a.from)*f
	return rest, done
}

func (a *moveToAction) Reset() {
	a.elapsed = 0
	a.started = false
}

// rotateByAction adds a fixed angle to a value spread linearly over a duration.
type rotateByAction struct {
	timed
	value   *float64
	by      float64
	applied float64
}

// RotateBy returns an action that adds by to *value over duration seconds.
// It applies increments, so other writers to *value are not overwritten.
func RotateBy(value *float64, by, duration float64) Action {
	return &rotateByAction{timed: timed{duration: duration}, value: value, by: by}
}

func (a *rotateByAction) Step(dt float64) (float64, bool) {
	f, rest, done := a.advance(dt)
	target := a.by * f
	*a.value += target - a.applied
	a.applied = target
	return rest, done
}

func (a *rotateByAction) Reset() {
	a.elapsed = 0
	a.applied = 0
}

// sequenceAction runs its children one after another.
type sequenceAction struct {
	steps   []Action
	current int
}

// Sequence returns an action that runs the given actions in order.
func Sequence(steps ...Action) Action {
	return &sequenceAction{steps: steps}
}

func (a *sequenceAction) Step(dt float64) (float64, bool) {
	for a.current < len(a.steps) {
		rest, done := a.steps[a.current].Step(dt)
		if !done {
			return 0, false
		}
		dt = rest
		a.current++
	}
	return dt, true
}

func (a *sequenceAction) Reset() {
	a.current = 0
	for _, s := range a.steps {
		s.Reset()
	}
}

// repeatForeverAction restarts its child every time it finishes.
type repeatForeverAction struct {
	inner Action
}

// RepeatForever returns an action that repeats inner indefinitely. It never
// reports done; removing it from the Runner is the only way to stop it.
func RepeatForever(inner Action) Action {
	return &repeatForeverAction{inner: inner}
}

func (a *repeatForeverAction) Step(dt float64) (float64, bool) {
	for {
		rest, done := a.inner.Step(dt)
		if !done {
			return 0, false
		}
		a.inner.Reset()
		// A zero-length iteration would spin forever on the same dt.
		if rest >= dt {
			return 0, false
		}
		dt = rest
	}
}

func (a *repeatForeverAction) Reset() { a.inner.Reset() }
