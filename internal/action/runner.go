package action

// Runner owns the actions attached to a scene and advances them each frame.
type Runner struct {
	anonymous []Action
	keyed     map[string]Action
	order     []string // Keyed actions run in insertion order for determinism
}

// NewRunner creates an empty runner.
func NewRunner() *Runner {
	return &Runner{
		keyed: make(map[string]Action),
	}
}

// Run schedules an action. It starts on the next Update.
func (r *Runner) Run(a Action) {
	r.anonymous = append(r.anonymous, a)
}

// RunKeyed schedules an action under a key, replacing any action already
// running with the same key.
func (r *Runner) RunKeyed(key string, a Action) {
	if _, exists := r.keyed[key]; !exists {
		r.order = append(r.order, key)
	}
	r.keyed[key] = a
}

// Remove cancels the keyed action, if any.
func (r *Runner) Remove(key string) {
	if _, exists := r.keyed[key]; !exists {
		return
	}
	delete(r.keyed, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Has reports whether a keyed action is still running.
func (r *Runner) Has(key string) bool {
	_, ok := r.keyed[key]
	return ok
}

// Len returns the number of running actions.
func (r *Runner) Len() int {
	return len(r.anonymous) + len(r.keyed)
}

// Update advances every running action by dt seconds and drops finished ones.
func (r *Runner) Update(dt float64) {
	alive := r.anonymous[:0]
	for _, a := range r.anonymous {
		if _, done := a.Step(dt); !done {
			alive = append(alive, a)
		}
	}
	// Clear the tail so finished actions can be collected.
	for i := len(alive); i < len(r.anonymous); i++ {
		r.anonymous[i] = nil
	}
	r.anonymous = alive

	keys := append([]string(nil), r.order...)
	for _, key := range keys {
		a, ok := r.keyed[key]
		if !ok {
			continue
		}
		if _, done := a.Step(dt); done {
			r.Remove(key)
		}
	}
}
