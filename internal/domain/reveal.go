package domain

// RevealState lists the indices of the visible steps in reveal order.
// It is always the prefix [0, 1, ..., k-1] with 1 <= k <= len(steps).
type RevealState []int

// InitialReveal is the state after a journey is selected or reset
func InitialReveal() RevealState {
	return RevealState{0}
}

// VisibleStep is a revealed step as handed to the renderer
type VisibleStep struct {
	Step   JourneyStep
	Latest bool // most recently revealed step, used for highlighting
}

// VisibleSteps dereferences a reveal state against a step table.
// Exactly the last returned entry is marked Latest.
func VisibleSteps(steps []JourneyStep, state RevealState) []VisibleStep {
	visible := make([]VisibleStep, 0, len(state))
	for i, idx := range state {
		visible = append(visible, VisibleStep{
			Step:   steps[idx],
			Latest: i == len(state)-1,
		})
	}
	return visible
}

// Revealer walks a journey's steps one at a time, never skipping ahead
type Revealer struct {
	steps []JourneyStep
	state RevealState
}

// NewRevealer creates a revealer showing only the first step
func NewRevealer(steps []JourneyStep) *Revealer {
	return &Revealer{
		steps: steps,
		state: InitialReveal(),
	}
}

// Next reveals the following step. Returns false at the last step.
func (r *Revealer) Next() bool {
	k := len(r.state)
	if k >= len(r.steps) {
		return false
	}
	r.state = append(r.state, k)
	return true
}

// Previous hides the most recently revealed step. Returns false when only
// the first step is visible.
func (r *Revealer) Previous() bool {
	if len(r.state) <= 1 {
		return false
	}
	r.state = r.state[:len(r.state)-1]
	return true
}

// Reset goes back to showing only the first step
func (r *Revealer) Reset() {
	r.state = InitialReveal()
}

// State returns a copy of the current reveal state
func (r *Revealer) State() RevealState {
	out := make(RevealState, len(r.state))
	copy(out, r.state)
	return out
}

// Revealed returns k, the number of visible steps
func (r *Revealer) Revealed() int {
	return len(r.state)
}

// Total returns N, the number of steps in the journey
func (r *Revealer) Total() int {
	return len(r.steps)
}

// Visible returns the currently revealed steps
func (r *Revealer) Visible() []VisibleStep {
	return VisibleSteps(r.steps, r.state)
}
