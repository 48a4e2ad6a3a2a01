package domain

// Router owns the current screen and routes navigation to the journey
// revealer or the slide navigator. Every method is total: a call that does
// not apply to the current screen is a no-op and returns false.
type Router struct {
	screen   Screen
	journey  Journey
	revealer *Revealer
	slides   *SlideNavigator
}

// NewRouter creates a router on the landing screen
func NewRouter() *Router {
	return &Router{
		screen:   ScreenLanding,
		journey:  JourneyTemplate,
		revealer: NewRevealer(Steps(JourneyTemplate)),
		slides:   NewSlideNavigator(),
	}
}

// Screen returns the active screen
func (r *Router) Screen() Screen {
	return r.screen
}

// Journey returns the last selected journey
func (r *Router) Journey() Journey {
	return r.journey
}

// Enter leaves the landing screen for the task list
func (r *Router) Enter() bool {
	if r.screen != ScreenLanding {
		return false
	}
	r.screen = ScreenTasks
	return true
}

// SelectTask opens the journey list or the signup deck from the task list.
// Opening the deck starts it on its first slide.
func (r *Router) SelectTask(t Task) bool {
	if r.screen != ScreenTasks {
		return false
	}
	switch t {
	case TaskJourneyAnalysis:
		r.screen = ScreenJourneys
	case TaskGrowthStrategy:
		r.slides = NewSlideNavigator()
		r.screen = ScreenSignup
	default:
		return false
	}
	return true
}

// SelectJourney opens the flowchart for a journey with only its first step
// revealed.
func (r *Router) SelectJourney(j Journey) bool {
	if r.screen != ScreenJourneys {
		return false
	}
	r.journey = j
	r.revealer = NewRevealer(Steps(j))
	r.screen = ScreenFlowchart
	return true
}

// GoBack moves one screen up. Leaving the flowchart resets the reveal.
func (r *Router) GoBack() bool {
	switch r.screen {
	case ScreenFlowchart:
		r.revealer.Reset()
		r.screen = ScreenJourneys
	case ScreenJourneys, ScreenSignup:
		r.screen = ScreenTasks
	case ScreenTasks:
		r.screen = ScreenLanding
	default:
		return false
	}
	return true
}

// Next reveals the next flowchart step
func (r *Router) Next() bool {
	if r.screen != ScreenFlowchart {
		return false
	}
	return r.revealer.Next()
}

// Previous hides the latest flowchart step
func (r *Router) Previous() bool {
	if r.screen != ScreenFlowchart {
		return false
	}
	return r.revealer.Previous()
}

// Reset shows only the first flowchart step again. Returns whether the
// reveal actually changed.
func (r *Router) Reset() bool {
	if r.screen != ScreenFlowchart {
		return false
	}
	changed := r.revealer.Revealed() > 1
	r.revealer.Reset()
	return changed
}

// NextSlide advances the signup deck
func (r *Router) NextSlide() bool {
	if r.screen != ScreenSignup {
		return false
	}
	return r.slides.NextSlide()
}

// PrevSlide moves the signup deck back
func (r *Router) PrevSlide() bool {
	if r.screen != ScreenSignup {
		return false
	}
	return r.slides.PrevSlide()
}

// RevealState returns a copy of the active journey's reveal state
func (r *Router) RevealState() RevealState {
	return r.revealer.State()
}

// Snapshot is the read-only view of the router handed to renderers
type Snapshot struct {
	Screen Screen

	// Flowchart fields, set only on ScreenFlowchart
	Journey    Journey
	Steps      []VisibleStep
	Revealed   int // k
	TotalSteps int // N

	// Signup fields, set only on ScreenSignup
	SlideIndex  int
	Slide       Slide
	TotalSlides int
}

// InFlowchart reports whether the flowchart fields are populated
func (s Snapshot) InFlowchart() bool {
	return s.Screen == ScreenFlowchart
}

// InSignup reports whether the slide fields are populated
func (s Snapshot) InSignup() bool {
	return s.Screen == ScreenSignup
}

// SlidePosition returns the one-based slide number
func (s Snapshot) SlidePosition() int {
	return s.SlideIndex + 1
}

// Latest returns the most recently revealed step
func (s Snapshot) Latest() (JourneyStep, bool) {
	if len(s.Steps) == 0 {
		return JourneyStep{}, false
	}
	return s.Steps[len(s.Steps)-1].Step, true
}

// Snapshot captures the current state
func (r *Router) Snapshot() Snapshot {
	snap := Snapshot{Screen: r.screen}

	switch r.screen {
	case ScreenFlowchart:
		snap.Journey = r.journey
		snap.Steps = r.revealer.Visible()
		snap.Revealed = r.revealer.Revealed()
		snap.TotalSteps = r.revealer.Total()
	case ScreenSignup:
		snap.SlideIndex = r.slides.Index()
		snap.Slide = SlideAt(r.slides.Index())
		snap.TotalSlides = r.slides.Total()
	}

	return snap
}
