package application

import "journeydeck/internal/domain"

// Re-export domain types for use by adapters
type (
	Journey     = domain.Journey
	JourneyStep = domain.JourneyStep
	VisibleStep = domain.VisibleStep
	Screen      = domain.Screen
	Task        = domain.Task
	Slide       = domain.Slide
	Snapshot    = domain.Snapshot
)

const TotalSlides = domain.TotalSlides

// ParseJourney resolves a journey name or returns a ParseError
func ParseJourney(s string) (Journey, error) {
	j, ok := domain.ParseJourney(s)
	if !ok {
		return j, &ParseError{Field: "journey", Value: s, Err: ErrUnknownJourney}
	}
	return j, nil
}

// ParseTask resolves a task name or returns a ParseError
func ParseTask(s string) (Task, error) {
	t, ok := domain.ParseTask(s)
	if !ok {
		return t, &ParseError{Field: "task", Value: s, Err: ErrUnknownTask}
	}
	return t, nil
}

// JourneyNames lists the accepted journey names
func JourneyNames() []string {
	var names []string
	for _, j := range domain.Journeys() {
		names = append(names, j.String())
	}
	return names
}

// TaskNames lists the accepted task names
func TaskNames() []string {
	var names []string
	for _, t := range domain.Tasks() {
		names = append(names, t.String())
	}
	return names
}
