package domain

// Journey identifies one of the documented deployment flows
type Journey int

const (
	JourneyTemplate Journey = iota
	JourneyGitHub
	JourneyLovable // website builders (Lovable, Claude Code, ...)
	JourneyLocal
)

func (j Journey) String() string {
	switch j {
	case JourneyTemplate:
		return "template"
	case JourneyGitHub:
		return "github"
	case JourneyLovable:
		return "lovable"
	case JourneyLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Title returns the heading shown on the journey card and flowchart header
func (j Journey) Title() string {
	switch j {
	case JourneyTemplate:
		return "Template Deployment"
	case JourneyGitHub:
		return "GitHub Repository"
	case JourneyLovable:
		return "Website Builders"
	case JourneyLocal:
		return "Local Build"
	default:
		return "Unknown Journey"
	}
}

// Tagline returns the one-line description shown under the journey card title
func (j Journey) Tagline() string {
	switch j {
	case JourneyTemplate:
		return "Deploy using pre-built templates"
	case JourneyGitHub:
		return "Deploy from GitHub repository"
	case JourneyLovable:
		return "Deploy from Claude Code, Lovable, etc."
	case JourneyLocal:
		return "Build locally and push Docker image"
	default:
		return ""
	}
}

// Journeys returns every journey in card order
func Journeys() []Journey {
	return []Journey{JourneyTemplate, JourneyGitHub, JourneyLovable, JourneyLocal}
}

// ParseJourney resolves a journey from its string form
func ParseJourney(s string) (Journey, bool) {
	for _, j := range Journeys() {
		if j.String() == s {
			return j, true
		}
	}
	return JourneyTemplate, false
}

// JourneyStep is one node of a journey flowchart.
// PainPoints and Solutions are independent lists for the step as a whole;
// they are not index-aligned.
type JourneyStep struct {
	ID          int // 1-based, equals position+1 in its journey
	Title       string
	Description string
	PainPoints  []string
	Solutions   []string
}

// HasNotes reports whether the step carries pain points or solutions
func (s JourneyStep) HasNotes() bool {
	return len(s.PainPoints) > 0 || len(s.Solutions) > 0
}

// Steps returns the step table for a journey. The returned slice is shared
// static content and must not be modified.
func Steps(j Journey) []JourneyStep {
	switch j {
	case JourneyGitHub:
		return githubSteps
	case JourneyLovable:
		return lovableSteps
	case JourneyLocal:
		return localSteps
	default:
		return templateSteps
	}
}

// JourneyContent pairs a journey with its step table
type JourneyContent struct {
	Journey Journey
	Steps   []JourneyStep
}

// Content is the complete static content of the presentation
type Content struct {
	Journeys []JourneyContent
	Slides   []Slide
}

// AllContent gathers every journey table and the slide deck
func AllContent() Content {
	var c Content
	for _, j := range Journeys() {
		c.Journeys = append(c.Journeys, JourneyContent{Journey: j, Steps: Steps(j)})
	}
	c.Slides = append(c.Slides, deck[:]...)
	return c
}
