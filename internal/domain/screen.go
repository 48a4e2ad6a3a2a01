package domain

// Screen identifies the page currently shown to the viewer
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenTasks
	ScreenJourneys
	ScreenFlowchart
	ScreenSignup
)

func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenTasks:
		return "tasks"
	case ScreenJourneys:
		return "journeys"
	case ScreenFlowchart:
		return "flowchart"
	case ScreenSignup:
		return "signup"
	default:
		return "unknown"
	}
}

// Task is an entry on the task selection screen
type Task int

const (
	TaskJourneyAnalysis Task = iota
	TaskGrowthStrategy
)

func (t Task) String() string {
	switch t {
	case TaskJourneyAnalysis:
		return "journey-analysis"
	case TaskGrowthStrategy:
		return "growth-strategy"
	default:
		return "unknown"
	}
}

// Title returns the task card heading
func (t Task) Title() string {
	switch t {
	case TaskJourneyAnalysis:
		return "Task 1: User Journey Analysis & Optimization"
	case TaskGrowthStrategy:
		return "Task 2: Signup Strategy"
	default:
		return ""
	}
}

// Tagline returns the task card description
func (t Task) Tagline() string {
	switch t {
	case TaskJourneyAnalysis:
		return "Analyze user journeys across different deployment methods"
	case TaskGrowthStrategy:
		return "Creative approaches to drive signups and growth"
	default:
		return ""
	}
}

// Tasks returns every task in card order
func Tasks() []Task {
	return []Task{TaskJourneyAnalysis, TaskGrowthStrategy}
}

// ParseTask resolves a task from its string form
func ParseTask(s string) (Task, bool) {
	for _, t := range Tasks() {
		if t.String() == s {
			return t, true
		}
	}
	return TaskJourneyAnalysis, false
}
