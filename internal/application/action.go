package application

import "strings"

// Action is one of the inbound navigation events
type Action int

const (
	ActionEnter Action = iota
	ActionSelectTask
	ActionSelectJourney
	ActionBack
	ActionNext
	ActionPrevious
	ActionReset
	ActionNextSlide
	ActionPrevSlide
)

var actionNames = map[Action]string{
	ActionEnter:         "enter",
	ActionSelectTask:    "select-task",
	ActionSelectJourney: "select-journey",
	ActionBack:          "back",
	ActionNext:          "next",
	ActionPrevious:      "previous",
	ActionReset:         "reset",
	ActionNextSlide:     "next-slide",
	ActionPrevSlide:     "prev-slide",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// NeedsArg reports whether the action takes a task or journey argument
func (a Action) NeedsArg() bool {
	return a == ActionSelectTask || a == ActionSelectJourney
}

// Actions returns every action in declaration order
func Actions() []Action {
	return []Action{
		ActionEnter, ActionSelectTask, ActionSelectJourney, ActionBack,
		ActionNext, ActionPrevious, ActionReset, ActionNextSlide, ActionPrevSlide,
	}
}

// ActionNames lists the accepted action names
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for _, a := range Actions() {
		names = append(names, a.String())
	}
	return names
}

// ParseAction resolves an action name or returns a ParseError
func ParseAction(s string) (Action, error) {
	for a, name := range actionNames {
		if name == s {
			return a, nil
		}
	}
	return ActionEnter, &ParseError{Field: "action", Value: s, Err: ErrUnknownAction}
}

// Step is an action with its optional argument, e.g. "select-journey:github"
type Step struct {
	Action Action
	Arg    string
}

// ParseStep parses "action" or "action:arg" and checks that actions taking
// an argument have one
func ParseStep(token string) (Step, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(token), ":")
	action, err := ParseAction(name)
	if err != nil {
		return Step{}, err
	}
	if action.NeedsArg() {
		if err := ValidateRequired(action.String(), arg); err != nil {
			return Step{}, err
		}
	}
	return Step{Action: action, Arg: arg}, nil
}

func (s Step) String() string {
	if s.Arg == "" {
		return s.Action.String()
	}
	return s.Action.String() + ":" + s.Arg
}
