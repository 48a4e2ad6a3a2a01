package application

import (
	"journeydeck/internal/domain"
	"journeydeck/internal/logger"
)

// Session drives one viewer's router. It is not safe for concurrent use.
type Session struct {
	router *domain.Router
}

// NewSession creates a session on the landing screen
func NewSession() *Session {
	return &Session{router: domain.NewRouter()}
}

// Snapshot returns the current read-only state
func (s *Session) Snapshot() Snapshot {
	return s.router.Snapshot()
}

// Apply runs one step against the router and returns the resulting
// snapshot. Only an unparseable argument is an error; a step that does not
// apply to the current screen leaves the state unchanged.
func (s *Session) Apply(step Step) (Snapshot, error) {
	from := s.router.Screen()

	changed, err := s.dispatch(step)
	if err != nil {
		logger.Warn("rejected step", "step", step.String(), "err", err)
		return s.router.Snapshot(), err
	}

	snap := s.router.Snapshot()
	logger.Debug("step",
		"step", step.String(),
		"from", from,
		"to", snap.Screen,
		"changed", changed,
	)
	return snap, nil
}

func (s *Session) dispatch(step Step) (bool, error) {
	switch step.Action {
	case ActionEnter:
		return s.router.Enter(), nil
	case ActionSelectTask:
		task, err := ParseTask(step.Arg)
		if err != nil {
			return false, err
		}
		return s.router.SelectTask(task), nil
	case ActionSelectJourney:
		journey, err := ParseJourney(step.Arg)
		if err != nil {
			return false, err
		}
		return s.router.SelectJourney(journey), nil
	case ActionBack:
		return s.router.GoBack(), nil
	case ActionNext:
		return s.router.Next(), nil
	case ActionPrevious:
		return s.router.Previous(), nil
	case ActionReset:
		return s.router.Reset(), nil
	case ActionNextSlide:
		return s.router.NextSlide(), nil
	case ActionPrevSlide:
		return s.router.PrevSlide(), nil
	default:
		return false, &ParseError{Field: "action", Value: step.Action.String(), Err: ErrUnknownAction}
	}
}
