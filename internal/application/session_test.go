package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeydeck/internal/domain"
)

func applyAll(t *testing.T, s *Session, tokens ...string) Snapshot {
	t.Helper()
	var snap Snapshot
	for _, tok := range tokens {
		step, err := ParseStep(tok)
		require.NoError(t, err, tok)
		snap, err = s.Apply(step)
		require.NoError(t, err, tok)
	}
	return snap
}

func TestParseStep(t *testing.T) {
	tests := []struct {
		token   string
		want    Step
		wantErr error
	}{
		{token: "enter", want: Step{Action: ActionEnter}},
		{token: " next ", want: Step{Action: ActionNext}},
		{token: "select-journey:github", want: Step{Action: ActionSelectJourney, Arg: "github"}},
		{token: "select-task:growth-strategy", want: Step{Action: ActionSelectTask, Arg: "growth-strategy"}},
		{token: "jump", wantErr: ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseStep(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStep_MissingArg(t *testing.T) {
	_, err := ParseStep("select-journey")

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "select-journey", valErr.Field)
}

func TestActionNames_RoundTrip(t *testing.T) {
	for _, name := range ActionNames() {
		a, err := ParseAction(name)
		require.NoError(t, err)
		assert.Equal(t, name, a.String())
	}
}

func TestSession_GitHubWalkthrough(t *testing.T) {
	s := NewSession()
	snap := applyAll(t, s, "enter", "select-task:journey-analysis", "select-journey:github")

	assert.Equal(t, domain.ScreenFlowchart, snap.Screen)
	assert.Equal(t, domain.JourneyGitHub, snap.Journey)
	assert.Equal(t, 1, snap.Revealed)

	for range 9 {
		snap = applyAll(t, s, "next")
	}
	assert.Equal(t, 10, snap.Revealed)

	snap = applyAll(t, s, "next")
	assert.Equal(t, 10, snap.Revealed)
	latest, ok := snap.Latest()
	require.True(t, ok)
	assert.Equal(t, 10, latest.ID)

	snap = applyAll(t, s, "back")
	assert.Equal(t, domain.ScreenJourneys, snap.Screen)
}

func TestSession_InvalidTransitionIsNoop(t *testing.T) {
	s := NewSession()

	snap, err := s.Apply(Step{Action: ActionNextSlide})
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenLanding, snap.Screen)

	snap, err = s.Apply(Step{Action: ActionBack})
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenLanding, snap.Screen)
}

func TestSession_BadArgumentLeavesState(t *testing.T) {
	s := NewSession()
	applyAll(t, s, "enter", "select-task:journey-analysis")

	snap, err := s.Apply(Step{Action: ActionSelectJourney, Arg: "netlify"})
	assert.ErrorIs(t, err, ErrUnknownJourney)
	assert.Equal(t, domain.ScreenJourneys, snap.Screen)

	_, err = s.Apply(Step{Action: ActionSelectTask, Arg: "hiring"})
	assert.ErrorIs(t, err, ErrUnknownTask)
}

func TestSession_SignupRoundTrip(t *testing.T) {
	s := NewSession()
	snap := applyAll(t, s, "enter", "select-task:growth-strategy")
	assert.Equal(t, domain.ScreenSignup, snap.Screen)
	assert.Equal(t, 1, snap.SlidePosition())

	snap = applyAll(t, s, "next-slide", "next-slide", "prev-slide")
	assert.Equal(t, 1, snap.SlideIndex)

	snap = applyAll(t, s, "back")
	assert.Equal(t, domain.ScreenTasks, snap.Screen)
}
