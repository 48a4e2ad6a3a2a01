package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeydeck/internal/adapters/tui/views"
	"journeydeck/internal/application"
	"journeydeck/internal/domain"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and feeds any resulting message back into the app,
// the way the bubbletea runtime would.
func press(t *testing.T, a *App, k tea.KeyMsg) {
	t.Helper()
	_, cmd := a.Update(k)
	for cmd != nil {
		msg := cmd()
		if _, quit := msg.(tea.QuitMsg); quit {
			return
		}
		_, cmd = a.Update(msg)
	}
}

func newTestApp() *App {
	a := NewApp(Deps{})
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return a
}

func TestApp_StartsOnLanding(t *testing.T) {
	a := newTestApp()
	assert.Equal(t, domain.ScreenLanding, a.Screen())
	assert.Contains(t, a.View(), "XO Launchpad")
}

func TestApp_JourneyWalkthrough(t *testing.T) {
	a := newTestApp()

	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, domain.ScreenTasks, a.Screen())

	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, domain.ScreenJourneys, a.Screen())

	press(t, a, runeKey("2"))
	require.Equal(t, domain.ScreenFlowchart, a.Screen())
	assert.Contains(t, a.View(), "Step 1 of 10")

	for range 12 {
		press(t, a, runeKey("n"))
	}
	assert.Contains(t, a.View(), "Step 10 of 10")

	press(t, a, runeKey("r"))
	assert.Contains(t, a.View(), "Step 1 of 10")

	press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, domain.ScreenJourneys, a.Screen())

	// re-entering starts from the first step again
	press(t, a, runeKey("2"))
	assert.Contains(t, a.View(), "Step 1 of 10")
}

func TestApp_SlideDeckRoundTrip(t *testing.T) {
	a := newTestApp()

	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, a, runeKey("j"))
	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, domain.ScreenSignup, a.Screen())
	assert.Contains(t, a.View(), "Slide 1 of 10")

	for range 15 {
		press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Contains(t, a.View(), "Slide 10 of 10")

	press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, domain.ScreenTasks, a.Screen())

	// the deck is remounted on the next visit
	press(t, a, runeKey("2"))
	assert.Contains(t, a.View(), "Slide 1 of 10")
}

func TestApp_HelpOverlay(t *testing.T) {
	a := newTestApp()

	press(t, a, runeKey("?"))
	assert.Contains(t, a.View(), "XO Launchpad Help")

	// keys go to the help view while it is open
	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, domain.ScreenLanding, a.Screen())

	press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, a.View(), "XO Launchpad Help")
}

func TestApp_Quit(t *testing.T) {
	a := newTestApp()

	_, cmd := a.Update(runeKey("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestApp_RejectedActionShowsMessage(t *testing.T) {
	a := newTestApp()

	a.Update(views.ActionMsg{Step: application.Step{Action: application.ActionSelectJourney, Arg: "vercel"}})

	assert.Equal(t, domain.ScreenLanding, a.Screen())
	assert.True(t, strings.Contains(a.View(), "unknown journey"))
}

func TestApp_StatusMessage(t *testing.T) {
	a := newTestApp()

	a.Update(views.StatusMsg{Text: "Copied step 3"})
	assert.Contains(t, a.View(), "Copied step 3")

	// a successful navigation clears it
	press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	press(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, a.View(), "Copied step 3")
}
