package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"journeydeck/internal/adapters/tui/styles"
	"journeydeck/internal/application"
	"journeydeck/internal/domain"
)

// card height including borders; used to size the menu page
const journeyCardHeight = 4

// JourneysModel is the model for the journey selection view
type JourneysModel struct {
	ViewState
	journeys []domain.Journey
	menu     *Menu
}

// NewJourneysModel creates a new journey selection view model
func NewJourneysModel() *JourneysModel {
	journeys := domain.Journeys()
	return &JourneysModel{
		journeys: journeys,
		menu:     NewMenu(len(journeys), 0),
	}
}

// Init initializes the journeys view
func (m *JourneysModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions and the number of cards per page
func (m *JourneysModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	if height > 0 {
		// title, subtitle, help and padding take about ten lines
		m.menu.SetPageSize((height - 10) / journeyCardHeight)
	}
}

// Selected returns the journey under the cursor
func (m *JourneysModel) Selected() domain.Journey {
	return m.journeys[m.menu.Cursor()]
}

// Update handles messages for the journeys view
func (m *JourneysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, MenuKeys.Up):
		m.menu.CursorUp()
	case key.Matches(keyMsg, MenuKeys.Down):
		m.menu.CursorDown()
	case key.Matches(keyMsg, MenuKeys.Select):
		return m, m.selectCmd()
	case key.Matches(keyMsg, CommonKeys.Back):
		return m, action(application.ActionBack)
	default:
		if i, ok := digitIndex(keyMsg.String()); ok && i < len(m.journeys) {
			m.menu.SetCursor(i)
			return m, m.selectCmd()
		}
	}
	return m, nil
}

func (m *JourneysModel) selectCmd() tea.Cmd {
	return actionWithArg(application.ActionSelectJourney, m.Selected().String())
}

// View renders the journeys view
func (m *JourneysModel) View() string {
	v := NewViewBuilder().
		Muted("← Back to Tasks").
		BlankLine().
		Title("Select User Journey").
		Subtitle("Choose a deployment method to analyze")

	start, end := m.menu.VisibleRange()
	for i := start; i < end; i++ {
		j := m.journeys[i]
		title := lipgloss.NewStyle().Foreground(styles.JourneyColor(j.String())).Render("●") +
			" " + j.Title()
		v.Line(renderCard(title, j.Tagline(), i == m.menu.Cursor(), m.Width))
	}
	if end-start < len(m.journeys) {
		v.Muted(fmt.Sprintf("%d-%d of %d", start+1, end, len(m.journeys)))
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(MenuKeys.Up, MenuKeys.Down, MenuKeys.Select, CommonKeys.Back, CommonKeys.Help).
		String()
}
