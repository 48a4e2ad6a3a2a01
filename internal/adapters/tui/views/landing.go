package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"journeydeck/internal/adapters/tui/styles"
	"journeydeck/internal/application"
)

// LandingKeyMap defines key bindings for the landing view
type LandingKeyMap struct {
	Enter key.Binding
}

var LandingKeys = LandingKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "let's dive in"),
	),
}

// LandingModel is the model for the title screen
type LandingModel struct {
	ViewState
}

// NewLandingModel creates a new landing view model
func NewLandingModel() *LandingModel {
	return &LandingModel{}
}

// Init initializes the landing view
func (m *LandingModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the landing view
func (m *LandingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, LandingKeys.Enter) {
			return m, action(application.ActionEnter)
		}
	}
	return m, nil
}

// View renders the landing view
func (m *LandingModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.Banner.Render("XO Launchpad"),
		"",
		RenderSubtitle("User Experience Analysis & Optimization"),
		"",
		styles.CallToAction.Render("Let's Dive In →"),
	)

	if m.Width > 0 && m.Height > 4 {
		body = lipgloss.Place(m.Width, m.Height-4, lipgloss.Center, lipgloss.Center, body)
	}

	return NewViewBuilder().
		Raw(body).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(LandingKeys.Enter, CommonKeys.Help, CommonKeys.Quit).
		String()
}
