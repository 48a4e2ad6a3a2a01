package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"journeydeck/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return CloseHelpMsg{}
			}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("XO Launchpad Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("User journey analysis and signup strategy walkthrough"))
	b.WriteString("\n\n")

	// Menus
	b.WriteString(styles.InputLabel.Render("Menus"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("Enter / l / →", "Select"))
	b.WriteString(helpLine("1-4", "Pick a card directly"))
	b.WriteString("\n")

	// Flowchart
	b.WriteString(styles.InputLabel.Render("Journey Flowchart"))
	b.WriteString("\n")
	b.WriteString(helpLine("n / → / Space", "Reveal next step"))
	b.WriteString(helpLine("p / ←", "Hide latest step"))
	b.WriteString(helpLine("r", "Reset to the first step"))
	b.WriteString(helpLine("j / k", "Scroll steps"))
	b.WriteString(helpLine("PgUp / PgDn", "Scroll pain points & solutions"))
	b.WriteString(helpLine("c", "Copy latest step"))
	b.WriteString("\n")

	// Slides
	b.WriteString(styles.InputLabel.Render("Signup Strategy Slides"))
	b.WriteString("\n")
	b.WriteString(helpLine("→ / ←", "Next / previous slide"))
	b.WriteString(helpLine("o", "Open the slide link in a browser"))
	b.WriteString(helpLine("c", "Copy slide as markdown"))
	b.WriteString("\n")

	// General
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("Esc / Backspace / b", "Back"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 22)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
