package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#10B981") // Green
	Accent    = lipgloss.Color("#34D399") // Light green
	Text      = lipgloss.Color("#1F2937") // Slate
	Muted     = lipgloss.Color("#6B7280") // Gray
	Border    = lipgloss.Color("#E5E7EB") // Light gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Highlight = lipgloss.Color("#1F2937")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Landing
	Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(1, 4)

	CallToAction = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			Padding(0, 2)

	// Menu cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 2)

	CardTitle = lipgloss.NewStyle().
			Bold(true)

	CardTitleSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary)

	// Flowchart step boxes
	StepBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	StepBoxLatest = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	StepBadge = lipgloss.NewStyle().
			Background(Border).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	StepBadgeLatest = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	StepTitle = lipgloss.NewStyle().
			Bold(true)

	StepArrow = lipgloss.NewStyle().
			Foreground(Muted)

	Counter = lipgloss.NewStyle().
		Foreground(Muted).
		Bold(true)

	// Notes pane
	NotesPane = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Border).
			PaddingLeft(2)

	NotesHeading = lipgloss.NewStyle().
			Foreground(Muted).
			Bold(true)

	PainPointLabel = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	PainPoint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#991B1B"))

	SolutionLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Solution = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#065F46"))

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(Highlight).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Section labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// JourneyColor returns the accent color for a journey card
func JourneyColor(name string) lipgloss.Color {
	switch name {
	case "template":
		return lipgloss.Color("#10B981")
	case "github":
		return lipgloss.Color("#6366F1")
	case "lovable":
		return lipgloss.Color("#EC4899")
	case "local":
		return lipgloss.Color("#F97316")
	default:
		return Primary
	}
}
