package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"journeydeck/internal/adapters/tui/styles"
	"journeydeck/internal/application"
	"journeydeck/internal/domain"
	"journeydeck/internal/ports"
)

const (
	// side-by-side layout needs at least this many columns
	wideLayoutWidth = 100
	// lines taken by header, progress bar, help line and padding
	flowchartChrome = 10
)

// FlowchartKeyMap defines key bindings for the flowchart view
type FlowchartKeyMap struct {
	Next       key.Binding
	Previous   key.Binding
	Reset      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	NotesUp    key.Binding
	NotesDown  key.Binding
	Copy       key.Binding
}

// DefaultFlowchartKeys returns the flowchart key bindings
func DefaultFlowchartKeys() FlowchartKeyMap {
	return FlowchartKeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", " ", "enter"),
			key.WithHelp("n/→", "next step"),
		),
		Previous: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p/←", "previous step"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll"),
		),
		NotesUp: key.NewBinding(
			key.WithKeys("pgup", "K"),
			key.WithHelp("pgup", "notes up"),
		),
		NotesDown: key.NewBinding(
			key.WithKeys("pgdown", "J"),
			key.WithHelp("pgdn", "notes down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy step"),
		),
	}
}

// FlowchartModel is the model for the progressive step reveal view
type FlowchartModel struct {
	ViewState
	keys      FlowchartKeyMap
	clipboard ports.Clipboard

	snap     domain.Snapshot
	progress progress.Model
	chart    viewport.Model
	notes    viewport.Model
}

// NewFlowchartModel creates a new flowchart view model
func NewFlowchartModel(clip ports.Clipboard) *FlowchartModel {
	m := &FlowchartModel{
		keys:      DefaultFlowchartKeys(),
		clipboard: clip,
		progress: progress.New(
			progress.WithGradient(string(styles.Accent), string(styles.Primary)),
			progress.WithWidth(40),
		),
		chart: viewport.New(60, 20),
		notes: viewport.New(40, 20),
	}
	if clip == nil || !clip.IsAvailable() {
		m.keys.Copy.SetEnabled(false)
	}
	return m
}

// Init initializes the flowchart view
func (m *FlowchartModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions and lays out the panes
func (m *FlowchartModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)

	inner := max(width-4, 20)
	paneHeight := max(height-flowchartChrome, 5)

	if m.wide() {
		chartWidth := inner * 3 / 5
		m.chart.Width = chartWidth
		m.chart.Height = paneHeight
		m.notes.Width = inner - chartWidth - 3
		m.notes.Height = paneHeight - 2
	} else {
		m.chart.Width = inner
		m.chart.Height = paneHeight / 2
		m.notes.Width = inner
		m.notes.Height = paneHeight - m.chart.Height - 2
	}
	m.progress.Width = m.chart.Width

	m.refresh()
}

func (m *FlowchartModel) wide() bool {
	return m.Width >= wideLayoutWidth
}

// SetSnapshot replaces the displayed state
func (m *FlowchartModel) SetSnapshot(snap domain.Snapshot) {
	m.snap = snap
	m.keys.Next.SetEnabled(snap.Revealed < snap.TotalSteps)
	m.keys.Previous.SetEnabled(snap.Revealed > 1)
	m.keys.Reset.SetEnabled(snap.Revealed > 1)
	m.refresh()
}

// refresh re-renders both panes and keeps the newest step in view
func (m *FlowchartModel) refresh() {
	m.chart.SetContent(m.renderSteps(m.chart.Width))
	m.chart.GotoBottom()
	m.notes.SetContent(m.renderNotes(m.notes.Width))
	m.notes.GotoBottom()
}

// Update handles messages for the flowchart view
func (m *FlowchartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Next):
		return m, action(application.ActionNext)
	case key.Matches(keyMsg, m.keys.Previous):
		return m, action(application.ActionPrevious)
	case key.Matches(keyMsg, m.keys.Reset):
		return m, action(application.ActionReset)
	case key.Matches(keyMsg, CommonKeys.Back):
		return m, action(application.ActionBack)
	case key.Matches(keyMsg, m.keys.ScrollUp):
		m.chart.LineUp(1)
	case key.Matches(keyMsg, m.keys.ScrollDown):
		m.chart.LineDown(1)
	case key.Matches(keyMsg, m.keys.NotesUp):
		m.notes.LineUp(3)
	case key.Matches(keyMsg, m.keys.NotesDown):
		m.notes.LineDown(3)
	case key.Matches(keyMsg, m.keys.Copy):
		return m, m.copyLatest()
	}
	return m, nil
}

func (m *FlowchartModel) copyLatest() tea.Cmd {
	step, ok := m.snap.Latest()
	if !ok {
		return nil
	}
	clip := m.clipboard
	return func() tea.Msg {
		if err := clip.Copy(StepText(step)); err != nil {
			return status("Copy failed: "+err.Error(), true)
		}
		return status(fmt.Sprintf("Copied step %d", step.ID), false)
	}
}

// View renders the flowchart view
func (m *FlowchartModel) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		RenderTitle(m.snap.Journey.Title()),
		"   ",
		RenderCounter("Step", m.snap.Revealed, m.snap.TotalSteps),
	)

	pct := 0.0
	if m.snap.TotalSteps > 0 {
		pct = float64(m.snap.Revealed) / float64(m.snap.TotalSteps)
	}

	notes := lipgloss.JoinVertical(lipgloss.Left,
		styles.NotesHeading.Render("Pain Points & Solutions"),
		"",
		m.notes.View(),
	)

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.chart.View(),
			" ",
			styles.NotesPane.Render(notes),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.chart.View(), "", notes)
	}

	return NewViewBuilder().
		Muted("← Back to Journeys").
		Raw(header).
		BlankLine().
		Line(m.progress.ViewAs(pct)).
		BlankLine().
		Line(body).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.keys.Next, m.keys.Previous, m.keys.Reset, m.keys.Copy, CommonKeys.Back, CommonKeys.Help).
		String()
}

// renderSteps draws the revealed steps top to bottom joined by arrows
func (m *FlowchartModel) renderSteps(width int) string {
	boxWidth := max(width-2, 16)
	arrow := styles.StepArrow.Render(strings.Repeat(" ", boxWidth/2) + "↓")

	var parts []string
	for i, vs := range m.snap.Steps {
		if i > 0 {
			parts = append(parts, arrow)
		}
		parts = append(parts, renderStepBox(vs, boxWidth))
	}
	return strings.Join(parts, "\n")
}

func renderStepBox(vs domain.VisibleStep, width int) string {
	box, badge := styles.StepBox, styles.StepBadge
	if vs.Latest {
		box, badge = styles.StepBoxLatest, styles.StepBadgeLatest
	}

	content := badge.Render(fmt.Sprintf("%d", vs.Step.ID)) + " " +
		styles.StepTitle.Render(vs.Step.Title) + "\n" +
		RenderMuted(vs.Step.Description)

	return box.Width(width).Render(content)
}

// renderNotes lists pain points and solutions for revealed steps that have any
func (m *FlowchartModel) renderNotes(width int) string {
	wrap := lipgloss.NewStyle().Width(max(width, 10))

	var b strings.Builder
	for _, vs := range m.snap.Steps {
		step := vs.Step
		if !step.HasNotes() {
			continue
		}

		b.WriteString(styles.NotesHeading.Render(fmt.Sprintf("Step %d: %s", step.ID, step.Title)))
		b.WriteString("\n")

		if len(step.PainPoints) > 0 {
			b.WriteString(styles.PainPointLabel.Render("⚠ Pain Points"))
			b.WriteString("\n")
			for _, p := range step.PainPoints {
				b.WriteString(wrap.Render(styles.PainPoint.Render("  • " + p)))
				b.WriteString("\n")
			}
		}
		if len(step.Solutions) > 0 {
			b.WriteString(styles.SolutionLabel.Render("✓ Solutions"))
			b.WriteString("\n")
			for _, s := range step.Solutions {
				b.WriteString(wrap.Render(styles.Solution.Render("  • " + s)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		return RenderMuted("No pain points recorded for the revealed steps.")
	}
	return strings.TrimRight(b.String(), "\n")
}

// StepText is the plain text copied for a step
func StepText(step domain.JourneyStep) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d: %s\n%s\n", step.ID, step.Title, step.Description)
	if len(step.PainPoints) > 0 {
		b.WriteString("\nPain points:\n")
		for _, p := range step.PainPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	if len(step.Solutions) > 0 {
		b.WriteString("\nSolutions:\n")
		for _, s := range step.Solutions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return b.String()
}
