package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"journeydeck/internal/application"
	"journeydeck/internal/domain"
	"journeydeck/internal/logger"
	"journeydeck/internal/ports"
)

// lines taken by header, help line and padding
const signupChrome = 9

// SignupKeyMap defines key bindings for the slide deck view
type SignupKeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Open       key.Binding
	Copy       key.Binding
}

// DefaultSignupKeys returns the slide deck key bindings
func DefaultSignupKeys() SignupKeyMap {
	return SignupKeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l", " "),
			key.WithHelp("→", "next slide"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("←", "previous slide"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy slide"),
		),
	}
}

// SignupModel is the model for the signup strategy slide deck
type SignupModel struct {
	ViewState
	keys      SignupKeyMap
	renderer  ports.MarkdownRenderer
	clipboard ports.Clipboard
	opener    ports.LinkOpener

	snap    domain.Snapshot
	content viewport.Model
}

// NewSignupModel creates a new slide deck view model. Any port may be nil;
// the matching key is then disabled or falls back to raw markdown.
func NewSignupModel(renderer ports.MarkdownRenderer, clip ports.Clipboard, opener ports.LinkOpener) *SignupModel {
	m := &SignupModel{
		keys:      DefaultSignupKeys(),
		renderer:  renderer,
		clipboard: clip,
		opener:    opener,
		content:   viewport.New(80, 20),
	}
	if clip == nil || !clip.IsAvailable() {
		m.keys.Copy.SetEnabled(false)
	}
	return m
}

// Init initializes the signup view
func (m *SignupModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (m *SignupModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.content.Width = max(width-4, 20)
	m.content.Height = max(height-signupChrome, 5)
	if r, ok := m.renderer.(interface{ SetWidth(int) }); ok {
		r.SetWidth(m.content.Width - 2)
	}
	m.refresh()
}

// SetSnapshot replaces the displayed slide
func (m *SignupModel) SetSnapshot(snap domain.Snapshot) {
	m.snap = snap
	m.keys.Prev.SetEnabled(snap.SlideIndex > 0)
	m.keys.Next.SetEnabled(snap.SlideIndex < snap.TotalSlides-1)
	m.keys.Open.SetEnabled(m.opener != nil && snap.Slide.Link != nil)
	m.refresh()
}

func (m *SignupModel) refresh() {
	m.content.SetContent(m.renderSlide())
	m.content.GotoTop()
}

func (m *SignupModel) renderSlide() string {
	md := m.snap.Slide.Markdown()
	if m.renderer == nil {
		return md
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		logger.Warn("slide render failed", "slide", m.snap.SlidePosition(), "err", err)
		return md
	}
	return out
}

// Update handles messages for the signup view
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Next):
		return m, action(application.ActionNextSlide)
	case key.Matches(keyMsg, m.keys.Prev):
		return m, action(application.ActionPrevSlide)
	case key.Matches(keyMsg, CommonKeys.Back):
		return m, action(application.ActionBack)
	case key.Matches(keyMsg, m.keys.ScrollUp):
		m.content.LineUp(1)
	case key.Matches(keyMsg, m.keys.ScrollDown):
		m.content.LineDown(1)
	case key.Matches(keyMsg, m.keys.Open):
		return m, m.openLink()
	case key.Matches(keyMsg, m.keys.Copy):
		return m, m.copySlide()
	}
	return m, nil
}

func (m *SignupModel) openLink() tea.Cmd {
	link := m.snap.Slide.Link
	if link == nil {
		return nil
	}
	opener := m.opener
	return func() tea.Msg {
		if err := opener.Open(link.URL); err != nil {
			return status("Could not open link: "+err.Error(), true)
		}
		return status("Opened "+link.Label, false)
	}
}

func (m *SignupModel) copySlide() tea.Cmd {
	md := m.snap.Slide.Markdown()
	pos := m.snap.SlidePosition()
	clip := m.clipboard
	return func() tea.Msg {
		if err := clip.Copy(md); err != nil {
			return status("Copy failed: "+err.Error(), true)
		}
		return status(fmt.Sprintf("Copied slide %d", pos), false)
	}
}

// View renders the signup view
func (m *SignupModel) View() string {
	return NewViewBuilder().
		Muted("← Back to Tasks").
		BlankLine().
		Line(RenderCounter("Slide", m.snap.SlidePosition(), m.snap.TotalSlides)).
		BlankLine().
		Line(m.content.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.keys.Prev, m.keys.Next, m.keys.Open, m.keys.Copy, CommonKeys.Back, CommonKeys.Help).
		String()
}
