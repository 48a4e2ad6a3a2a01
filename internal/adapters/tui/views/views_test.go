package views

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"journeydeck/internal/application"
	"journeydeck/internal/domain"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// stepFromCmd runs cmd and returns the step of the ActionMsg it produces
func stepFromCmd(t *testing.T, cmd tea.Cmd) application.Step {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	msg, ok := cmd().(ActionMsg)
	if !ok {
		t.Fatalf("expected ActionMsg, got %T", cmd())
	}
	return msg.Step
}

func snapshotAfter(t *testing.T, tokens ...string) domain.Snapshot {
	t.Helper()
	session := application.NewSession()
	for _, tok := range tokens {
		step, err := application.ParseStep(tok)
		if err != nil {
			t.Fatalf("parse %q: %v", tok, err)
		}
		if _, err := session.Apply(step); err != nil {
			t.Fatalf("apply %q: %v", tok, err)
		}
	}
	return session.Snapshot()
}

type fakeClipboard struct {
	copied string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	f.copied = text
	return f.err
}

func (f *fakeClipboard) IsAvailable() bool { return true }

type fakeOpener struct{ opened string }

func (f *fakeOpener) Open(url string) error {
	f.opened = url
	return nil
}

type upperRenderer struct{}

func (upperRenderer) Render(md string) (string, error) { return strings.ToUpper(md), nil }

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) { return "", errors.New("no style") }

func TestMenu_Clamps(t *testing.T) {
	m := NewMenu(4, 2)

	if m.CursorUp() {
		t.Error("expected CursorUp at top to report no move")
	}
	for range 10 {
		m.CursorDown()
	}
	if m.Cursor() != 3 {
		t.Errorf("expected cursor 3, got %d", m.Cursor())
	}
	if start, end := m.VisibleRange(); start != 2 || end != 4 {
		t.Errorf("expected page 2-4, got %d-%d", start, end)
	}

	m.SetCursor(-5)
	if m.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.Cursor())
	}
	m.SetCursor(99)
	if m.Cursor() != 3 {
		t.Errorf("expected cursor clamped to 3, got %d", m.Cursor())
	}
}

func TestLanding_EnterEmitsAction(t *testing.T) {
	m := NewLandingModel()

	if !strings.Contains(m.View(), "XO Launchpad") {
		t.Error("expected landing title")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if step := stepFromCmd(t, cmd); step.Action != application.ActionEnter {
		t.Errorf("expected enter, got %s", step)
	}
}

func TestTasks_SelectAndBack(t *testing.T) {
	m := NewTasksModel()

	view := m.View()
	if !strings.Contains(view, "Task 1: User Journey Analysis") || !strings.Contains(view, "Task 2: Signup Strategy") {
		t.Errorf("expected both task cards, got:\n%s", view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	step := stepFromCmd(t, cmd)
	if step.Action != application.ActionSelectTask || step.Arg != "growth-strategy" {
		t.Errorf("unexpected step %s", step)
	}

	_, cmd = m.Update(runeKey("1"))
	if step := stepFromCmd(t, cmd); step.Arg != "journey-analysis" {
		t.Errorf("expected digit shortcut to pick first task, got %s", step)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if step := stepFromCmd(t, cmd); step.Action != application.ActionBack {
		t.Errorf("expected back, got %s", step)
	}
}

func TestJourneys_Select(t *testing.T) {
	tests := []struct {
		keys []tea.KeyMsg
		want string
	}{
		{keys: nil, want: "template"},
		{keys: []tea.KeyMsg{runeKey("j")}, want: "github"},
		{keys: []tea.KeyMsg{runeKey("j"), runeKey("j"), runeKey("j"), runeKey("j")}, want: "local"},
		{keys: []tea.KeyMsg{runeKey("j"), runeKey("k"), runeKey("k")}, want: "template"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := NewJourneysModel()
			for _, k := range tt.keys {
				m.Update(k)
			}
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			step := stepFromCmd(t, cmd)
			if step.Action != application.ActionSelectJourney || step.Arg != tt.want {
				t.Errorf("expected select-journey:%s, got %s", tt.want, step)
			}
		})
	}
}

func TestJourneys_ViewListsCards(t *testing.T) {
	m := NewJourneysModel()
	m.SetSize(120, 40)

	view := m.View()
	for _, j := range domain.Journeys() {
		if !strings.Contains(view, j.Title()) {
			t.Errorf("expected card %q in view", j.Title())
		}
	}
}

func TestFlowchart_ViewShowsRevealedSteps(t *testing.T) {
	m := NewFlowchartModel(&fakeClipboard{})
	m.SetSize(140, 60)
	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:journey-analysis", "select-journey:github", "next", "next", "next"))

	view := m.View()
	for _, want := range []string{"GitHub Repository", "Step 4 of 10", "Pain Points & Solutions", "Step 4: Select GitHub Repository"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Step 5:") {
		t.Error("unrevealed step notes should not be shown")
	}
}

func TestFlowchart_KeysEmitActions(t *testing.T) {
	m := NewFlowchartModel(nil)
	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:journey-analysis", "select-journey:local", "next"))

	tests := []struct {
		key  tea.KeyMsg
		want application.Action
	}{
		{key: runeKey("n"), want: application.ActionNext},
		{key: tea.KeyMsg{Type: tea.KeyRight}, want: application.ActionNext},
		{key: runeKey("p"), want: application.ActionPrevious},
		{key: runeKey("r"), want: application.ActionReset},
		{key: tea.KeyMsg{Type: tea.KeyEsc}, want: application.ActionBack},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			_, cmd := m.Update(tt.key)
			if step := stepFromCmd(t, cmd); step.Action != tt.want {
				t.Errorf("expected %s, got %s", tt.want, step)
			}
		})
	}
}

func TestFlowchart_BoundsDisableKeys(t *testing.T) {
	m := NewFlowchartModel(nil)
	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:journey-analysis", "select-journey:template"))

	if _, cmd := m.Update(runeKey("p")); cmd != nil {
		t.Error("previous should be disabled on the first step")
	}
	if _, cmd := m.Update(runeKey("r")); cmd != nil {
		t.Error("reset should be disabled on the first step")
	}
	if _, cmd := m.Update(runeKey("c")); cmd != nil {
		t.Error("copy should be disabled without a clipboard")
	}
}

func TestFlowchart_CopyLatestStep(t *testing.T) {
	clip := &fakeClipboard{}
	m := NewFlowchartModel(clip)
	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:journey-analysis", "select-journey:github", "next", "next", "next"))

	_, cmd := m.Update(runeKey("c"))
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	msg, ok := cmd().(StatusMsg)
	if !ok || msg.Err {
		t.Fatalf("expected success status, got %#v", cmd())
	}
	if !strings.HasPrefix(clip.copied, "Step 4: Select GitHub Repository") {
		t.Errorf("unexpected clipboard text %q", clip.copied)
	}
	if !strings.Contains(clip.copied, "Pain points:") || !strings.Contains(clip.copied, "Solutions:") {
		t.Errorf("expected notes in clipboard text %q", clip.copied)
	}
}

func TestSignup_ViewAndNavigation(t *testing.T) {
	m := NewSignupModel(upperRenderer{}, nil, nil)
	m.SetSize(100, 40)
	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:growth-strategy"))

	view := m.View()
	if !strings.Contains(view, "Slide 1 of 10") {
		t.Errorf("expected slide counter, got:\n%s", view)
	}
	if !strings.Contains(view, "ARE SIGNUPS IMPORTANT?") {
		t.Errorf("expected rendered slide markdown, got:\n%s", view)
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyLeft}); cmd != nil {
		t.Error("previous slide should be disabled on the first slide")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if step := stepFromCmd(t, cmd); step.Action != application.ActionNextSlide {
		t.Errorf("expected next-slide, got %s", step)
	}
}

func TestSignup_RenderFailureFallsBackToMarkdown(t *testing.T) {
	m := NewSignupModel(failingRenderer{}, nil, nil)
	m.SetSize(100, 40)
	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:growth-strategy"))

	if !strings.Contains(m.View(), "# WHY are signups important?") {
		t.Error("expected raw markdown fallback")
	}
}

func TestSignup_OpenLink(t *testing.T) {
	opener := &fakeOpener{}
	m := NewSignupModel(nil, nil, opener)

	// slide 1 has no link
	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:growth-strategy"))
	if _, cmd := m.Update(runeKey("o")); cmd != nil {
		t.Error("open should be disabled on a slide without a link")
	}

	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:growth-strategy", "next-slide", "next-slide", "next-slide"))
	_, cmd := m.Update(runeKey("o"))
	if cmd == nil {
		t.Fatal("expected open command")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Err {
		t.Fatalf("expected success status, got %#v", msg)
	}
	if !strings.Contains(opener.opened, "medium.com") {
		t.Errorf("unexpected url %q", opener.opened)
	}
}

func TestSignup_CopyError(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no xclip")}
	m := NewSignupModel(nil, clip, nil)
	m.SetSnapshot(snapshotAfter(t, "enter", "select-task:growth-strategy"))

	_, cmd := m.Update(runeKey("c"))
	msg, ok := cmd().(StatusMsg)
	if !ok || !msg.Err {
		t.Fatalf("expected error status, got %#v", msg)
	}
	if !strings.Contains(msg.Text, "no xclip") {
		t.Errorf("unexpected status %q", msg.Text)
	}
}

func TestHelp_CloseKeys(t *testing.T) {
	m := NewHelpModel()
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, runeKey("q"), runeKey("?")} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected close command", k)
		}
		if _, ok := cmd().(CloseHelpMsg); !ok {
			t.Errorf("%s: expected CloseHelpMsg", k)
		}
	}
}
