package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"journeydeck/internal/application"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// ActionMsg asks the app to apply a navigation step to the session
type ActionMsg struct {
	Step application.Step
}

// CloseHelpMsg closes the help overlay
type CloseHelpMsg struct{}

// StatusMsg reports the outcome of a side effect such as copying or
// opening a link
type StatusMsg struct {
	Text string
	Err  bool
}

func action(a application.Action) tea.Cmd {
	return actionWithArg(a, "")
}

func actionWithArg(a application.Action, arg string) tea.Cmd {
	return func() tea.Msg {
		return ActionMsg{Step: application.Step{Action: a, Arg: arg}}
	}
}

func status(text string, isErr bool) tea.Msg {
	return StatusMsg{Text: text, Err: isErr}
}
