package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"journeydeck/internal/adapters/tui/styles"
	"journeydeck/internal/application"
	"journeydeck/internal/domain"
)

// TasksModel is the model for the task selection view
type TasksModel struct {
	ViewState
	tasks []domain.Task
	menu  *Menu
}

// NewTasksModel creates a new task selection view model
func NewTasksModel() *TasksModel {
	tasks := domain.Tasks()
	return &TasksModel{
		tasks: tasks,
		menu:  NewMenu(len(tasks), 0),
	}
}

// Init initializes the tasks view
func (m *TasksModel) Init() tea.Cmd {
	return nil
}

// Selected returns the task under the cursor
func (m *TasksModel) Selected() domain.Task {
	return m.tasks[m.menu.Cursor()]
}

// Update handles messages for the tasks view
func (m *TasksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if i, ok := digitIndex(keyMsg.String()); ok && i < len(m.tasks) {
			m.menu.SetCursor(i)
			return m, m.selectCmd()
		}
	}
	return m, nil
}

func (m *TasksModel) selectCmd() tea.Cmd {
	return actionWithArg(application.ActionSelectTask, m.Selected().String())
}

// View renders the tasks view
func (m *TasksModel) View() string {
	v := NewViewBuilder().
		Muted("← Back").
		BlankLine().
		Title("Select a Task")

	for i, t := range m.tasks {
		v.Line(renderCard(t.Title(), t.Tagline(), i == m.menu.Cursor(), m.Width))
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(MenuKeys.Up, MenuKeys.Down, MenuKeys.Select, CommonKeys.Back, CommonKeys.Help).
		String()
}

// renderCard renders a selectable menu card
func renderCard(title, tagline string, selected bool, width int) string {
	box, heading := styles.Card, styles.CardTitle
	if selected {
		box, heading = styles.CardSelected, styles.CardTitleSelected
	}
	if width > 12 {
		box = box.Width(min(width-8, 72))
	}
	return box.Render(heading.Render(title) + "\n" + RenderMuted(tagline))
}
