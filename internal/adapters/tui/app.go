package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"journeydeck/internal/adapters/tui/views"
	"journeydeck/internal/application"
	"journeydeck/internal/domain"
	"journeydeck/internal/ports"
)

// screenView is what every routed view model provides
type screenView interface {
	tea.Model
	SetSize(width, height int)
	SetMessage(msg string, isErr bool)
	ClearMessage()
}

// Deps are the optional side-effect adapters used by the views
type Deps struct {
	Renderer  ports.MarkdownRenderer
	Clipboard ports.Clipboard
	Opener    ports.LinkOpener
}

// App is the main TUI application model
type App struct {
	session *application.Session
	screen  domain.Screen

	landing   *views.LandingModel
	tasks     *views.TasksModel
	journeys  *views.JourneysModel
	flowchart *views.FlowchartModel
	signup    *views.SignupModel
	help      *views.HelpModel
	showHelp  bool

	width  int
	height int
}

// NewApp creates a new TUI application on the landing screen
func NewApp(deps Deps) *App {
	a := &App{
		session:   application.NewSession(),
		landing:   views.NewLandingModel(),
		tasks:     views.NewTasksModel(),
		journeys:  views.NewJourneysModel(),
		flowchart: views.NewFlowchartModel(deps.Clipboard),
		signup:    views.NewSignupModel(deps.Renderer, deps.Clipboard, deps.Opener),
		help:      views.NewHelpModel(),
	}
	a.sync(a.session.Snapshot())
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return nil
}

// Screen returns the screen currently shown
func (a *App) Screen() domain.Screen {
	return a.screen
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, v := range a.allViews() {
			v.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if a.showHelp {
			if msg.Type == tea.KeyCtrlC {
				return a, tea.Quit
			}
			break
		}
		switch {
		case key.Matches(msg, views.CommonKeys.Quit):
			return a, tea.Quit
		case key.Matches(msg, views.CommonKeys.Help):
			a.showHelp = true
			return a, nil
		}

	case views.ActionMsg:
		a.apply(msg.Step)
		return a, nil

	case views.CloseHelpMsg:
		a.showHelp = false
		return a, nil

	case views.StatusMsg:
		a.current().SetMessage(msg.Text, msg.Err)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	if a.showHelp {
		_, cmd = a.help.Update(msg)
	} else {
		_, cmd = a.current().Update(msg)
	}
	return a, cmd
}

// apply runs a step on the session and routes to the resulting screen
func (a *App) apply(step application.Step) {
	snap, err := a.session.Apply(step)
	if err != nil {
		a.current().SetMessage(err.Error(), true)
		return
	}
	a.current().ClearMessage()
	a.sync(snap)
}

// sync routes to the snapshot's screen and hands it to the views that render it
func (a *App) sync(snap domain.Snapshot) {
	a.screen = snap.Screen
	switch {
	case snap.InFlowchart():
		a.flowchart.SetSnapshot(snap)
	case snap.InSignup():
		a.signup.SetSnapshot(snap)
	}
}

func (a *App) current() screenView {
	switch a.screen {
	case domain.ScreenTasks:
		return a.tasks
	case domain.ScreenJourneys:
		return a.journeys
	case domain.ScreenFlowchart:
		return a.flowchart
	case domain.ScreenSignup:
		return a.signup
	default:
		return a.landing
	}
}

func (a *App) allViews() []screenView {
	return []screenView{a.landing, a.tasks, a.journeys, a.flowchart, a.signup, a.help}
}

// View renders the current view
func (a *App) View() string {
	if a.showHelp {
		return a.help.View()
	}
	return a.current().View()
}
