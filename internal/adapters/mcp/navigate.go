package mcp

import (
	"context"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"journeydeck/internal/adapters/format"
	"journeydeck/internal/application"
)

// Navigator holds the single presentation session shared by the navigation
// tools. Handlers may run concurrently, so every access goes through mu.
type Navigator struct {
	mu      sync.Mutex
	session *application.Session
}

// NewNavigator creates a navigator on the landing screen
func NewNavigator() *Navigator {
	return &Navigator{session: application.NewSession()}
}

// Apply runs one step on the shared session
func (n *Navigator) Apply(step application.Step) (application.Snapshot, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.session.Apply(step)
}

// Snapshot returns the shared session's current state
func (n *Navigator) Snapshot() application.Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.session.Snapshot()
}

// Restart replaces the session with a fresh one on the landing screen
func (n *Navigator) Restart() application.Snapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.session = application.NewSession()
	return n.session.Snapshot()
}

// RegisterNavigateTools adds the stateful navigation tools to the MCP server.
func RegisterNavigateTools(s *server.MCPServer, nav *Navigator) {
	s.AddTool(navigateTool(), navigateHandler(nav))
	s.AddTool(snapshotTool(), snapshotHandler(nav))
	s.AddTool(restartTool(), restartHandler(nav))
}

// --- navigate ---

func navigateTool() mcp.Tool {
	return mcp.NewTool("navigate",
		mcp.WithDescription("Apply one navigation action to the shared presentation session and return the resulting snapshot as JSON. Actions that do not apply to the current screen leave it unchanged."),
		mcp.WithString("action",
			mcp.Description("Action: "+strings.Join(application.ActionNames(), ", ")),
			mcp.Required(),
		),
		mcp.WithString("arg",
			mcp.Description("Task name for select-task ("+strings.Join(application.TaskNames(), ", ")+
				") or journey name for select-journey ("+strings.Join(application.JourneyNames(), ", ")+")"),
		),
	)
}

func navigateHandler(nav *Navigator) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		token := req.GetString("action", "")
		if arg := req.GetString("arg", ""); arg != "" {
			token += ":" + arg
		}

		step, err := application.ParseStep(token)
		if err != nil {
			return toolError(err)
		}

		snap, err := nav.Apply(step)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(format.SnapshotDocFor(snap))
	}
}

// --- snapshot ---

func snapshotTool() mcp.Tool {
	return mcp.NewTool("snapshot",
		mcp.WithDescription("Return the shared presentation session's current screen as JSON."),
	)
}

func snapshotHandler(nav *Navigator) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(format.SnapshotDocFor(nav.Snapshot()))
	}
}

// --- restart ---

func restartTool() mcp.Tool {
	return mcp.NewTool("restart",
		mcp.WithDescription("Discard the shared session and start again on the landing screen."),
	)
}

func restartHandler(nav *Navigator) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(format.SnapshotDocFor(nav.Restart()))
	}
}
