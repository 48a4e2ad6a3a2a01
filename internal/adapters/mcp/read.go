package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"journeydeck/internal/adapters/format"
	"journeydeck/internal/application"
	"journeydeck/internal/application/commands"
)

// RegisterReadTools adds the read-only journey and slide tools to the MCP server.
func RegisterReadTools(s *server.MCPServer) {
	s.AddTool(listJourneysTool(), listJourneysHandler())
	s.AddTool(getJourneyTool(), getJourneyHandler())
	s.AddTool(listSlidesTool(), listSlidesHandler())
	s.AddTool(getSlideTool(), getSlideHandler())
}

// --- list_journeys ---

func listJourneysTool() mcp.Tool {
	return mcp.NewTool("list_journeys",
		mcp.WithDescription("List the deployment journeys with their step, pain point and solution counts."),
	)
}

func listJourneysHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := commands.NewListJourneysCommand().Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(summaries, formatSummary)
	}
}

// --- get_journey ---

func getJourneyTool() mcp.Tool {
	return mcp.NewTool("get_journey",
		mcp.WithDescription("Get a journey's steps as JSON, revealed from the first step. Pain points and solutions are separate lists."),
		mcp.WithString("journey",
			mcp.Description("Journey name: "+strings.Join(application.JourneyNames(), ", ")),
			mcp.Required(),
		),
		mcp.WithNumber("upto",
			mcp.Description("Number of steps to reveal. Omit or 0 for all steps."),
		),
	)
}

func getJourneyHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		journey := req.GetString("journey", "")
		upto := req.GetInt("upto", 0)
		if upto < 0 {
			return toolError(fmt.Errorf("upto must not be negative"))
		}

		view, err := commands.NewShowJourneyCommand(journey, upto).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(format.JourneyViewDoc(view))
	}
}

// --- list_slides ---

func listSlidesTool() mcp.Tool {
	return mcp.NewTool("list_slides",
		mcp.WithDescription("List the growth strategy slide headings in order."),
	)
}

func listSlidesHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		headings, err := commands.NewListSlidesCommand().Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		for i, h := range headings {
			fmt.Fprintf(&sb, "%2d  %s\n", i+1, h)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get_slide ---

func getSlideTool() mcp.Tool {
	return mcp.NewTool("get_slide",
		mcp.WithDescription("Get one growth strategy slide as markdown."),
		mcp.WithNumber("number",
			mcp.Description(fmt.Sprintf("Slide number, 1 to %d", application.TotalSlides)),
			mcp.Required(),
		),
	)
}

func getSlideHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		number := req.GetInt("number", 0)

		slide, err := commands.NewShowSlideCommand(number).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(slide.Markdown()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := format.Marshal(v)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(out), nil
}

func formatEntities[T any](entities []T, line func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(line(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatSummary(s commands.JourneySummary) string {
	return fmt.Sprintf("%-8s  %s  (%d steps, %d pain points, %d solutions)",
		s.Name, s.Title, s.Steps, s.PainPoints, s.Solutions)
}
