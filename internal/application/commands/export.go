package commands

import (
	"context"
	"fmt"

	"journeydeck/internal/domain"
	"journeydeck/internal/logger"
	"journeydeck/internal/ports"
)

// ExportResult counts what an export wrote
type ExportResult struct {
	Journeys int
	Steps    int
	Slides   int
}

// ExportCommand hands the full presentation content to an exporter
type ExportCommand struct {
	exporter ports.ContentExporter
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(exporter ports.ContentExporter) *ExportCommand {
	return &ExportCommand{exporter: exporter}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	content := domain.AllContent()

	if err := c.exporter.Export(ctx, content); err != nil {
		return nil, fmt.Errorf("export content: %w", err)
	}

	result := &ExportResult{
		Journeys: len(content.Journeys),
		Slides:   len(content.Slides),
	}
	for _, jc := range content.Journeys {
		result.Steps += len(jc.Steps)
	}

	logger.Info("exported content",
		"journeys", result.Journeys,
		"steps", result.Steps,
		"slides", result.Slides,
	)
	return result, nil
}
