package ports

import (
	"context"

	"journeydeck/internal/domain"
)

// ContentExporter writes the presentation content to an external store
type ContentExporter interface {
	// Export writes every journey, step and slide in one pass.
	// Implementations replace any content written by a previous export.
	Export(ctx context.Context, content domain.Content) error
}
