package commands

import (
	"context"

	"journeydeck/internal/application"
	"journeydeck/internal/domain"
)

// ShowSlideCommand fetches one slide by its one-based number
type ShowSlideCommand struct {
	Number int
}

// NewShowSlideCommand creates a new ShowSlideCommand
func NewShowSlideCommand(number int) *ShowSlideCommand {
	return &ShowSlideCommand{Number: number}
}

// Execute runs the show slide command
func (c *ShowSlideCommand) Execute(ctx context.Context) (domain.Slide, error) {
	if err := application.ValidateSlideNumber(c.Number); err != nil {
		return domain.Slide{}, err
	}
	return domain.SlideAt(c.Number - 1), nil
}

// ListSlidesCommand lists the deck headings in order
type ListSlidesCommand struct{}

// NewListSlidesCommand creates a new ListSlidesCommand
func NewListSlidesCommand() *ListSlidesCommand {
	return &ListSlidesCommand{}
}

// Execute runs the list slides command
func (c *ListSlidesCommand) Execute(ctx context.Context) ([]string, error) {
	headings := make([]string, 0, domain.TotalSlides)
	for i := range domain.TotalSlides {
		headings = append(headings, domain.SlideAt(i).Heading())
	}
	return headings, nil
}
