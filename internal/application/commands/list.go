package commands

import (
	"context"

	"journeydeck/internal/application"
	"journeydeck/internal/domain"
)

// JourneySummary describes one journey card
type JourneySummary struct {
	Journey    domain.Journey
	Name       string
	Title      string
	Tagline    string
	Steps      int
	PainPoints int
	Solutions  int
}

// ListJourneysCommand lists every journey with its step and note counts
type ListJourneysCommand struct{}

// NewListJourneysCommand creates a new ListJourneysCommand
func NewListJourneysCommand() *ListJourneysCommand {
	return &ListJourneysCommand{}
}

// Execute runs the list journeys command
func (c *ListJourneysCommand) Execute(ctx context.Context) ([]JourneySummary, error) {
	var summaries []JourneySummary
	for _, j := range domain.Journeys() {
		summary := JourneySummary{
			Journey: j,
			Name:    j.String(),
			Title:   j.Title(),
			Tagline: j.Tagline(),
		}
		for _, step := range domain.Steps(j) {
			summary.Steps++
			summary.PainPoints += len(step.PainPoints)
			summary.Solutions += len(step.Solutions)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// JourneyView is a journey revealed up to some step
type JourneyView struct {
	Journey  domain.Journey
	Title    string
	Steps    []domain.VisibleStep
	Revealed int
	Total    int
}

// ShowJourneyCommand reveals a journey's steps the same way the flowchart
// does: one at a time from the first step.
type ShowJourneyCommand struct {
	JourneyName string
	Upto        int // number of steps to reveal; 0 reveals all
}

// NewShowJourneyCommand creates a new ShowJourneyCommand
func NewShowJourneyCommand(journeyName string, upto int) *ShowJourneyCommand {
	return &ShowJourneyCommand{
		JourneyName: journeyName,
		Upto:        upto,
	}
}

// Execute runs the show journey command
func (c *ShowJourneyCommand) Execute(ctx context.Context) (*JourneyView, error) {
	if err := application.ValidateRequired("journey", c.JourneyName); err != nil {
		return nil, err
	}
	j, err := application.ParseJourney(c.JourneyName)
	if err != nil {
		return nil, err
	}

	r := domain.NewRevealer(domain.Steps(j))
	for c.Upto <= 0 || r.Revealed() < c.Upto {
		if !r.Next() {
			break
		}
	}

	return &JourneyView{
		Journey:  j,
		Title:    j.Title(),
		Steps:    r.Visible(),
		Revealed: r.Revealed(),
		Total:    r.Total(),
	}, nil
}
