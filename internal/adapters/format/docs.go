package format

import (
	"journeydeck/internal/application/commands"
	"journeydeck/internal/domain"
)

// JourneySummaryDoc is the encoded form of a journey card
type JourneySummaryDoc struct {
	Name       string `json:"name" yaml:"name"`
	Title      string `json:"title" yaml:"title"`
	Tagline    string `json:"tagline" yaml:"tagline"`
	Steps      int    `json:"steps" yaml:"steps"`
	PainPoints int    `json:"pain_points" yaml:"pain_points"`
	Solutions  int    `json:"solutions" yaml:"solutions"`
}

// StepDoc is the encoded form of one revealed step
type StepDoc struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	PainPoints  []string `json:"pain_points,omitempty" yaml:"pain_points,omitempty"`
	Solutions   []string `json:"solutions,omitempty" yaml:"solutions,omitempty"`
	Latest      bool     `json:"latest,omitempty" yaml:"latest,omitempty"`
}

// JourneyDoc is the encoded form of a journey revealed up to some step
type JourneyDoc struct {
	Journey  string    `json:"journey" yaml:"journey"`
	Title    string    `json:"title" yaml:"title"`
	Revealed int       `json:"revealed" yaml:"revealed"`
	Total    int       `json:"total" yaml:"total"`
	Steps    []StepDoc `json:"steps" yaml:"steps"`
}

// LinkDoc is the encoded form of a slide link
type LinkDoc struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// ImageDoc is the encoded form of a slide image
type ImageDoc struct {
	Src     string `json:"src" yaml:"src"`
	Alt     string `json:"alt" yaml:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// SlideDoc is the encoded form of one slide
type SlideDoc struct {
	Number  int        `json:"number" yaml:"number"`
	Total   int        `json:"total" yaml:"total"`
	Heading string     `json:"heading" yaml:"heading"`
	Note    string     `json:"note,omitempty" yaml:"note,omitempty"`
	Body    string     `json:"body,omitempty" yaml:"body,omitempty"`
	Bullets []string   `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	Link    *LinkDoc   `json:"link,omitempty" yaml:"link,omitempty"`
	Images  []ImageDoc `json:"images,omitempty" yaml:"images,omitempty"`
}

// SnapshotDoc is the encoded form of a session snapshot. Journey and slide
// fields appear only on their own screens.
type SnapshotDoc struct {
	Screen  string      `json:"screen" yaml:"screen"`
	Journey *JourneyDoc `json:"journey,omitempty" yaml:"journey,omitempty"`
	Slide   *SlideDoc   `json:"slide,omitempty" yaml:"slide,omitempty"`
}

// FrameDoc is one step of a played script
type FrameDoc struct {
	Step     string      `json:"step" yaml:"step"`
	Snapshot SnapshotDoc `json:"snapshot" yaml:"snapshot"`
}

// SummaryDocs converts journey summaries
func SummaryDocs(summaries []commands.JourneySummary) []JourneySummaryDoc {
	docs := make([]JourneySummaryDoc, 0, len(summaries))
	for _, s := range summaries {
		docs = append(docs, JourneySummaryDoc{
			Name:       s.Name,
			Title:      s.Title,
			Tagline:    s.Tagline,
			Steps:      s.Steps,
			PainPoints: s.PainPoints,
			Solutions:  s.Solutions,
		})
	}
	return docs
}

// StepDocs converts visible steps
func StepDocs(steps []domain.VisibleStep) []StepDoc {
	docs := make([]StepDoc, 0, len(steps))
	for _, vs := range steps {
		docs = append(docs, StepDoc{
			ID:          vs.Step.ID,
			Title:       vs.Step.Title,
			Description: vs.Step.Description,
			PainPoints:  vs.Step.PainPoints,
			Solutions:   vs.Step.Solutions,
			Latest:      vs.Latest,
		})
	}
	return docs
}

// JourneyViewDoc converts a revealed journey
func JourneyViewDoc(view *commands.JourneyView) JourneyDoc {
	return JourneyDoc{
		Journey:  view.Journey.String(),
		Title:    view.Title,
		Revealed: view.Revealed,
		Total:    view.Total,
		Steps:    StepDocs(view.Steps),
	}
}

// SlideDocFor converts a slide at a one-based position
func SlideDocFor(number int, s domain.Slide) SlideDoc {
	doc := SlideDoc{
		Number:  number,
		Total:   domain.TotalSlides,
		Heading: s.Heading(),
		Note:    s.Note,
		Body:    s.Body,
		Bullets: s.Bullets,
	}
	if s.Link != nil {
		doc.Link = &LinkDoc{Label: s.Link.Label, URL: s.Link.URL}
	}
	for _, img := range s.Images {
		doc.Images = append(doc.Images, ImageDoc{Src: img.Src, Alt: img.Alt, Caption: img.Caption})
	}
	return doc
}

// SnapshotDocFor converts a session snapshot
func SnapshotDocFor(snap domain.Snapshot) SnapshotDoc {
	doc := SnapshotDoc{Screen: snap.Screen.String()}
	switch {
	case snap.InFlowchart():
		doc.Journey = &JourneyDoc{
			Journey:  snap.Journey.String(),
			Title:    snap.Journey.Title(),
			Revealed: snap.Revealed,
			Total:    snap.TotalSteps,
			Steps:    StepDocs(snap.Steps),
		}
	case snap.InSignup():
		slide := SlideDocFor(snap.SlidePosition(), snap.Slide)
		slide.Total = snap.TotalSlides
		doc.Slide = &slide
	}
	return doc
}

// FrameDocs converts played frames
func FrameDocs(frames []commands.Frame) []FrameDoc {
	docs := make([]FrameDoc, 0, len(frames))
	for _, f := range frames {
		docs = append(docs, FrameDoc{
			Step:     f.Step.String(),
			Snapshot: SnapshotDocFor(f.Snapshot),
		})
	}
	return docs
}
