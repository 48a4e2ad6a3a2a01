package domain

import (
	"testing"
)

func TestSteps_Counts(t *testing.T) {
	tests := []struct {
		journey Journey
		want    int
	}{
		{JourneyTemplate, 10},
		{JourneyGitHub, 10},
		{JourneyLovable, 8},
		{JourneyLocal, 11},
	}

	for _, tt := range tests {
		t.Run(tt.journey.String(), func(t *testing.T) {
			if got := len(Steps(tt.journey)); got != tt.want {
				t.Errorf("len(Steps(%s)) = %d, want %d", tt.journey, got, tt.want)
			}
		})
	}
}

func TestSteps_IDsMatchPosition(t *testing.T) {
	for _, j := range Journeys() {
		for i, step := range Steps(j) {
			if step.ID != i+1 {
				t.Errorf("%s step at index %d has ID %d, want %d", j, i, step.ID, i+1)
			}
			if step.Title == "" {
				t.Errorf("%s step %d has empty title", j, step.ID)
			}
			if step.Description == "" {
				t.Errorf("%s step %d has empty description", j, step.ID)
			}
		}
	}
}

func TestSteps_NotesAreIndependentLists(t *testing.T) {
	// GitHub step 5 has two pain points and three solutions
	step := Steps(JourneyGitHub)[4]
	if len(step.PainPoints) != 2 {
		t.Errorf("expected 2 pain points, got %d", len(step.PainPoints))
	}
	if len(step.Solutions) != 3 {
		t.Errorf("expected 3 solutions, got %d", len(step.Solutions))
	}
}

func TestJourneyStep_HasNotes(t *testing.T) {
	tests := []struct {
		name string
		step JourneyStep
		want bool
	}{
		{"no notes", JourneyStep{ID: 1, Title: "Signup"}, false},
		{"pain points only", JourneyStep{PainPoints: []string{"slow"}}, true},
		{"solutions only", JourneyStep{Solutions: []string{"faster"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.step.HasNotes(); got != tt.want {
				t.Errorf("HasNotes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseJourney(t *testing.T) {
	for _, j := range Journeys() {
		got, ok := ParseJourney(j.String())
		if !ok || got != j {
			t.Errorf("ParseJourney(%q) = %v, %v", j.String(), got, ok)
		}
	}

	if _, ok := ParseJourney("bitbucket"); ok {
		t.Error("expected unknown journey to fail")
	}
}

func TestJourney_Titles(t *testing.T) {
	want := map[Journey]string{
		JourneyTemplate: "Template Deployment",
		JourneyGitHub:   "GitHub Repository",
		JourneyLovable:  "Website Builders",
		JourneyLocal:    "Local Build",
	}
	for j, title := range want {
		if j.Title() != title {
			t.Errorf("%s.Title() = %q, want %q", j, j.Title(), title)
		}
		if j.Tagline() == "" {
			t.Errorf("%s has empty tagline", j)
		}
	}
}

func TestParseTask(t *testing.T) {
	got, ok := ParseTask("growth-strategy")
	if !ok || got != TaskGrowthStrategy {
		t.Errorf("ParseTask(growth-strategy) = %v, %v", got, ok)
	}
	if _, ok := ParseTask("hiring"); ok {
		t.Error("expected unknown task to fail")
	}
}
