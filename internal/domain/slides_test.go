package domain

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestSlideNavigator_Bounds(t *testing.T) {
	n := NewSlideNavigator()

	if n.PrevSlide() {
		t.Error("PrevSlide() on the first slide should be a no-op")
	}
	if n.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", n.Index())
	}

	for range 9 {
		if !n.NextSlide() {
			t.Fatalf("NextSlide() returned false at %d", n.Index())
		}
	}
	if n.Index() != 9 {
		t.Fatalf("Index() = %d after 9 NextSlide, want 9", n.Index())
	}

	if n.NextSlide() {
		t.Error("NextSlide() on the last slide should be a no-op")
	}
	if n.Index() != 9 || n.Position() != 10 {
		t.Errorf("Index/Position = %d/%d, want 9/10", n.Index(), n.Position())
	}
}

func TestSlideNavigator_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		i := rapid.IntRange(1, TotalSlides-2).Draw(t, "index")
		n := NewSlideNavigator()
		for range i {
			n.NextSlide()
		}

		n.NextSlide()
		n.PrevSlide()

		if n.Index() != i {
			t.Fatalf("round trip from %d ended at %d", i, n.Index())
		}
	})
}

func TestSlideNavigator_StaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := NewSlideNavigator()
		moves := rapid.SliceOf(rapid.Bool()).Draw(t, "moves")
		for _, forward := range moves {
			if forward {
				n.NextSlide()
			} else {
				n.PrevSlide()
			}
			if n.Index() < 0 || n.Index() >= TotalSlides {
				t.Fatalf("index %d out of range", n.Index())
			}
		}
	})
}

func TestSlideAt_EveryPositionHasContent(t *testing.T) {
	for i := range TotalSlides {
		s := SlideAt(i)
		if s.Heading() == "" {
			t.Errorf("slide %d has no heading", i+1)
		}
		if !strings.HasPrefix(s.Markdown(), "# ") {
			t.Errorf("slide %d markdown should start with a heading", i+1)
		}
	}
}

func TestSlide_Heading(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "WHY are signups important?"},
		{3, "Target 1: Articles"},
		{9, "Mission Accomplished! 🎉"},
	}

	for _, tt := range tests {
		if got := SlideAt(tt.index).Heading(); got != tt.want {
			t.Errorf("SlideAt(%d).Heading() = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestSlide_MarkdownIncludesLinkAndImages(t *testing.T) {
	md := SlideAt(3).Markdown()

	if !strings.Contains(md, "https://medium.com/") {
		t.Error("expected article link in markdown")
	}
	if !strings.Contains(md, "/images/medium-article.png") {
		t.Error("expected image reference in markdown")
	}
}
