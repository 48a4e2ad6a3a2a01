package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeydeck/internal/domain"
)

func TestRenderer_RendersSlide(t *testing.T) {
	r := NewRenderer("notty", 80)

	out, err := r.Render(domain.SlideAt(3).Markdown())
	require.NoError(t, err)
	assert.Contains(t, out, "Target 1: Articles")
	assert.Contains(t, out, "Read the article")
}

func TestRenderer_EveryStandardStyleBuilds(t *testing.T) {
	for _, style := range []string{"dark", "light", "notty", "ascii", "dracula"} {
		t.Run(style, func(t *testing.T) {
			out, err := NewRenderer(style, 60).Render("# Hello\n\nworld")
			require.NoError(t, err)
			assert.Contains(t, out, "world")
		})
	}
}

func TestRenderer_SetWidth(t *testing.T) {
	r := NewRenderer("", 5)
	assert.Equal(t, minWidth, r.Width(), "width is clamped to the minimum")

	r.SetWidth(120)
	assert.Equal(t, 120, r.Width())

	_, err := r.Render("text")
	require.NoError(t, err)
	r.SetWidth(120)
	assert.NotNil(t, r.term, "same width keeps the cached renderer")

	r.SetWidth(70)
	assert.Nil(t, r.term, "new width drops the cached renderer")
}
