package format

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"journeydeck/internal/application"
	"journeydeck/internal/application/commands"
	"journeydeck/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: Text},
		{in: "text", want: Text},
		{in: "JSON", want: JSON},
		{in: "yaml", want: YAML},
		{in: "yml", want: YAML},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				var verr *application.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "output", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_JourneyJSON(t *testing.T) {
	view, err := commands.NewShowJourneyCommand("github", 3).Execute(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, JSON, JourneyViewDoc(view)))

	var got JourneyDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "github", got.Journey)
	assert.Equal(t, 3, got.Revealed)
	assert.Equal(t, 10, got.Total)
	require.Len(t, got.Steps, 3)
	assert.True(t, got.Steps[2].Latest)
	assert.False(t, got.Steps[0].Latest)
}

func TestEncode_SlideYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, YAML, SlideDocFor(5, domain.SlideAt(4))))

	var got SlideDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 5, got.Number)
	assert.Equal(t, "Target 2: X Post", got.Heading)
	require.NotNil(t, got.Link)
	assert.Contains(t, got.Link.URL, "x.com")
}

func TestEncode_TextRejected(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, Text, struct{}{}))
}

func TestSnapshotDocFor(t *testing.T) {
	session := application.NewSession()
	for _, tok := range []string{"enter", "select-task:journey-analysis", "select-journey:lovable", "next"} {
		step, err := application.ParseStep(tok)
		require.NoError(t, err)
		_, err = session.Apply(step)
		require.NoError(t, err)
	}

	doc := SnapshotDocFor(session.Snapshot())
	assert.Equal(t, "flowchart", doc.Screen)
	require.NotNil(t, doc.Journey)
	assert.Nil(t, doc.Slide)
	assert.Equal(t, 2, doc.Journey.Revealed)
	assert.Equal(t, 8, doc.Journey.Total)

	landing := SnapshotDocFor(application.NewSession().Snapshot())
	assert.Nil(t, landing.Journey)
	assert.Nil(t, landing.Slide)

	out, err := Marshal(landing)
	require.NoError(t, err)
	assert.NotContains(t, out, "journey")
}
