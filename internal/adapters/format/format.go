// Package format encodes journeys, slides and snapshots as JSON or YAML for
// the CLI and MCP surfaces.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"journeydeck/internal/application"
)

// Format is an output encoding
type Format int

const (
	Text Format = iota
	JSON
	YAML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "text"
	}
}

// Names lists the accepted format names
func Names() []string {
	return []string{Text.String(), JSON.String(), YAML.String()}
}

// Parse resolves a format name, case-insensitively
func Parse(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Text, &application.ValidationError{
		Field:   "output",
		Message: fmt.Sprintf("unknown format %q (want %s)", s, strings.Join(Names(), ", ")),
	}
}

// Encode writes v in the structured format f. Text has no generic encoding
// and is rejected; callers render it themselves.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %s has no structured encoding", f)
	}
}

// Marshal returns v as indented JSON
func Marshal(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data), nil
}
