// Package markdown renders slide markdown for the terminal using glamour.
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"journeydeck/internal/ports"
)

const minWidth = 20

// Renderer implements ports.MarkdownRenderer. The underlying glamour
// renderer is rebuilt lazily whenever the width changes.
type Renderer struct {
	mu    sync.Mutex
	style string
	width int
	term  *glamour.TermRenderer
}

var _ ports.MarkdownRenderer = (*Renderer)(nil)

// NewRenderer creates a renderer for a glamour standard style
func NewRenderer(style string, width int) *Renderer {
	if style == "" {
		style = "dark"
	}
	return &Renderer{style: style, width: max(width, minWidth)}
}

// SetWidth changes the word wrap width used by later renders
func (r *Renderer) SetWidth(width int) {
	width = max(width, minWidth)

	r.mu.Lock()
	defer r.mu.Unlock()
	if width != r.width {
		r.width = width
		r.term = nil
	}
}

// Width returns the current word wrap width
func (r *Renderer) Width() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width
}

// Render converts markdown to styled terminal output
func (r *Renderer) Render(md string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.term == nil {
		term, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(r.width),
		)
		if err != nil {
			return "", fmt.Errorf("create markdown renderer: %w", err)
		}
		r.term = term
	}

	out, err := r.term.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
