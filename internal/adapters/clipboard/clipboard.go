// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"journeydeck/internal/ports"
)

// ErrUnavailable is returned when no clipboard utility is installed
var ErrUnavailable = errors.New("system clipboard unavailable")

// Clipboard implements ports.Clipboard with atotto/clipboard
type Clipboard struct{}

var _ ports.Clipboard = Clipboard{}

// New returns the system clipboard
func New() Clipboard {
	return Clipboard{}
}

// Copy writes text to the clipboard
func (Clipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// IsAvailable reports whether a clipboard utility was found
func (Clipboard) IsAvailable() bool {
	return !clipboard.Unsupported
}
