package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrUnknownJourney  = errors.New("unknown journey")
	ErrUnknownTask     = errors.New("unknown task")
	ErrSlideOutOfRange = errors.New("slide out of range")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseError reports an input value that does not name a known action,
// journey or task
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SlideError reports a slide number outside the deck
type SlideError struct {
	Number int
	Total  int
}

func (e *SlideError) Error() string {
	return fmt.Sprintf("slide %d: must be between 1 and %d", e.Number, e.Total)
}

func (e *SlideError) Is(target error) bool {
	return target == ErrSlideOutOfRange
}
