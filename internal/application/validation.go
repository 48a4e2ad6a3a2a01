package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateSlideNumber checks a one-based slide number against the deck
func ValidateSlideNumber(number int) error {
	if number < 1 || number > TotalSlides {
		return &SlideError{Number: number, Total: TotalSlides}
	}
	return nil
}
