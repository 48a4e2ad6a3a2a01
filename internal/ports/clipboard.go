package ports

// Clipboard defines the interface for copying text to the system clipboard
type Clipboard interface {
	Copy(text string) error

	// IsAvailable returns false when no clipboard utility is installed
	IsAvailable() bool
}
