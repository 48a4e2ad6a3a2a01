package ports

// LinkOpener defines the interface for opening a URL in the user's browser
type LinkOpener interface {
	Open(url string) error
}
