package ports

// MarkdownRenderer turns markdown into styled terminal output
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}
