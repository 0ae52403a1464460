package webmark

// Converter converts HTML content to Markdown. Used by article mode,
// where the extracted main-content HTML is converted wholesale instead
// of being recomposed from ranked elements.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (markdown string, err error)
}
