package webmark

import "strings"

// FormatAnalyses formats archived analyses as one combined markdown
// document, suitable for piping into downstream tooling. Each analysis
// gets a "## Page:" header using its title when available, falling back
// to the source URL; documents are separated by blank lines.
func FormatAnalyses(analyses []*Analysis) string {
	if len(analyses) == 0 {
		return ""
	}

	parts := make([]string, 0, len(analyses))
	for _, a := range analyses {
		header := a.Title
		if header == "" {
			header = a.URL
		}
		parts = append(parts, "## Page: "+header+"\n"+a.Markdown)
	}

	return strings.Join(parts, "\n\n")
}
