package webmark

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in a composed markdown document.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var (
	headingPattern = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	fencePattern   = regexp.MustCompile("(?s)```.*?```")
)

// ExtractSections returns the heading outline (H1-H6) of a markdown
// document with URL-safe anchors; duplicate anchors get numeric suffixes.
// Fenced code blocks are ignored so # characters in code never register
// as headings.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	matches := headingPattern.FindAllStringSubmatch(fencePattern.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	anchorCounts := make(map[string]int)

	for _, match := range matches {
		title := strings.TrimSpace(match[2])
		anchor := anchorFor(title)
		if n, ok := anchorCounts[anchor]; ok {
			anchorCounts[anchor] = n + 1
			anchor = anchor + "-" + strconv.Itoa(n)
		} else {
			anchorCounts[anchor] = 1
		}

		sections = append(sections, Section{
			Level:  len(match[1]),
			Title:  title,
			Anchor: anchor,
		})
	}

	return sections
}

// anchorFor creates a URL-safe anchor from a heading title: lowercase,
// spaces collapsed to single hyphens, everything else dropped.
func anchorFor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			prevHyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
