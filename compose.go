package webmark

import (
	"strings"
	"unicode/utf8"
)

// Composition limits.
const (
	// MinComposeChars is the minimum rune count for ranked text to be
	// emitted by the composer.
	MinComposeChars = 10

	// MaxImages caps the Images section.
	MaxImages = 5

	// MaxLinks caps the Important Links section after deduplication.
	MaxLinks = 10
)

// ComposeMarkdown renders an extraction into the final markdown document.
// Ranked elements are emitted in order with exact-text deduplication and a
// blank line after each block; text under MinComposeChars runes is
// skipped. The specials sections follow: all code blocks, the first
// MaxImages images, and the first MaxLinks links after dedup in
// first-seen order.
func ComposeMarkdown(ex *Extraction) string {
	var parts []string
	seen := make(map[string]struct{})

	for _, el := range ex.Content {
		if _, dup := seen[el.Text]; dup || utf8.RuneCountInString(el.Text) < MinComposeChars {
			continue
		}
		seen[el.Text] = struct{}{}

		parts = append(parts, renderElement(el.Tag, el.Text), "")
	}

	if len(ex.Specials.CodeBlocks) > 0 {
		parts = append(parts, "## Code Blocks")
		parts = append(parts, ex.Specials.CodeBlocks...)
		parts = append(parts, "")
	}

	if len(ex.Specials.Images) > 0 {
		parts = append(parts, "## Images")
		images := ex.Specials.Images
		if len(images) > MaxImages {
			images = images[:MaxImages]
		}
		parts = append(parts, images...)
		parts = append(parts, "")
	}

	if len(ex.Specials.Links) > 0 {
		parts = append(parts, "## Important Links")
		links := uniqueStrings(ex.Specials.Links)
		if len(links) > MaxLinks {
			links = links[:MaxLinks]
		}
		parts = append(parts, links...)
	}

	return strings.Join(parts, "\n")
}

// renderElement renders one ranked element as a markdown block.
func renderElement(tag, text string) string {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return strings.Repeat("#", int(tag[1]-'0')) + " " + text
	}
	switch tag {
	case "li":
		return "- " + text
	case "blockquote":
		return "> " + text
	case "table":
		return "**Table:** " + text
	default:
		// Paragraphs and anything else render as plain text.
		return text
	}
}

// uniqueStrings returns the unique items preserving first-seen order.
func uniqueStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
