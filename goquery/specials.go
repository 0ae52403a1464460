package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webmark"
)

const (
	// minLinkTextChars is the visible text length an anchor must exceed
	// to qualify as a special link.
	minLinkTextChars = 3

	// minCodeTextChars is the trimmed text length a code element must
	// exceed to qualify as a code block.
	minCodeTextChars = 10
)

// CollectSpecials gathers markdown-ready fragments from the document in
// document order: image references, qualifying links, and fenced code
// blocks. It reads the tree as delivered by the renderer, so it must run
// before CleanDocument.
func CollectSpecials(doc *goquery.Document) webmark.Specials {
	var specials webmark.Specials

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if src == "" {
			return
		}
		alt, _ := sel.Attr("alt")
		specials.Images = append(specials.Images, fmt.Sprintf("![%s](%s)", alt, src))
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) <= minLinkTextChars {
			return
		}
		specials.Links = append(specials.Links, fmt.Sprintf("[%s](%s)", text, href))
	})

	doc.Find("code, pre").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) <= minCodeTextChars {
			return
		}
		specials.CodeBlocks = append(specials.CodeBlocks, "```\n"+text+"\n```")
	})

	return specials
}
