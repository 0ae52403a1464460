// Package goquery provides the DOM analysis implementation of
// webmark.Extractor. It collects special elements from the raw document,
// strips boilerplate in place, and ranks the surviving content-bearing
// elements by importance.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webmark"
)

// Ensure Extractor implements webmark.Extractor at compile time.
var _ webmark.Extractor = (*Extractor)(nil)

// Extractor distills raw page HTML into ranked content and specials.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the raw HTML and runs the full analysis. Specials and
// the page title are read from the unmodified tree before CleanDocument
// mutates it; cleaning first would delete the very images and links
// being collected.
func (e *Extractor) Extract(rawHTML string) (*webmark.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webmark.Errorf(webmark.EINVALID, "failed to parse HTML: %v", err)
	}

	specials := CollectSpecials(doc)
	title := strings.TrimSpace(doc.Find("title").First().Text())

	CleanDocument(doc)

	return &webmark.Extraction{
		Title:    title,
		Content:  RankContent(doc),
		Specials: specials,
	}, nil
}
