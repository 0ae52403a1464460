// Package analyze provides web page analysis orchestration. It
// coordinates URL validation, rendering, content extraction, and
// markdown composition, and folds every failure into the report
// envelope so callers branch on a flag instead of handling errors.
package analyze

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/webmark"
)

// MinArticleChars is the rune count the primary article extractor must
// produce before its result is trusted; shorter output falls back to
// the secondary extractor.
const MinArticleChars = 50

// Analyzer orchestrates the analysis of single web pages.
type Analyzer struct {
	Fetcher   webmark.Fetcher
	Extractor webmark.Extractor

	// Article-mode collaborators. Articles is consulted first; Fallback
	// takes over when Articles errors or yields fewer than
	// MinArticleChars runes of content HTML.
	Articles  webmark.ArticleExtractor
	Fallback  webmark.ArticleExtractor
	Converter webmark.Converter

	// Now returns the current time. Defaults to time.Now when nil.
	Now func() time.Time
}

// Analyze converts one URL into a markdown report. It never returns an
// error: invalid input short-circuits before any network activity, and
// failures of any later stage come back inside the report with Success
// false and the URL named in the message.
func (a *Analyzer) Analyze(ctx context.Context, rawURL, mode string) (report *webmark.Report) {
	url := rawURL
	defer func() {
		if r := recover(); r != nil {
			report = failure(url, fmt.Errorf("%v", r))
		}
	}()

	if !webmark.ValidURL(rawURL) {
		return &webmark.Report{Error: "Invalid URL format"}
	}
	url = webmark.NormalizeURL(rawURL)

	if mode == "" {
		mode = webmark.ModeDigest
	}
	if mode != webmark.ModeDigest && mode != webmark.ModeArticle {
		return &webmark.Report{Error: fmt.Sprintf("Invalid analysis mode %q", mode)}
	}

	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return failure(url, err)
	}

	var title, markdown string
	switch mode {
	case webmark.ModeArticle:
		title, markdown, err = a.analyzeArticle(html)
	default:
		title, markdown, err = a.analyzeDigest(html)
	}
	if err != nil {
		return failure(url, err)
	}

	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	return &webmark.Report{
		Success: true,
		Result: &webmark.Analysis{
			URL:           url,
			Title:         title,
			Mode:          mode,
			Markdown:      markdown,
			ContentLength: utf8.RuneCountInString(markdown),
			AnalyzedAt:    now().UTC(),
		},
	}
}

// analyzeDigest runs the ranked-element pipeline.
func (a *Analyzer) analyzeDigest(html string) (string, string, error) {
	extraction, err := a.Extractor.Extract(html)
	if err != nil {
		return "", "", err
	}
	return extraction.Title, webmark.ComposeMarkdown(extraction), nil
}

// analyzeArticle isolates the main article and converts it wholesale.
func (a *Analyzer) analyzeArticle(html string) (string, string, error) {
	article, err := a.extractArticle(html)
	if err != nil {
		return "", "", err
	}

	markdown, err := a.Converter.Convert(article.ContentHTML)
	if err != nil {
		return "", "", err
	}

	return article.Title, markdown, nil
}

// extractArticle runs the primary article extractor and falls back when
// it errors or returns less than MinArticleChars runes of content. A
// failing fallback never masks a usable primary result.
func (a *Analyzer) extractArticle(html string) (*webmark.Article, error) {
	article, err := a.Articles.ExtractArticle(html)
	if err == nil && utf8.RuneCountInString(article.ContentHTML) >= MinArticleChars {
		return article, nil
	}

	if a.Fallback == nil {
		if err != nil {
			return nil, err
		}
		return article, nil
	}

	fallback, ferr := a.Fallback.ExtractArticle(html)
	if ferr != nil {
		if err != nil {
			return nil, err
		}
		return article, nil
	}
	return fallback, nil
}

// failure wraps a stage error into a failed report for the given URL.
func failure(url string, err error) *webmark.Report {
	return &webmark.Report{Error: fmt.Sprintf("Error processing URL %s: %v", url, err)}
}
