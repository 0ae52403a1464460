package goquery

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webmark"
	"golang.org/x/net/html"
)

// RankContent scores every content-bearing element in the cleaned
// document and returns the qualifying ones ordered by descending score.
// The scan runs tag by tag in the fixed content order, and the sort is
// stable, so equal scores keep that encounter order rather than raw
// document order.
func RankContent(doc *goquery.Document) []webmark.RankedElement {
	var ranked []webmark.RankedElement

	for _, tag := range webmark.ContentTags() {
		doc.Find(tag).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			score := scoreElement(tag, text, sel)
			if score <= webmark.MinimumScore {
				return
			}
			ranked = append(ranked, webmark.RankedElement{Tag: tag, Text: text, Score: score})
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// scoreElement applies the importance formula: the base tag weight is
// multiplied by the text length boost, every ancestor adds its scaled
// container weight, and the short text penalty multiplies the total
// last.
func scoreElement(tag, text string, sel *goquery.Selection) float64 {
	score := webmark.TagWeight(tag)

	textLen := utf8.RuneCountInString(text)
	if textLen > webmark.LongTextChars {
		score *= webmark.LongTextBoost
	} else if textLen > webmark.MediumTextChars {
		score *= webmark.MediumTextBoost
	}

	if len(sel.Nodes) > 0 {
		for n := sel.Nodes[0].Parent; n != nil; n = n.Parent {
			if n.Type != html.ElementNode {
				continue
			}
			score += webmark.ContainerWeight(n.Data) * webmark.AncestorBoostRatio
		}
	}

	if textLen < webmark.ShortTextChars {
		score *= webmark.ShortTextPenalty
	}

	return score
}
