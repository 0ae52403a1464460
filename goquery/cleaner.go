package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// unwantedTags are removed outright, descendants included.
var unwantedTags = []string{
	"script", "style", "meta", "link", "noscript",
	"iframe", "embed", "object", "form", "input",
	"button", "select", "textarea", "nav", "footer",
	"header", "aside", "advertisement",
}

// unwantedPatterns mark an element for removal when its class or id
// contains one of these substrings, case-insensitively.
var unwantedPatterns = []string{
	"advertisement", "ads", "popup", "modal", "cookie",
	"newsletter", "subscribe", "social", "share",
	"related", "sidebar", "menu", "navigation",
}

// CleanDocument strips structural noise from the document in place.
// Denylisted tags go first, then comment nodes, then elements whose
// class or id matches a denylisted pattern. Cleaning an already clean
// document changes nothing.
func CleanDocument(doc *goquery.Document) {
	for _, tag := range unwantedTags {
		doc.Find(tag).Remove()
	}

	removeComments(doc)

	doc.Find("[class], [id]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		attrs := strings.ToLower(class + " " + id)
		for _, pattern := range unwantedPatterns {
			if strings.Contains(attrs, pattern) {
				sel.Remove()
				return
			}
		}
	})
}

func removeComments(doc *goquery.Document) {
	var comments []*html.Node
	for _, root := range doc.Nodes {
		collectComments(root, &comments)
	}
	for _, n := range comments {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

func collectComments(n *html.Node, out *[]*html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.CommentNode {
			*out = append(*out, c)
			continue
		}
		collectComments(c, out)
	}
}
