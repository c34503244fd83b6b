package locate

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading returns the first h1..h6 element, in document order, whose text
// contains needle case-insensitively. Returns nil if no heading matches.
func Heading(doc *goquery.Document, needle string) *goquery.Selection {
	needle = strings.ToLower(needle)
	var found *goquery.Selection
	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), needle) {
			found = sel
			return false
		}
		return true
	})
	return found
}

// ByKeyword returns the first table-cell, paragraph, or list-item element
// whose lowercased text satisfies pred. Returns nil if none match.
func ByKeyword(doc *goquery.Document, pred func(lowered string) bool) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("td, th, p, li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if pred(strings.ToLower(sel.Text())) {
			found = sel
			return false
		}
		return true
	})
	return found
}

// ClosestAncestor walks the parent chain of sel upward and returns the first
// element with the given tag name, or nil if the chain reaches the root.
func ClosestAncestor(sel *goquery.Selection, tag string) *goquery.Selection {
	anc := sel.ParentsFiltered(tag).First()
	if anc.Length() == 0 {
		return nil
	}
	return anc
}
