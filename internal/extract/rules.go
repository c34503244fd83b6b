package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/htmltext"
)

// lineRule pairs a predicate over a lowercased line with the assignment to
// perform when it matches.
type lineRule struct {
	match  func(lowered string) bool
	assign func(line string)
}

// classifyLines assigns each line to the first rule that matches it and
// returns the lines no rule claimed, in order. Rule order is the priority
// order: a line matching several rules goes to the earliest one.
func classifyLines(lines []string, rules []lineRule) []string {
	var rest []string
	for _, line := range lines {
		lowered := strings.ToLower(line)
		claimed := false
		for _, r := range rules {
			if r.match(lowered) {
				r.assign(line)
				claimed = true
				break
			}
		}
		if !claimed {
			rest = append(rest, line)
		}
	}
	return rest
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func containsAll(s string, needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(s, n) {
			return false
		}
	}
	return true
}

// nodeLines returns the normalized text lines of a selection's inner HTML,
// preserving <br>-based line structure.
func nodeLines(sel *goquery.Selection) []string {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	raw, err := goquery.OuterHtml(sel)
	if err != nil {
		return htmltext.Lines(sel.Text())
	}
	return htmltext.Lines(raw)
}

// followingText harvests the normalized text of the anchor's next sibling,
// falling back to the parent's next sibling. Returns "" when neither holds
// any text.
func followingText(anchor *goquery.Selection) string {
	for _, cand := range []*goquery.Selection{anchor.Next(), anchor.Parent().Next()} {
		if cand.Length() == 0 {
			continue
		}
		if lines := nodeLines(cand); len(lines) > 0 {
			return strings.Join(lines, "\n")
		}
	}
	return ""
}

// joinOpt joins lines with a single space and returns nil for an empty
// result, so unclassified free text maps cleanly onto optional fields.
func joinOpt(lines []string) *string {
	joined := strings.TrimSpace(strings.Join(lines, " "))
	if joined == "" {
		return nil
	}
	return &joined
}
