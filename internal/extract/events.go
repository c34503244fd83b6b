package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/htmltext"
	"github.com/pfrederiksen/templepages/internal/locate"
)

// cardStrategy is one way of pulling event cards out of a page. Strategies
// run in order and the first non-empty result wins, so additional fallbacks
// can be appended without touching the existing ones.
type cardStrategy func(doc *goquery.Document, base string) []content.EventCard

var cardStrategies = []cardStrategy{tableRowCards, imageProximityCards}

// Events extracts the event announcements page. Structured table rows are
// tried first; the generic image-proximity walk only runs when no row
// produced a card.
func Events(doc *goquery.Document, base string, now time.Time) (content.Events, error) {
	rec := content.Events{FetchedAt: now}
	for _, strategy := range cardStrategies {
		if cards := strategy(doc, base); len(cards) > 0 {
			rec.Cards = cards
			break
		}
	}
	return rec, nil
}

// tableRowCards scans table rows, requiring at least one accepted content
// image per row. The first non-image cell with enough text supplies the
// title and description. Rows whose image duplicates an earlier row (after
// tracking-parameter stripping) are skipped.
func tableRowCards(doc *goquery.Document, base string) []content.EventCard {
	var cards []content.EventCard
	seen := make(map[string]bool)

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		imgURL := firstContentImage(row, base)
		if imgURL == "" {
			return
		}
		key := locate.StripTrackingParams(imgURL)
		if seen[key] {
			return
		}

		title, desc := rowText(row)
		if title == "" {
			return
		}

		seen[key] = true
		cards = append(cards, content.EventCard{
			Title:       title,
			ImageURL:    imgURL,
			Description: desc,
		})
	})
	return cards
}

// firstContentImage returns the resolved URL of the first image in sel that
// passes the content-image filter, or "".
func firstContentImage(sel *goquery.Selection, base string) string {
	found := ""
	sel.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := locate.ImageSrc(img, base)
		if src == "" || !locate.IsContentImage(img, src) {
			return true
		}
		found = src
		return false
	})
	return found
}

// rowText finds the first cell without an image whose normalized text is at
// least 10 characters and splits it into title and description. Bold text
// supplies the title when present; otherwise the first line does.
func rowText(row *goquery.Selection) (string, *string) {
	title := ""
	var desc *string

	row.Find("td, th").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if cell.Find("img").Length() > 0 {
			return true
		}
		lines := nodeLines(cell)
		if len(strings.Join(lines, " ")) < 10 {
			return true
		}

		if bold := htmltext.Normalize(cell.Find("b, strong").First().Text()); bold != "" {
			title = strings.Split(bold, "\n")[0]
			desc = joinOpt(removeLine(lines, title))
		} else {
			title = lines[0]
			desc = joinOpt(lines[1:])
		}
		return false
	})
	return title, desc
}

// removeLine drops the first occurrence of needle from lines.
func removeLine(lines []string, needle string) []string {
	out := make([]string, 0, len(lines))
	removed := false
	for _, line := range lines {
		if !removed && line == needle {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return out
}

// imageProximityCards is the generic fallback: every accepted content image
// becomes a card if, within 5 ancestor levels, a div, table cell, or section
// holds at least 20 characters of text. The first applicable container wins
// per image.
func imageProximityCards(doc *goquery.Document, base string) []content.EventCard {
	var cards []content.EventCard
	seen := make(map[string]bool)

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := locate.ImageSrc(img, base)
		if src == "" || !locate.IsContentImage(img, src) {
			return
		}
		key := locate.StripTrackingParams(src)
		if seen[key] {
			return
		}

		node := img.Parent()
		for depth := 0; depth < 5 && node.Length() > 0; depth++ {
			if isCardContainer(node) {
				lines := nodeLines(node)
				if len(strings.Join(lines, " ")) >= 20 {
					seen[key] = true
					cards = append(cards, content.EventCard{
						Title:       lines[0],
						ImageURL:    src,
						Description: joinOpt(lines[1:]),
					})
					return
				}
			}
			node = node.Parent()
		}
	})
	return cards
}

func isCardContainer(sel *goquery.Selection) bool {
	switch goquery.NodeName(sel) {
	case "div", "td", "th", "section":
		return true
	}
	return false
}
