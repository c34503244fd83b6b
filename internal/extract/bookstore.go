package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/locate"
)

// Bookstore extracts the bookstore page: the introductory text under the
// bookstore heading plus item cards located by content-image proximity.
func Bookstore(doc *goquery.Document, base string, now time.Time) (content.Bookstore, error) {
	rec := content.Bookstore{FetchedAt: now}

	if anchor := locate.Heading(doc, "bookstore"); anchor != nil {
		if text := followingText(anchor); text != "" {
			rec.Intro = content.String(strings.Join(strings.Fields(text), " "))
		}
	}
	rec.Items = imageProximityCards(doc, base)

	return rec, nil
}
