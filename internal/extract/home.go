package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/locate"
)

// Home extracts the home page: thought of the day, the upcoming-events list,
// and the carousel's content images.
func Home(doc *goquery.Document, base string, now time.Time) (content.Home, error) {
	rec := content.Home{FetchedAt: now}

	if thought := thoughtOfTheDay(doc); thought != "" {
		rec.Thought = content.String(thought)
	}
	rec.UpcomingEvents = upcomingEvents(doc)
	rec.CarouselImages = carouselImages(doc, base)

	return rec, nil
}

// thoughtOfTheDay anchors on the "thought of the day" heading and harvests
// the text that follows it. The quote is joined onto one line.
func thoughtOfTheDay(doc *goquery.Document) string {
	anchor := locate.Heading(doc, "thought of the day")
	if anchor == nil {
		anchor = locate.ByKeyword(doc, func(lowered string) bool {
			return strings.Contains(lowered, "thought of the day")
		})
	}
	if anchor == nil {
		return ""
	}
	text := followingText(anchor)
	if text == "" {
		// Some revisions of the page keep the quote inside the anchor cell,
		// after the heading line.
		lines := nodeLines(anchor)
		for i, line := range lines {
			if strings.Contains(strings.ToLower(line), "thought of the day") {
				text = strings.Join(lines[i+1:], "\n")
				break
			}
		}
	}
	return strings.Join(strings.Fields(text), " ")
}

// upcomingEvents harvests the list items following the "upcoming events"
// heading, falling back to the heading's sibling text lines.
func upcomingEvents(doc *goquery.Document) []string {
	anchor := locate.Heading(doc, "upcoming events")
	if anchor == nil {
		return nil
	}

	var items []string
	if list := anchor.NextAllFiltered("ul, ol").First(); list.Length() > 0 {
		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			items = append(items, nodeLines(li)...)
		})
		return items
	}

	if text := followingText(anchor); text != "" {
		items = strings.Split(text, "\n")
	}
	return items
}

// carouselImages collects deduplicated content images from carousel or
// slider containers.
func carouselImages(doc *goquery.Document, base string) []string {
	var urls []string
	seen := make(map[string]bool)

	doc.Find(`div[class*="carousel"] img, div[class*="slider"] img, div[class*="slideshow"] img`).
		Each(func(_ int, img *goquery.Selection) {
			src := locate.ImageSrc(img, base)
			if src == "" || !locate.IsContentImage(img, src) {
				return
			}
			key := locate.StripTrackingParams(src)
			if seen[key] {
				return
			}
			seen[key] = true
			urls = append(urls, src)
		})
	return urls
}
