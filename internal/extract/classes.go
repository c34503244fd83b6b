package extract

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/locate"
)

// ErrNoClassSections marks a class-listing page where none of the required
// sections could be parsed. Unlike a missing anchor elsewhere, this is a
// structural failure for the whole fetch attempt.
var ErrNoClassSections = errors.New("class listings: no parseable sections")

var schedulePattern = regexp.MustCompile(
	`(?i)\b(?:mon|tues|wednes|thurs|fri|satur|sun)day\b|\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`)

// Classes extracts the curricular, music, and camp class listings. A page
// where all three sections are unparseable fails with ErrNoClassSections.
func Classes(doc *goquery.Document, base string, now time.Time) (content.Classes, error) {
	rec := content.Classes{
		Curricular: classSections(doc, "curricular"),
		Music:      classSections(doc, "music"),
		Camp:       classSections(doc, "camp"),
		FetchedAt:  now,
	}
	if len(rec.Curricular) == 0 && len(rec.Music) == 0 && len(rec.Camp) == 0 {
		return rec, ErrNoClassSections
	}
	return rec, nil
}

// classSections anchors on the section heading and harvests the table or
// list that follows it.
func classSections(doc *goquery.Document, keyword string) []content.ClassSection {
	anchor := locate.Heading(doc, keyword)
	if anchor == nil {
		return nil
	}

	if table := followingElement(anchor, "table"); table != nil {
		return tableClassSections(table)
	}
	if list := followingElement(anchor, "ul, ol"); list != nil {
		return listClassSections(list)
	}
	return nil
}

// followingElement finds the first matching element after the anchor, at the
// anchor's own level or its parent's.
func followingElement(anchor *goquery.Selection, selector string) *goquery.Selection {
	for _, scope := range []*goquery.Selection{anchor, anchor.Parent()} {
		if el := scope.NextAllFiltered(selector).First(); el.Length() > 0 {
			return el
		}
	}
	return nil
}

// tableClassSections reads one class per row: first cell is the name, the
// first schedule-looking cell is the schedule, everything else joins into
// the description. Header rows are skipped.
func tableClassSections(table *goquery.Selection) []content.ClassSection {
	var sections []content.ClassSection

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.Join(nodeLines(cell), " "))
		})
		if len(cells) == 0 || cells[0] == "" {
			return
		}
		if lowered := strings.ToLower(cells[0]); lowered == "class" || lowered == "name" {
			return
		}

		sec := content.ClassSection{Name: cells[0]}
		var rest []string
		for _, cell := range cells[1:] {
			if cell == "" {
				continue
			}
			if sec.Schedule == nil && schedulePattern.MatchString(cell) {
				sec.Schedule = content.String(cell)
				continue
			}
			rest = append(rest, cell)
		}
		sec.Description = joinOpt(rest)
		sections = append(sections, sec)
	})
	return sections
}

// listClassSections reads one class per list item: the first line is the
// name, a schedule-looking line is the schedule, the rest describe it.
func listClassSections(list *goquery.Selection) []content.ClassSection {
	var sections []content.ClassSection

	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		lines := nodeLines(li)
		if len(lines) == 0 {
			return
		}
		sec := content.ClassSection{Name: lines[0]}
		var rest []string
		for _, line := range lines[1:] {
			if sec.Schedule == nil && schedulePattern.MatchString(line) {
				sec.Schedule = content.String(line)
				continue
			}
			rest = append(rest, line)
		}
		sec.Description = joinOpt(rest)
		sections = append(sections, sec)
	})
	return sections
}
