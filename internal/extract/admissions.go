package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/htmltext"
)

// sectionMarker detects the heading line of one roman-numeral admissions
// section by keyword co-occurrence.
type sectionMarker struct {
	match  func(lowered string) bool
	assign func(rec *content.Admissions, text string)
}

var admissionsMarkers = []sectionMarker{
	{
		match: func(l string) bool {
			return strings.Contains(l, "new admission") &&
				containsAny(l, "closed", "open")
		},
		assign: func(rec *content.Admissions, text string) { rec.NewAdmissions = content.String(text) },
	},
	{
		match: func(l string) bool {
			return containsAny(l, "waitlist", "waiting list")
		},
		assign: func(rec *content.Admissions, text string) { rec.Waitlist = content.String(text) },
	},
	{
		match: func(l string) bool {
			return strings.Contains(l, "document") && containsAny(l, "required", "needed")
		},
		assign: func(rec *content.Admissions, text string) { rec.Documents = content.String(text) },
	},
	{
		match: func(l string) bool {
			return strings.Contains(l, "withdrawal")
		},
		assign: func(rec *content.Admissions, text string) { rec.Withdrawal = content.String(text) },
	},
}

// Regex fallback for pages where the marker headings were reworded. Each
// expression anchors on a distinctive opening phrase; the section runs from
// that phrase to the nearest following phrase of another section, or end of
// text.
var admissionsPatterns = []struct {
	re     *regexp.Regexp
	assign func(rec *content.Admissions, text string)
}{
	{
		re:     regexp.MustCompile(`(?i)\bnew admissions?\b`),
		assign: func(rec *content.Admissions, text string) { rec.NewAdmissions = content.String(text) },
	},
	{
		re:     regexp.MustCompile(`(?i)\bwait(?:list|ing list)\b`),
		assign: func(rec *content.Admissions, text string) { rec.Waitlist = content.String(text) },
	},
	{
		re:     regexp.MustCompile(`(?i)\bdocuments?\s+(?:required|needed)\b`),
		assign: func(rec *content.Admissions, text string) { rec.Documents = content.String(text) },
	},
	{
		re:     regexp.MustCompile(`(?i)\bwithdrawal\b`),
		assign: func(rec *content.Admissions, text string) { rec.Withdrawal = content.String(text) },
	},
}

// Admissions extracts the admissions page. The primary pass splits the
// normalized page text on roman-numeral section markers; the regex fallback
// runs only when the marker pass found zero sections. Partial marker results
// are accepted as-is.
func Admissions(doc *goquery.Document, base string, now time.Time) (content.Admissions, error) {
	rec := content.Admissions{FetchedAt: now}

	body, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		body = doc.Text()
	}
	lines := htmltext.Lines(body)

	if markerSections(lines, &rec) == 0 {
		regexSections(strings.Join(lines, "\n"), &rec)
	}
	return rec, nil
}

// markerSections assigns each detected section the lines between its marker
// and the next marker, and returns how many sections were found.
func markerSections(lines []string, rec *content.Admissions) int {
	type hit struct {
		line   int
		marker sectionMarker
	}
	var hits []hit
	used := make(map[int]bool)

	for i, line := range lines {
		lowered := strings.ToLower(line)
		for m, marker := range admissionsMarkers {
			if used[m] || !marker.match(lowered) {
				continue
			}
			used[m] = true
			hits = append(hits, hit{line: i, marker: marker})
			break
		}
	}

	for h, cur := range hits {
		end := len(lines)
		if h+1 < len(hits) {
			end = hits[h+1].line
		}
		section := strings.TrimSpace(strings.Join(lines[cur.line+1:end], " "))
		if section == "" {
			// Marker line with no body: keep the marker text itself so the
			// section is still reported as present.
			section = lines[cur.line]
		}
		cur.marker.assign(rec, section)
	}
	return len(hits)
}

// regexSections applies the fallback patterns over the whole normalized text.
func regexSections(text string, rec *content.Admissions) {
	starts := make([]int, len(admissionsPatterns))
	for i, p := range admissionsPatterns {
		starts[i] = -1
		if loc := p.re.FindStringIndex(text); loc != nil {
			starts[i] = loc[0]
		}
	}

	for i, p := range admissionsPatterns {
		if starts[i] < 0 {
			continue
		}
		end := len(text)
		for j, other := range starts {
			if j != i && other > starts[i] && other < end {
				end = other
			}
		}
		section := strings.TrimSpace(text[starts[i]:end])
		if section != "" {
			p.assign(rec, strings.Join(strings.Fields(section), " "))
		}
	}
}
