package htmltext

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	brRuns      = regexp.MustCompile(`(?i)(?:<br\s*/?\s*>\s*)+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// Normalize converts an HTML fragment into plain text: <br> runs become single
// newlines, all other tags are dropped, NBSP and zero-width spaces are
// cleaned up, and the result is one trimmed non-empty line per newline.
// Malformed input degrades to best-effort text; Normalize never fails.
// Normalizing already-normalized text returns it unchanged.
func Normalize(raw string) string {
	s := brRuns.ReplaceAllString(raw, "\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err == nil {
		doc.Find("script, style, noscript").Remove()
		s = doc.Text()
	} else {
		s = tagPattern.ReplaceAllString(s, "")
	}

	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\u200b", "")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := newlineRuns.Split(s, -1)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Lines normalizes raw HTML and returns the resulting non-empty lines.
func Lines(raw string) []string {
	text := Normalize(raw)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
