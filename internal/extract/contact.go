package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/htmltext"
	"github.com/pfrederiksen/templepages/internal/locate"
	"github.com/pfrederiksen/templepages/internal/mailcloak"
)

var (
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	// cdn-cgi style protected address: the hex payload after the fragment.
	cloakHrefPattern = regexp.MustCompile(`email-protection#([0-9a-fA-F]+)`)
)

// Contact extracts the contact page: phone, postal address, contact-form
// links, and a deduplicated email list including decoded protected
// addresses.
func Contact(doc *goquery.Document, base string, now time.Time) (content.Contact, error) {
	rec := content.Contact{FetchedAt: now}

	body, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		body = doc.Text()
	}
	text := htmltext.Normalize(body)

	if phone := phonePattern.FindString(text); phone != "" {
		rec.Phone = content.String(phone)
	}
	if addr := contactAddress(doc); addr != "" {
		rec.Address = content.String(addr)
	}
	rec.FormLinks = formLinks(doc, base)
	rec.Emails = contactEmails(doc, text)

	return rec, nil
}

// contactAddress harvests the first keyword-bearing address cell. If the
// cell holds nothing beyond the keyword line, the next cell in the row is
// harvested instead.
func contactAddress(doc *goquery.Document) string {
	cell := locate.ByKeyword(doc, func(lowered string) bool {
		return strings.Contains(lowered, "address") || strings.Contains(lowered, "located at")
	})
	if cell == nil {
		return ""
	}

	var kept []string
	for _, line := range nodeLines(cell) {
		lowered := strings.ToLower(line)
		if lowered == "address" || lowered == "address:" || lowered == "mailing address" {
			continue
		}
		kept = append(kept, strings.TrimSpace(strings.TrimPrefix(line, "Address:")))
	}
	if joined := strings.TrimSpace(strings.Join(kept, ", ")); joined != "" {
		return joined
	}

	if next := cell.Next(); next.Length() > 0 {
		return strings.Join(nodeLines(next), ", ")
	}
	return ""
}

// formLinks collects deduplicated links to contact or registration forms.
func formLinks(doc *goquery.Document, base string) []string {
	var links []string
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		resolved := locate.ResolveURL(a.AttrOr("href", ""), base)
		if resolved == "" {
			return
		}
		lowered := strings.ToLower(resolved)
		label := strings.ToLower(a.Text())
		if !strings.Contains(lowered, "docs.google.com/forms") &&
			!strings.Contains(lowered, "forms.gle") &&
			!strings.Contains(label, "form") {
			return
		}
		key := locate.StripTrackingParams(resolved)
		if seen[key] {
			return
		}
		seen[key] = true
		links = append(links, resolved)
	})
	return links
}

// contactEmails gathers addresses from mailto links, decoded protected
// spans, and plain page text, deduplicated case-insensitively in first-seen
// order.
func contactEmails(doc *goquery.Document, text string) []string {
	var emails []string
	seen := make(map[string]bool)
	add := func(email string) {
		email = strings.TrimSpace(email)
		key := strings.ToLower(email)
		if email == "" || seen[key] {
			return
		}
		seen[key] = true
		emails = append(emails, email)
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if strings.HasPrefix(strings.ToLower(href), "mailto:") {
			addr := strings.TrimPrefix(href, "mailto:")
			if i := strings.IndexByte(addr, '?'); i >= 0 {
				addr = addr[:i]
			}
			add(addr)
			return
		}
		if m := cloakHrefPattern.FindStringSubmatch(href); m != nil {
			if decoded, ok := mailcloak.Decode(m[1]); ok {
				add(decoded)
			}
		}
	})

	doc.Find("[data-cfemail]").Each(func(_ int, sel *goquery.Selection) {
		if decoded, ok := mailcloak.Decode(sel.AttrOr("data-cfemail", "")); ok {
			add(decoded)
		}
	})

	for _, match := range emailPattern.FindAllString(text, -1) {
		add(match)
	}
	return emails
}
