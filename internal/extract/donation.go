package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/templepages/internal/content"
	"github.com/pfrederiksen/templepages/internal/locate"
)

// Donation extracts the donation page: one optional section per payment
// method (Zelle, check, PayPal fundraiser, credit card, matching grant),
// each with optional instruction text, URL, and note.
func Donation(doc *goquery.Document, base string, now time.Time) (content.Donation, error) {
	rec := content.Donation{FetchedAt: now}

	if cell := methodCell(doc, "zelle"); cell != nil {
		rec.Zelle = harvestMethod(cell, "zelle", base)
		if email := mailtoAddress(cell); email != "" {
			rec.ZelleEmail = content.String(email)
		}
	}
	if cell := methodCell(doc, "check"); cell != nil {
		rec.Check = harvestMethod(cell, "check", base)
	}

	assignLinkMethods(doc, base, &rec)

	return rec, nil
}

// methodCell finds the first cell or paragraph mentioning a payment method.
func methodCell(doc *goquery.Document, keyword string) *goquery.Selection {
	return locate.ByKeyword(doc, func(lowered string) bool {
		return strings.Contains(lowered, keyword)
	})
}

// harvestMethod classifies the lines of a payment-method cell: the heading
// line naming the method is dropped, "note" lines become the note, and the
// remaining lines join into the instruction.
func harvestMethod(cell *goquery.Selection, keyword string, base string) *content.PaymentMethod {
	method := &content.PaymentMethod{}

	rules := []lineRule{
		{
			// Short line that only names the method: a heading, not content.
			match: func(l string) bool {
				return strings.Contains(l, keyword) && len(l) <= 40 && !strings.Contains(l, "@")
			},
			assign: func(string) {},
		},
		{
			match: func(l string) bool { return strings.HasPrefix(l, "note") },
			assign: func(line string) {
				if method.Note == nil {
					method.Note = content.String(line)
				}
			},
		},
	}

	rest := classifyLines(nodeLines(cell), rules)
	method.Instruction = joinOpt(rest)

	if href := firstLink(cell, base); href != "" {
		method.URL = content.String(href)
	}

	if method.Instruction == nil && method.URL == nil && method.Note == nil {
		return nil
	}
	return method
}

// mailtoAddress returns the address of the first mailto anchor in the cell.
func mailtoAddress(cell *goquery.Selection) string {
	addr := ""
	cell.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if strings.HasPrefix(strings.ToLower(href), "mailto:") {
			addr = strings.TrimPrefix(href, "mailto:")
			return false
		}
		return true
	})
	return addr
}

// firstLink returns the first resolvable non-mailto link in the cell.
func firstLink(cell *goquery.Selection, base string) string {
	href := ""
	cell.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		raw := a.AttrOr("href", "")
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(raw)), "mailto:") {
			return true
		}
		if resolved := locate.ResolveURL(raw, base); resolved != "" {
			href = resolved
			return false
		}
		return true
	})
	return href
}

// assignLinkMethods scans every anchor in document order and routes it to a
// payment method by URL substring: a PayPal fundraiser link, a PayPal donate
// link (credit card), or a Google Forms link (matching grant). Only the
// first anchor matching each category is taken.
func assignLinkMethods(doc *goquery.Document, base string, rec *content.Donation) {
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		resolved := locate.ResolveURL(a.AttrOr("href", ""), base)
		if resolved == "" {
			return
		}
		lowered := strings.ToLower(resolved)

		switch {
		case rec.PayPal == nil &&
			(strings.Contains(lowered, "paypal.com/pools") || strings.Contains(lowered, "fundraiser")):
			rec.PayPal = &content.PaymentMethod{URL: content.String(resolved)}
		case rec.CreditCard == nil && strings.Contains(lowered, "paypal.com/donate"):
			rec.CreditCard = &content.PaymentMethod{URL: content.String(resolved)}
		case rec.MatchingGrant == nil &&
			(strings.Contains(lowered, "docs.google.com/forms") || strings.Contains(lowered, "forms.gle")):
			rec.MatchingGrant = &content.PaymentMethod{URL: content.String(resolved)}
		}
	})
}
