// Package ics renders curated calendar events as an RFC 5545 iCalendar
// document, so panchang dates can be imported into external calendars.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/templepages/internal/content"
)

// Generate renders the given events as one VCALENDAR. Events are all-day:
// DTSTART is the event's date and DTEND the following day.
func Generate(events []content.PanchangEvent, now time.Time) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//templepages//panchang//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString("METHOD:PUBLISH\r\n")

	stamp := now.UTC().Format("20060102T150405Z")
	for _, evt := range events {
		writeEvent(&b, evt, stamp)
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func writeEvent(b *strings.Builder, evt content.PanchangEvent, stamp string) {
	start := time.Date(evt.Date.Year, evt.Date.Month, evt.Date.Day, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:%s-%s@templepages\r\n", evt.Date, slug(evt.Title))
	fmt.Fprintf(b, "DTSTAMP:%s\r\n", stamp)
	fmt.Fprintf(b, "DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102"))
	fmt.Fprintf(b, "DTEND;VALUE=DATE:%s\r\n", end.Format("20060102"))
	fmt.Fprintf(b, "SUMMARY:%s\r\n", escape(evt.Title))
	if evt.Description != nil {
		fmt.Fprintf(b, "DESCRIPTION:%s\r\n", escape(*evt.Description))
	}
	fmt.Fprintf(b, "CATEGORIES:%s\r\n", strings.Join(categories(evt.Flags), ","))
	b.WriteString("TRANSP:TRANSPARENT\r\n")
	b.WriteString("END:VEVENT\r\n")
}

func categories(flags content.EventFlags) []string {
	var cats []string
	if flags.Institution {
		cats = append(cats, "TEMPLE")
	}
	if flags.PublicHoliday {
		cats = append(cats, "HOLIDAY")
	}
	if flags.RegionalCalendar {
		cats = append(cats, "PANCHANG")
	}
	if len(cats) == 0 {
		cats = append(cats, "OTHER")
	}
	return cats
}

func slug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// escape applies the RFC 5545 text escapes.
func escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
