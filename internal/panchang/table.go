package panchang

import (
	"time"

	"github.com/pfrederiksen/templepages/internal/content"
)

// Flag shorthands for the curated table.
var (
	temple   = content.EventFlags{Institution: true}
	holiday  = content.EventFlags{PublicHoliday: true}
	regional = content.EventFlags{RegionalCalendar: true}
	both     = content.EventFlags{Institution: true, RegionalCalendar: true}
)

func entry(year int, month time.Month, day int, title string, flags content.EventFlags) content.PanchangEvent {
	return content.PanchangEvent{
		Date:  content.NewDate(year, month, day),
		Title: title,
		Flags: flags,
	}
}

func described(evt content.PanchangEvent, desc string) content.PanchangEvent {
	evt.Description = content.String(desc)
	return evt
}

// curatedEvents is the hand-authored calendar. Hindu calendar dates are the
// observed dates for the US East Coast and shift year to year; they are
// maintained by hand, not computed.
func curatedEvents() []content.PanchangEvent {
	return []content.PanchangEvent{
		// 2026
		entry(2026, time.January, 1, "New Year's Day", holiday),
		entry(2026, time.January, 14, "Makar Sankranti", regional),
		entry(2026, time.January, 19, "Martin Luther King Jr. Day", holiday),
		described(
			entry(2026, time.February, 15, "Maha Shivaratri", both),
			"All-night abhishekam at the temple; classes are closed the following morning."),
		entry(2026, time.March, 3, "Holi", regional),
		entry(2026, time.March, 19, "Ugadi", regional),
		entry(2026, time.March, 26, "Rama Navami", both),
		described(
			entry(2026, time.April, 12, "Spring Cultural Program", temple),
			"Student performances in the main hall; doors open at 4 PM."),
		entry(2026, time.May, 25, "Memorial Day", holiday),
		described(
			entry(2026, time.June, 14, "Summer Camp Orientation", temple),
			"Parent orientation for the July camp session."),
		entry(2026, time.July, 4, "Independence Day", holiday),
		entry(2026, time.July, 29, "Guru Purnima", regional),
		described(
			entry(2026, time.August, 16, "Temple Anniversary Day", temple),
			"Special puja followed by a community lunch."),
		entry(2026, time.September, 4, "Krishna Janmashtami", both),
		entry(2026, time.September, 7, "Labor Day", holiday),
		entry(2026, time.September, 14, "Ganesh Chaturthi", regional),
		entry(2026, time.October, 11, "Navaratri Begins", regional),
		entry(2026, time.October, 20, "Vijaya Dashami", both),
		described(
			entry(2026, time.November, 8, "Diwali", both),
			"Lakshmi puja at dusk; annapradana all day."),
		entry(2026, time.November, 26, "Thanksgiving Day", holiday),
		entry(2026, time.December, 25, "Christmas Day", holiday),

		// 2027 (first quarter, maintained ahead of the new year)
		entry(2027, time.January, 1, "New Year's Day", holiday),
		entry(2027, time.January, 14, "Makar Sankranti", regional),
		entry(2027, time.March, 5, "Maha Shivaratri", both),
		entry(2027, time.March, 22, "Holi", regional),
	}
}
