package panchang

import (
	"time"

	"github.com/pfrederiksen/templepages/internal/content"
)

// Source serves the curated calendar. Construct with NewSource; the table is
// copied into month buckets at construction time.
type Source struct {
	months    map[int][]content.PanchangEvent
	fetchedAt time.Time
}

// NewSource builds the month index from the curated table. The supplied time
// becomes the calendar's FetchedAt.
func NewSource(now time.Time) *Source {
	s := &Source{
		months:    make(map[int][]content.PanchangEvent),
		fetchedAt: now,
	}
	for _, evt := range curatedEvents() {
		key := evt.Date.MonthKey()
		s.months[key] = append(s.months[key], evt)
	}
	return s
}

// EventsForMonth returns the events in a month bucket, empty if absent.
func (s *Source) EventsForMonth(year int, month time.Month) []content.PanchangEvent {
	return s.months[year*100+int(month)]
}

// EventsForDate filters the month bucket by exact day equality.
func (s *Source) EventsForDate(d content.Date) []content.PanchangEvent {
	var out []content.PanchangEvent
	for _, evt := range s.months[d.MonthKey()] {
		if evt.Date == d {
			out = append(out, evt)
		}
	}
	return out
}

// Content packages the whole table as a Calendar record, for callers that
// wrap this source like any other category.
func (s *Source) Content() content.Calendar {
	months := make(map[int][]content.PanchangEvent, len(s.months))
	for key, events := range s.months {
		months[key] = append([]content.PanchangEvent(nil), events...)
	}
	return content.Calendar{Months: months, FetchedAt: s.fetchedAt}
}

// Filter returns the events for which keep is true.
func Filter(events []content.PanchangEvent, keep func(content.PanchangEvent) bool) []content.PanchangEvent {
	var out []content.PanchangEvent
	for _, evt := range events {
		if keep(evt) {
			out = append(out, evt)
		}
	}
	return out
}
