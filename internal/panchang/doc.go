// Package panchang is the calendar event source. Unlike the page scrapers it
// holds a hand-curated table of dated events - temple functions, US public
// holidays, and Hindu calendar dates - grouped by year*100+month. The table
// is rebuilt fresh on every construction, so cached wrappers always see it
// as fresh.
package panchang
