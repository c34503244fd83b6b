// Package content defines the typed records extracted from the temple website.
//
// Each content category (home page, events, donation, admissions, contact,
// class listings, bookstore, calendar) has one record type. Records are value
// types: they are created by an extractor or decoded from a cache entry, never
// mutated afterwards, and replaced wholesale on refresh. Optional fields are
// pointers so "not found" is distinguishable from "found empty".
package content
