// Package extract implements the per-category content extractors.
//
// Every extractor is a pure function from a parsed document and base URL to a
// typed content record. The shared pattern is anchor, harvest, classify:
// locate an anchor element by heading or keyword, harvest the normalized text
// of a nearby node (the exact relation is hard-coded per category because the
// source markup is not uniform), then classify each line by an ordered
// keyword rule table. A missing anchor or section yields absent fields, not
// an error; only a class-listing page with no parseable sections at all is a
// structural failure.
package extract
