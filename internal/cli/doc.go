// Package cli implements the templepages command line: fetching category
// content through the cache orchestrator, listing curated calendar months,
// exporting ICS, and running the JSON API server.
package cli
