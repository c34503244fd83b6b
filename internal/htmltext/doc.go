// Package htmltext converts raw HTML fragments into clean, line-oriented
// plain text for the keyword-based extractors.
package htmltext
