// Package store provides the key-value persistence used by the content
// cache. Two backends implement the same interface: per-key JSON files under
// a data directory, and a single-table sqlite database. Each category writes
// a full-value replace under its own key, so no locking discipline is needed
// beyond what the backend itself provides.
package store
