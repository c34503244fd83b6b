// Package service is the fetch-cache orchestrator. For each content
// category it loads the persisted snapshot, serves it while fresh, refetches
// and re-extracts when stale or forced, and falls back to the stale snapshot
// when the fetch fails. A transient network failure never produces an empty
// result while any cached record exists.
package service
