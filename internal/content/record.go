package content

import "time"

// Record is implemented by every content category so the cache orchestrator
// can compute a record's age without knowing its concrete type.
type Record interface {
	Fetched() time.Time
}

func (h Home) Fetched() time.Time       { return h.FetchedAt }
func (e Events) Fetched() time.Time     { return e.FetchedAt }
func (b Bookstore) Fetched() time.Time  { return b.FetchedAt }
func (d Donation) Fetched() time.Time   { return d.FetchedAt }
func (a Admissions) Fetched() time.Time { return a.FetchedAt }
func (c Contact) Fetched() time.Time    { return c.FetchedAt }
func (c Classes) Fetched() time.Time    { return c.FetchedAt }
func (c Calendar) Fetched() time.Time   { return c.FetchedAt }
