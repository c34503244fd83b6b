package store

// KV is the persistence capability the orchestrator depends on. GetString
// reports found=false for a missing key without an error; SetString is a
// full-value replace.
type KV interface {
	GetString(key string) (value string, found bool, err error)
	SetString(key, value string) error
}
