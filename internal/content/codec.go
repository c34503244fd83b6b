package content

import (
	"encoding/json"
	"fmt"
)

// Encode serializes a content record for the cache store.
func Encode[T any](rec T) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}
	return string(data), nil
}

// Decode deserializes a cache entry back into a content record.
func Decode[T any](data string) (T, error) {
	var rec T
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return rec, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}
