package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON file per cache key under a data directory.
type FileStore struct {
	dataDir string
}

// NewFileStore creates the data directory if needed. A leading ~/ is
// expanded to the user's home directory.
func NewFileStore(dataDir string) (*FileStore, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}

// GetString reads the value for key; a missing file is not an error.
func (s *FileStore) GetString(key string) (string, bool, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading cache entry: %w", err)
	}
	return string(data), true, nil
}

// SetString replaces the value for key.
func (s *FileStore) SetString(key, value string) error {
	if err := os.WriteFile(s.keyPath(key), []byte(value), 0644); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}
