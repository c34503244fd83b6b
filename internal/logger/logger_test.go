package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T, level Level, logFn func(l *Logger)) []map[string]interface{} {
	t.Helper()

	path := filepath.Join(t.TempDir(), "log")
	f, err := os.Create(path)
	require.NoError(t, err)

	logFn(New(level, f))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]interface{}
	for _, line := range splitLines(data) {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}
	return entries
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			if i > start {
				lines = append(lines, data[start:i])
			}
			start = i + 1
		}
	}
	return lines
}

func TestLevelFiltering(t *testing.T) {
	entries := captureLog(t, LevelWarn, func(l *Logger) {
		l.Debug("debug msg", nil)
		l.Info("info msg", nil)
		l.Warn("warn msg", Fields{"key": "value"})
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "warn msg", entries[0]["message"])

	fields, ok := entries[0]["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "value", fields["key"])
}

func TestErrorEntryCarriesError(t *testing.T) {
	entries := captureLog(t, LevelInfo, func(l *Logger) {
		l.Error("request failed", Fields{"category": "events"}, os.ErrNotExist)
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["level"])
	assert.Equal(t, os.ErrNotExist.Error(), entries[0]["error"])
}

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("cache.hit")
	m.IncrCounter("cache.hit")
	m.IncrCounter("fetch.ok")
	m.RecordTiming("fetch", 100*time.Millisecond)
	m.RecordTiming("fetch", 300*time.Millisecond)

	snap := m.Snapshot()

	counters := snap["counters"].(map[string]int64)
	assert.Equal(t, int64(2), counters["cache.hit"])
	assert.Equal(t, int64(1), counters["fetch.ok"])

	timings := snap["timings"].(map[string]map[string]interface{})
	fetch := timings["fetch"]
	assert.Equal(t, 2, fetch["count"])
	assert.Equal(t, "200ms", fetch["average"])
	assert.Equal(t, "100ms", fetch["min"])
	assert.Equal(t, "300ms", fetch["max"])
}
