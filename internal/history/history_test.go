package history

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTempDataDir points the package at a temp directory for the test.
func withTempDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := dataDir
	dataDir = func() string { return dir }
	t.Cleanup(func() { dataDir = old })
	return dir
}

func TestLoad_NoFile(t *testing.T) {
	withTempDataDir(t)

	entries, err := Load()
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestAppendAndLoad(t *testing.T) {
	withTempDataDir(t)

	require.NoError(t, Append(Entry{Action: "created", TaskID: 1, Title: "write report", Deadline: "2024-06-11T17:00:00"}))
	require.NoError(t, Append(Entry{Action: "deleted", TaskID: 1}))

	entries, err := Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "created", entries[0].Action)
	assert.Equal(t, "write report", entries[0].Title)
	assert.NotEmpty(t, entries[0].Timestamp)
	assert.Equal(t, "deleted", entries[1].Action)
}

func TestAppend_CapsEntries(t *testing.T) {
	withTempDataDir(t)

	for i := range maxEntries + 10 {
		require.NoError(t, Append(Entry{Action: "created", TaskID: i}))
	}

	entries, err := Load()
	require.NoError(t, err)
	require.Len(t, entries, maxEntries)
	// Oldest entries dropped.
	assert.Equal(t, 10, entries[0].TaskID)
}

func TestAppend_CorruptFileStartsFresh(t *testing.T) {
	dir := withTempDataDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), []byte("{broken"), 0o600))

	require.NoError(t, Append(Entry{Action: "created", TaskID: 5}))

	entries, err := Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].TaskID)
}

func TestClear(t *testing.T) {
	withTempDataDir(t)

	require.NoError(t, Append(Entry{Action: "created"}))
	require.NoError(t, Clear())

	entries, err := Load()
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestConcurrentAppend(t *testing.T) {
	withTempDataDir(t)

	const goroutines = 10
	var wg sync.WaitGroup
	wg.Add(goroutines)

	errs := make([]error, goroutines)
	for i := range goroutines {
		go func(idx int) {
			defer wg.Done()
			errs[idx] = Append(Entry{Action: "created", Title: fmt.Sprintf("task %d", idx)})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoErrorf(t, err, "goroutine %d failed", i)
	}

	entries, err := Load()
	require.NoError(t, err)
	assert.Len(t, entries, goroutines)
}
