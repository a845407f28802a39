package main

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// withTempHome points HOME at a fresh temp dir so config and history land
// in an isolated location.
func withTempHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dataDir := filepath.Join(home, ".local", "share", "todo")
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	configDir := filepath.Join(home, ".config", "todo")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
}

// captureStdout redirects os.Stdout to a pipe for the duration of fn,
// then returns whatever was written to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	// Read from the pipe in a goroutine to avoid blocking if output exceeds
	// the pipe buffer size.
	var output string
	var wg sync.WaitGroup
	wg.Go(func() {
		data, _ := io.ReadAll(r)
		output = string(data)
	})

	fn()

	_ = w.Close()
	os.Stdout = oldStdout
	wg.Wait()
	_ = r.Close()
	return output
}
