package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectUntil(t *testing.T, w *Watcher, want string) []string {
	t.Helper()
	var seen []string
	require.Eventually(t, func() bool {
		for {
			p, ok := w.Poll()
			if !ok {
				break
			}
			seen = append(seen, p)
		}
		for _, p := range seen {
			if p == want {
				return true
			}
		}
		return false
	}, 3*time.Second, 20*time.Millisecond)
	return seen
}

func TestWatcherReportsOnlyTheWatchedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combat: {}\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	sibling := filepath.Join(dir, "unrelated.yaml")
	require.NoError(t, os.WriteFile(sibling, []byte("general: {tps: 1}\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("combat: {}\n"), 0o644))

	want, err := filepath.Abs(path)
	require.NoError(t, err)
	seen := collectUntil(t, w, want)
	for _, p := range seen {
		assert.Equal(t, want, p)
	}
}

func TestWatcherOnDirectoryReportsAnyYAML(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "enemies.yml")
	require.NoError(t, os.WriteFile(path, []byte("enemies: {}\n"), 0o644))

	want, err := filepath.Abs(path)
	require.NoError(t, err)
	seen := collectUntil(t, w, want)
	assert.NotContains(t, seen, filepath.Join(want, "..", "notes.txt"))
	assert.Contains(t, seen, want)
}
