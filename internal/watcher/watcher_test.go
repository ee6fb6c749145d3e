package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parlor/internal/watcher"
)

func startWatcher(t *testing.T, dir string) <-chan string {
	t.Helper()
	w, err := watcher.New(watcher.Config{
		Dir:         dir,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")
	t.Cleanup(func() { _ = w.Stop() })

	files, err := w.Start()
	require.NoError(t, err, "failed to start watcher")
	return files
}

func receive(t *testing.T, files <-chan string) string {
	t.Helper()
	select {
	case p := <-files:
		return p
	case <-time.After(time.Second):
		t.Fatal("expected a dropped file but got timeout")
		return ""
	}
}

func TestWatcher_DebounceMultipleWrites(t *testing.T) {
	dir := t.TempDir()
	files := startWatcher(t, dir)
	path := filepath.Join(dir, "notes.txt")

	// Rapid writes to one file coalesce into a single path.
	for i := 0; i < 10; i++ {
		err := os.WriteFile(path, []byte(fmt.Sprintf("test%d", i)), 0o600)
		require.NoError(t, err, "failed to write file")
		time.Sleep(10 * time.Millisecond)
	}

	require.Equal(t, path, receive(t, files))

	select {
	case p := <-files:
		t.Fatalf("unexpected second notification for %s", p)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_SeveralFilesInNameOrder(t *testing.T) {
	dir := t.TempDir()
	files := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("b"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), []byte("a"), 0o600))

	require.Equal(t, filepath.Join(dir, "a.png"), receive(t, files))
	require.Equal(t, filepath.Join(dir, "b.png"), receive(t, files))
}

func TestWatcher_IgnoresHiddenAndTempFiles(t *testing.T) {
	dir := t.TempDir()
	files := startWatcher(t, dir)

	for _, name := range []string{".hidden", "video.mp4.part", "draft.txt~", "x.tmp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	select {
	case p := <-files:
		t.Fatalf("should not report %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_RemovedBeforeSettlingIsDropped(t *testing.T) {
	dir := t.TempDir()
	files := startWatcher(t, dir)

	path := filepath.Join(dir, "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, os.Remove(path))

	select {
	case p := <-files:
		t.Fatalf("should not report removed file %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StartCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "drop", "here")
	files := startWatcher(t, dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))
	require.Equal(t, path, receive(t, files))
}

func TestWatcher_Stop(t *testing.T) {
	w, err := watcher.New(watcher.Config{
		Dir:         t.TempDir(),
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err, "failed to create watcher")

	_, err = w.Start()
	require.NoError(t, err, "failed to start watcher")

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop(), "Stop returned error")
		assert.NoError(t, w.Stop(), "second Stop returned error")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out - possible deadlock")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := watcher.DefaultConfig("/tmp/drop")

	assert.Equal(t, "/tmp/drop", cfg.Dir)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDur)
}
