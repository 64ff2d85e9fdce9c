package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := New(WithSettle(10*time.Millisecond)).Watch(ctx, path)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(path, []byte("a\n1\n"), 0600)
	}()

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.csv")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := New(WithSettle(10*time.Millisecond)).Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0600))

	select {
	case <-changes:
		t.Fatal("unexpected change for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	changes, err := New().Watch(ctx, filepath.Join(t.TempDir(), "roster.csv"))
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "roster.csv")

	changes, err := New().Watch(context.Background(), path)

	assert.Error(t, err)
	assert.Nil(t, changes)
}

func TestHandleEvent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "roster.csv")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"remove", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"chmod", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(filepath.Dir(target), "x.csv"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handleEvent(tt.event, target))
		})
	}
}

func TestWithSettle_IgnoresNegative(t *testing.T) {
	w := New(WithSettle(-time.Second))
	assert.Equal(t, DefaultSettle, w.settle)
}
