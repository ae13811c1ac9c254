package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "soundboard.db")
	require.NoError(t, os.WriteFile(db, nil, 0o600))

	w, err := New(Config{DBPath: db, Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	ch, err := w.Start()
	require.NoError(t, err)
	defer func() { require.NoError(t, w.Stop()) }()

	for range 5 {
		require.NoError(t, os.WriteFile(db+"-wal", []byte("x"), 0o600))
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change notification")
	}

	// The burst collapses into one notification.
	select {
	case <-ch:
		t.Fatal("unexpected second notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "soundboard.db")

	w, err := New(Config{DBPath: db, Debounce: 10 * time.Millisecond})
	require.NoError(t, err)
	ch, err := w.Start()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	select {
	case <-ch:
		t.Fatal("unexpected notification for unrelated file")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_StopClosesChannel(t *testing.T) {
	w, err := New(Config{DBPath: filepath.Join(t.TempDir(), "soundboard.db")})
	require.NoError(t, err)
	ch, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	_, ok := <-ch
	assert.False(t, ok)
}

func TestWatcher_StartTwice(t *testing.T) {
	w, err := New(Config{DBPath: filepath.Join(t.TempDir(), "soundboard.db")})
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	_, err = w.Start()
	require.Error(t, err)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := New(Config{DBPath: filepath.Join(t.TempDir(), "soundboard.db")})
	require.NoError(t, err)
	require.NoError(t, w.Stop())
}

func TestRelevant(t *testing.T) {
	w := &Watcher{dbPath: "/data/soundboard.db"}

	tests := []struct {
		name string
		path string
		op   fsnotify.Op
		want bool
	}{
		{"db write", "/data/soundboard.db", fsnotify.Write, true},
		{"wal write", "/data/soundboard.db-wal", fsnotify.Write, true},
		{"shm create", "/data/soundboard.db-shm", fsnotify.Create, true},
		{"backup", "/data/soundboard.db.bak", fsnotify.Write, false},
		{"chmod only", "/data/soundboard.db", fsnotify.Chmod, false},
		{"other dir", "/other/soundboard.db-wal", fsnotify.Write, false},
		{"other file", "/data/notes.txt", fsnotify.Write, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(fsnotify.Event{Name: tt.path, Op: tt.op}))
		})
	}
}
