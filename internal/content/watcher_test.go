package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestWatcherReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, defaultDocument, 0o600))

	store := NewStore(Default())
	w := NewWatcher(path, store, zap.NewNop())
	w.debounce = 10 * time.Millisecond

	reloaded := make(chan error, 4)
	w.OnReload = func(err error) { reloaded <- err }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-done:
		t.Fatalf("watcher exited before it was ready: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the watcher to register")
	}

	writeAtomic(t, path, `{"aboutMe": {"title": "Updated"}}`)

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
	assert.Equal(t, "Updated", store.Current().AboutMe.Title)

	writeAtomic(t, path, `{"aboutMe": `)
	deadline := time.After(5 * time.Second)
	for failed := false; !failed; {
		select {
		case err := <-reloaded:
			failed = err != nil
		case <-deadline:
			t.Fatal("timed out waiting for failed reload")
		}
	}
	assert.Equal(t, "Updated", store.Current().AboutMe.Title)

	cancel()
	require.NoError(t, <-done)
}

func writeAtomic(t *testing.T, path, data string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(data), 0o600))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatcherNotReadyWhenDirectoryMissing(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "portfolio.json"), NewStore(Default()), zap.NewNop())

	err := w.Run(context.Background())
	require.Error(t, err)

	select {
	case <-w.Ready():
		t.Fatal("ready closed although nothing is watched")
	default:
	}
}
